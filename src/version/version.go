// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package version provides centralized build version information for the
// mcp-client-session module.
package version

// Version holds the module's build version, reported to servers as the
// client's Implementation.Version during initialize unless the caller
// overrides it with WithClientInfo. Can be overridden at build time using
// ldflags, e.g. -ldflags "-X .../src/version.Version=1.2.3".
var Version = "0.1.0"

// Name identifies this client implementation during initialize.
var Name = "mcp-client-session"
