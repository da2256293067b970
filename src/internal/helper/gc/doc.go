// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage
// collection overhead. It abstracts the [bytebufferpool] library behind a
// narrow interface so callers depend on Buffer/Pool rather than the
// concrete bytebufferpool types, which matters for the stdio transport's
// per-message framing: every Send assembles one newline-terminated
// JSON-RPC line and would otherwise allocate a fresh buffer per call.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
