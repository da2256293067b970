// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"fmt"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"

	"gopkg.in/yaml.v3"
)

// rootsFileYAML is the on-disk shape of a static roots declaration, for
// hosts that would rather check a roots list into a config file than
// build []protocol.Root literals in Go.
type rootsFileYAML struct {
	Roots []rootEntryYAML `yaml:"roots"`
}

type rootEntryYAML struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}

// LoadRootsYAML parses a roots declaration of the form:
//
//	roots:
//	  - uri: file:///home/user/project
//	    name: project
//
// into the []protocol.Root slice WithRoots expects.
func LoadRootsYAML(data []byte) ([]protocol.Root, error) {
	var doc rootsFileYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("session: parse roots yaml: %w", err)
	}
	roots := make([]protocol.Root, 0, len(doc.Roots))
	for _, r := range doc.Roots {
		if r.URI == "" {
			return nil, fmt.Errorf("session: roots yaml entry missing uri")
		}
		roots = append(roots, protocol.Root{URI: r.URI, Name: r.Name})
	}
	return roots, nil
}
