// Package config resolves the filesystem locations encheck reads from.
//
// The default catalog file lives under ~/.encheck/. Both the root
// directory and the catalog file can be overridden with environment
// variables, and every command additionally accepts an explicit
// --catalog flag that takes precedence over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by encheck.
type Paths struct {
	// Root is the base directory for encheck data (default: ~/.encheck)
	Root string

	// Catalog is the path to the instruction encoding catalog file
	Catalog string
}

// DefaultPaths returns the default paths for encheck.
// Paths can be overridden with environment variables:
//   - ENCHECK_ROOT: Override the root directory
//   - ENCHECK_CATALOG: Override the catalog file path
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ENCHECK_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".encheck")
	}

	catalog := os.Getenv("ENCHECK_CATALOG")
	if catalog == "" {
		catalog = filepath.Join(root, "catalog.yaml")
	}

	return &Paths{
		Root:    root,
		Catalog: catalog,
	}, nil
}
