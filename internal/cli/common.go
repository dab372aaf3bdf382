package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/encheck/internal/catalog"
	"github.com/danieljhkim/encheck/internal/config"
	"github.com/danieljhkim/encheck/internal/encoding"
)

// loadCatalog loads the catalog from the given path, falling back to the
// configured default when the path is empty. Entries skipped by the loader
// are surfaced as warnings, not failures.
func loadCatalog(path string) (*catalog.Catalog, []catalog.Skipped, error) {
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
		}
		path = paths.Catalog
	}

	cat, skipped, err := catalog.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cat, skipped, nil
}

// resolveEncoding builds the canonical pattern from the --encoding,
// --match and --mask flag values, cross-validating when both forms are
// supplied.
func resolveEncoding(token, matchText, maskText string) (encoding.Pattern, error) {
	explicit := matchText != "" || maskText != ""

	var match, mask uint32
	if explicit {
		if matchText == "" || maskText == "" {
			return encoding.Pattern{}, errors.New("--match and --mask must be supplied together")
		}
		m, err := encoding.ParseHex(matchText)
		if err != nil {
			return encoding.Pattern{}, fmt.Errorf("invalid --match: %w", err)
		}
		k, err := encoding.ParseHex(maskText)
		if err != nil {
			return encoding.Pattern{}, fmt.Errorf("invalid --mask: %w", err)
		}
		match, mask = m, k
	}

	if token == "" && !explicit {
		return encoding.Pattern{}, errors.New("an encoding is required: pass --encoding and/or --match with --mask")
	}

	return encoding.FromSources(token, match, mask, explicit)
}

// hex32 formats a 32-bit value the way catalogs write them.
func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
