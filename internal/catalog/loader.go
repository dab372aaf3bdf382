package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/encheck/internal/encoding"
)

// ErrMatchMaskPair indicates an entry supplied only one half of an explicit
// match/mask pair.
var ErrMatchMaskPair = errors.New("match and mask must be supplied together")

// Skipped records a catalog file entry that could not yield a valid
// pattern and was excluded from the snapshot.
type Skipped struct {
	// ID is the entry's identifier
	ID string `json:"id"`

	// Reason explains why the entry was excluded
	Reason string `json:"reason"`
}

// Load reads a catalog file and builds the snapshot. The format is chosen
// by file extension: ".json" is parsed as JSON, everything else as YAML.
//
// Entries whose source data is unrecoverable (no token and no usable
// match/mask, or disagreeing token and match/mask) are skipped and
// reported, never fatal: one bad entry must not take the whole catalog
// down.
func Load(path string) (*Catalog, []Skipped, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
		}
	}

	cat, skipped := Build(f)
	return cat, skipped, nil
}

// Build turns a parsed catalog file into a snapshot, excluding entries
// that cannot yield a valid pattern.
func Build(f File) (*Catalog, []Skipped) {
	entries := make([]Entry, 0, len(f.Entries))
	var skipped []Skipped

	for _, fe := range f.Entries {
		pattern, err := resolveEntry(fe)
		if err != nil {
			skipped = append(skipped, Skipped{ID: fe.ID(), Reason: err.Error()})
			continue
		}
		entries = append(entries, Entry{
			ID:        fe.ID(),
			Extension: fe.Extension,
			Name:      fe.Name,
			Pattern:   pattern,
		})
	}

	return New(entries), skipped
}

// resolveEntry derives an entry's canonical pattern from whichever source
// forms the file supplies, cross-checking when it supplies both.
func resolveEntry(fe FileEntry) (encoding.Pattern, error) {
	explicit := fe.Match != "" || fe.Mask != ""

	var match, mask uint32
	if explicit {
		if fe.Match == "" || fe.Mask == "" {
			return encoding.Pattern{}, ErrMatchMaskPair
		}
		m, err := encoding.ParseHex(fe.Match)
		if err != nil {
			return encoding.Pattern{}, fmt.Errorf("match: %w", err)
		}
		k, err := encoding.ParseHex(fe.Mask)
		if err != nil {
			return encoding.Pattern{}, fmt.Errorf("mask: %w", err)
		}
		match, mask = m, k
	}

	return encoding.FromSources(fe.Encoding, match, mask, explicit)
}
