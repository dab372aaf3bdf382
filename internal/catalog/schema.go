package catalog

// File is the on-disk catalog document. The same schema is accepted as
// YAML or JSON.
type File struct {
	// SchemaVersion is the version of this schema
	SchemaVersion int `json:"schemaVersion" yaml:"schemaVersion"`

	// Entries is the list of cataloged instruction encodings
	Entries []FileEntry `json:"entries" yaml:"entries"`
}

// FileEntry is one instruction encoding as written in a catalog file.
//
// Encoding is the 32-character token form; Match and Mask are hexadecimal
// text. An entry may carry either form or both. When both are present they
// are cross-checked on load and a disagreement excludes the entry.
type FileEntry struct {
	// Extension is the ISA extension the instruction belongs to (e.g. "rv_zba")
	Extension string `json:"extension" yaml:"extension"`

	// Name is the instruction mnemonic (e.g. "sh1add")
	Name string `json:"name" yaml:"name"`

	// Encoding is the token form of the encoding, if present
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// Match is the hexadecimal match value, if present
	Match string `json:"match,omitempty" yaml:"match,omitempty"`

	// Mask is the hexadecimal mask value, if present
	Mask string `json:"mask,omitempty" yaml:"mask,omitempty"`
}

// ID returns the stable identifier for the entry.
func (e FileEntry) ID() string {
	return e.Extension + "/" + e.Name
}
