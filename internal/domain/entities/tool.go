package entities

// Tool describes an external executable resolved during toolchain discovery.
type Tool struct {
	Name    string // binary base name (e.g. "python3", "pip", "conda")
	Path    string // absolute path the binary resolved to
	Version string // version reported by the binary, empty when probing failed
}

// String returns a human-readable representation for log lines.
func (t Tool) String() string {
	if t.Version == "" {
		return t.Path
	}
	return t.Path + " (" + t.Version + ")"
}
