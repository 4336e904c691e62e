package ledger

// Journal is an append-only free-text log. Entries are written as one or
// more lines and read back verbatim.
type Journal struct {
	path string
}

// NewJournal returns a Journal stored at path.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the journal file location.
func (j *Journal) Path() string { return j.path }

// Append writes lines at the end of the journal in a single open/close.
func (j *Journal) Append(lines ...string) error {
	return appendLines(j.path, lines)
}

// Lines returns every line of the journal. A missing file returns an error
// matching types.ErrNotFound.
func (j *Journal) Lines() ([]string, error) {
	var out []string
	err := scanLines(j.path, func(line string) bool {
		out = append(out, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
