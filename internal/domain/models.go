package domain

// Entry is one searchable term of the catalog
type Entry struct {
	Term   string
	Detail string // optional description shown next to the term
}

// SearchTerm returns the text written back when the entry is picked
func (e Entry) SearchTerm() string {
	return e.Term
}

// Selection is a term the user picked, with the time it was picked
type Selection struct {
	Term       string
	SelectedAt int64 // unix nanoseconds
}
