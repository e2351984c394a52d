package entities

// Status is the outcome of one language in a run.
type Status string

const (
	StatusUpdated Status = "updated"
	StatusChecked Status = "checked" // dry run: merged but not written
	StatusFailed  Status = "failed"
)

// LanguageResult records what happened to one locale file.
type LanguageResult struct {
	Lang      string
	Path      string
	Status    Status
	Applied   int
	Conflicts []error
	Err       error
}

// Summary collects the results of a run in processing order.
type Summary struct {
	Results []LanguageResult
}

// Updated counts languages that were written, or merged in a dry run.
func (s *Summary) Updated() int {
	n := 0
	for _, r := range s.Results {
		if r.Status != StatusFailed {
			n++
		}
	}
	return n
}

func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			n++
		}
	}
	return n
}

// Conflicts counts keys skipped across all languages.
func (s *Summary) Conflicts() int {
	n := 0
	for _, r := range s.Results {
		n += len(r.Conflicts)
	}
	return n
}

// OK reports whether every language succeeded with every key applied.
func (s *Summary) OK() bool {
	return s.Failed() == 0 && s.Conflicts() == 0
}
