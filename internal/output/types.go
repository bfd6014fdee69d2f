package output

import "fmt"

// Block is one rendered result: an optional title plus the two labelled
// sections.
type Block struct {
	Title      string
	Transcript string
	Summary    string
}

// Order fixes which labelled section comes first.
type Order string

const (
	TranscriptFirst Order = "transcript-first"
	SummaryFirst    Order = "summary-first"
)

// Options select the section order and the separator line written between
// appended blocks.
type Options struct {
	SectionOrder Order
	Separator    string
}

// ExistsError reports a destination collision without continue mode.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("output file %s already exists (use continue mode to append)", e.Path)
}
