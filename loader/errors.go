package loader

import "fmt"

// SectionOverflowError reports that an assembled section does not fit the
// fixed word-address range the binary image layout reserves for it.
type SectionOverflowError struct {
	Section string
	Words   int
	Max     int
}

func (e *SectionOverflowError) Error() string {
	return fmt.Sprintf("%s section has %d words, exceeds the %d-word limit", e.Section, e.Words, e.Max)
}
