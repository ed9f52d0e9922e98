package listing

import "github.com/agusx1211/colorls/internal/icons"

// Counts tallies rendered entries by bucket. Every rendered entry adds to
// exactly one field.
type Counts struct {
	Folders           int
	RecognizedFiles   int
	UnrecognizedFiles int
}

// Add counts one entry in bucket b.
func (c *Counts) Add(b icons.Bucket) {
	switch b {
	case icons.Folders:
		c.Folders++
	case icons.RecognizedFiles:
		c.RecognizedFiles++
	default:
		c.UnrecognizedFiles++
	}
}

// Files is the number of non-directory entries.
func (c Counts) Files() int { return c.RecognizedFiles + c.UnrecognizedFiles }

// Total is the number of rendered entries.
func (c Counts) Total() int { return c.Folders + c.Files() }
