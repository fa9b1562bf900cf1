package cloud

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/freq"
)

// ErrNegativeCount reports a request for a negative number of words.
var ErrNegativeCount = errors.New("word count must be non-negative")

// Subset is the top-n slice of a frequency table, held in alphabetical order
// for display. MinCount and MaxCount are the extreme counts within the
// subset, not the whole table; both are zero when the subset is empty.
type Subset struct {
	Entries  []freq.Entry
	MinCount int
	MaxCount int
}

// Select picks the n most frequent entries of t and alphabetizes them.
// Ranking orders by count descending with alphabetical tie-breaks, so the
// cutoff between the n-th and (n+1)-th entry is deterministic. n larger than
// the table is clamped; a negative n returns ErrNegativeCount.
func Select(t *freq.Table, n int) (*Subset, error) {
	if n < 0 {
		return nil, fmt.Errorf("select top %d: %w", n, ErrNegativeCount)
	}
	if n > t.Len() {
		n = t.Len()
	}
	if n == 0 {
		return &Subset{}, nil
	}

	ranked := t.Entries()
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	sub := &Subset{
		Entries:  ranked[:n],
		MaxCount: ranked[0].Count,
		MinCount: ranked[n-1].Count,
	}
	sort.Slice(sub.Entries, func(i, j int) bool {
		return sub.Entries[i].Word < sub.Entries[j].Word
	})
	return sub, nil
}
