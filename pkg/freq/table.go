// Package freq builds case-insensitive word frequency tables.
package freq

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/tokenize"
)

// Entry pairs a canonical word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Table maps canonical (lowercased) words to positive occurrence counts.
// Alongside the counting map it maintains a patricia trie over the same
// vocabulary so callers can answer prefix queries without rescanning text.
type Table struct {
	counts    map[string]int
	trie      *patricia.Trie
	totalRuns int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]int),
		trie:   patricia.NewTrie(),
	}
}

// Build tokenizes text against seps and counts every word run, folding case
// so that "Cat", "cat" and "CAT" land on one entry. Separator runs are
// discarded.
func Build(text string, seps *tokenize.SeparatorSet) *Table {
	t := NewTable()
	sc := tokenize.NewScanner(text, seps)
	for sc.Scan() {
		tok := sc.Token()
		if tok.Separator {
			continue
		}
		t.Add(strings.ToLower(tok.Text))
	}
	log.Debugf("frequency table built: %d distinct words from %d runs", t.Len(), t.TotalRuns())
	return t
}

// Add records one occurrence of the canonical word. Empty words are ignored.
func (t *Table) Add(word string) {
	if word == "" {
		return
	}
	t.counts[word]++
	t.totalRuns++
	t.trie.Set(patricia.Prefix(word), t.counts[word])
}

// Count returns the occurrence count for word, zero when absent.
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.counts)
}

// TotalRuns returns how many word runs were counted, i.e. the sum of all
// occurrence counts.
func (t *Table) TotalRuns() int {
	return t.totalRuns
}

// Entries returns all (word, count) pairs in unspecified order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for w, c := range t.counts {
		entries = append(entries, Entry{Word: w, Count: c})
	}
	return entries
}

// Words returns the vocabulary in ascending lexicographic order.
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.counts))
	for w := range t.counts {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// VisitPrefix calls fn for every counted word that starts with prefix.
// Returning an error from fn stops the walk and propagates the error.
// Trie walk order is not lexicographic.
func (t *Table) VisitPrefix(prefix string, fn func(word string, count int) error) error {
	return t.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		count, ok := item.(int)
		if !ok {
			log.Errorf("unexpected item type %T for word %q", item, string(p))
			return nil
		}
		return fn(string(p), count)
	})
}

// CountPrefix returns how many distinct words start with prefix.
func (t *Table) CountPrefix(prefix string) int {
	n := 0
	_ = t.VisitPrefix(prefix, func(string, int) error {
		n++
		return nil
	})
	return n
}
