// Package dictionary holds the candidate words for one puzzle length.
// A Dictionary is loaded once, keeps its source order (duplicates included),
// and is never mutated afterwards. A patricia trie indexes the words for
// cheap membership and prefix lookups.
package dictionary

import (
	"fmt"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Error reports a fatal dictionary problem: unreadable source, undecodable
// content, or no qualifying words. It aborts startup.
type Error struct {
	Source string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dictionary %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("dictionary %q: %s", e.Source, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// Dictionary is an ordered, read-only collection of words of one rune length.
type Dictionary struct {
	words   []string
	wordLen int
	index   *patricia.Trie
}

// New builds a Dictionary from words already normalized to lower case.
// Source order is preserved, duplicates are kept as given. Words whose rune
// length differs from wordLen are rejected; an empty result is an *Error.
func New(words []string, wordLen int, source string) (*Dictionary, error) {
	if wordLen <= 0 {
		return nil, &Error{Source: source, Reason: fmt.Sprintf("invalid word length %d", wordLen)}
	}
	d := &Dictionary{
		words:   make([]string, 0, len(words)),
		wordLen: wordLen,
		index:   patricia.NewTrie(),
	}
	for _, w := range words {
		if len([]rune(w)) != wordLen {
			return nil, &Error{Source: source, Reason: fmt.Sprintf("word %q is not %d letters", w, wordLen)}
		}
		d.words = append(d.words, w)
		d.indexWord(w)
	}
	if len(d.words) == 0 {
		return nil, &Error{Source: source, Reason: fmt.Sprintf("no words of length %d", wordLen)}
	}
	return d, nil
}

// indexWord inserts w into the trie, counting duplicate occurrences.
func (d *Dictionary) indexWord(w string) {
	prefix := patricia.Prefix(w)
	if item := d.index.Get(prefix); item != nil {
		d.index.Set(prefix, item.(int)+1)
		return
	}
	d.index.Insert(prefix, 1)
}

// Len returns the number of words, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// WordLength returns the fixed rune length of every word.
func (d *Dictionary) WordLength() int { return d.wordLen }

// Word returns the word at index i in source order.
func (d *Dictionary) Word(i int) string { return d.words[i] }

// Words returns the words in source order. The slice is shared; callers
// must treat it as read-only.
func (d *Dictionary) Words() []string { return d.words }

// Contains reports whether w is a dictionary word, via the trie index.
func (d *Dictionary) Contains(w string) bool {
	return d.index.Get(patricia.Prefix(w)) != nil
}

// Count returns how many times w occurs in the dictionary.
func (d *Dictionary) Count(w string) int {
	item := d.index.Get(patricia.Prefix(w))
	if item == nil {
		return 0
	}
	return item.(int)
}

// VisitPrefix calls visit for every distinct dictionary word starting with
// prefix, in trie (lexicographic byte) order.
func (d *Dictionary) VisitPrefix(prefix string, visit func(word string, count int) error) error {
	return d.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		return visit(string(p), item.(int))
	})
}
