package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion guards the compiled binary layout.
const snapshotVersion = 1

// snapshot is the msgpack layout of a compiled dictionary.
type snapshot struct {
	Version    int      `msgpack:"v"`
	WordLength int      `msgpack:"l"`
	Words      []string `msgpack:"w"`
}

// Load reads a dictionary from path, choosing the format by extension:
// ".bin" is a compiled msgpack snapshot, anything else is plain text with
// one word per line. wordLen selects which words qualify.
func Load(path string, wordLen int) (*Dictionary, error) {
	if strings.EqualFold(filepath.Ext(path), ".bin") {
		return LoadBinary(path, wordLen)
	}
	return LoadText(path, wordLen)
}

// LoadText reads a plain-text word list. Lines are trimmed and lower-cased;
// only words of exactly wordLen runes are kept, in file order.
func LoadText(path string, wordLen int) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Source: path, Reason: "cannot open", Err: err}
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !utf8.ValidString(word) {
			return nil, &Error{Source: path, Reason: "invalid encoding, expected UTF-8"}
		}
		if len([]rune(word)) != wordLen {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Source: path, Reason: "read failed", Err: err}
	}
	if len(words) == 0 {
		return nil, &Error{Source: path, Reason: fmt.Sprintf("no qualifying words of length %d", wordLen)}
	}
	log.Debugf("Loaded %d words of length %d from %s", len(words), wordLen, path)
	return New(words, wordLen, path)
}

// LoadBinary reads a compiled msgpack snapshot produced by Compile.
func LoadBinary(path string, wordLen int) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Reason: "cannot open", Err: err}
	}
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, &Error{Source: path, Reason: "undecodable snapshot", Err: err}
	}
	if snap.Version != snapshotVersion {
		return nil, &Error{Source: path, Reason: fmt.Sprintf("unsupported snapshot version %d", snap.Version)}
	}
	if snap.WordLength != wordLen {
		return nil, &Error{Source: path, Reason: fmt.Sprintf("snapshot holds words of length %d, want %d", snap.WordLength, wordLen)}
	}
	if len(snap.Words) == 0 {
		return nil, &Error{Source: path, Reason: "snapshot is empty"}
	}
	log.Debugf("Loaded %d words from snapshot %s", len(snap.Words), path)
	return New(snap.Words, wordLen, path)
}

// Compile writes the dictionary as a msgpack snapshot, so later runs skip
// text parsing and length filtering.
func (d *Dictionary) Compile(path string) error {
	data, err := msgpack.Marshal(snapshot{
		Version:    snapshotVersion,
		WordLength: d.wordLen,
		Words:      d.words,
	})
	if err != nil {
		return &Error{Source: path, Reason: "encode failed", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &Error{Source: path, Reason: "write failed", Err: err}
	}
	log.Debugf("Compiled %d words into %s (%d bytes)", len(d.words), path, len(data))
	return nil
}
