package wordlist

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultPath is the dictionary shipped by most Unix systems.
const DefaultPath = "/usr/share/dict/words"

var (
	// ErrRead indicates the dictionary file could not be opened or read.
	ErrRead = errors.New("cannot read word list")
	// ErrEncoding indicates the dictionary file is not valid UTF-8 text.
	ErrEncoding = errors.New("word list is not valid UTF-8")
)

// List is an immutable, in-memory dictionary.
type List struct {
	buf   string
	lines []string
}

// Load reads the whole file at path and splits it into lines.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse builds a List from raw file contents. Lines are separated by "\n";
// a trailing "\r" is dropped and nothing else is trimmed.
func Parse(data []byte) (*List, error) {
	if !utf8.Valid(data) {
		return nil, ErrEncoding
	}

	buf := string(data)
	lines := make([]string, 0, strings.Count(buf, "\n")+1)
	for line := range strings.Lines(buf) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
	}

	return &List{buf: buf, lines: lines}, nil
}

// Len returns the number of lines in the list.
func (l *List) Len() int {
	return len(l.lines)
}

// Size returns the size of the loaded buffer in bytes.
func (l *List) Size() int {
	return len(l.buf)
}

// Lines returns a copy of all lines in file order.
func (l *List) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Filter returns the lines whose length is within [minLen, maxLen].
func (l *List) Filter(minLen, maxLen uint) []string {
	return FilterLength(l.lines, minLen, maxLen)
}

// FilterLength returns, in order, the entries of lines whose length in
// characters is within [minLen, maxLen]. The input is not modified.
func FilterLength(lines []string, minLen, maxLen uint) []string {
	out := make([]string, 0)
	for _, line := range lines {
		n := uint(utf8.RuneCountInString(line))
		if n >= minLen && n <= maxLen {
			out = append(out, line)
		}
	}
	return out
}
