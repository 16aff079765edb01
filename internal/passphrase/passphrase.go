// Package passphrase turns sampled dictionary words into printable passphrases.
package passphrase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/eugenenazirov/pwrs/internal/sampler"
)

// Separator joins the words of a passphrase.
const Separator = " "

// Format joins words with Separator and applies the case mode.
func Format(words []string, mode CaseMode) string {
	return mode.Apply(strings.Join(words, Separator))
}

// Generator draws passphrases from a fixed pool of candidate words.
type Generator struct {
	candidates []string
	sampler    sampler.Sampler
	number     uint
	mode       CaseMode
}

// NewGenerator constructs a Generator producing passphrases of number words.
// The candidates slice is shared, not copied, and must not be modified afterwards.
func NewGenerator(candidates []string, s sampler.Sampler, number uint, mode CaseMode) *Generator {
	return &Generator{
		candidates: candidates,
		sampler:    s,
		number:     number,
		mode:       mode,
	}
}

// Generate draws a fresh sample and formats it as one passphrase.
func (g *Generator) Generate() (string, error) {
	// Compared as uint so sizes beyond math.MaxInt cannot wrap negative.
	if g.number > uint(len(g.candidates)) {
		return "", fmt.Errorf("%w: requested %d, have %d", sampler.ErrInsufficientCandidates, g.number, len(g.candidates))
	}

	words, err := g.sampler.Sample(g.candidates, int(g.number))
	if err != nil {
		return "", err
	}
	return Format(words, g.mode), nil
}

// Write streams count passphrases to w, one per line, each sampled independently.
// The pool and size never change between draws, so a sampling error surfaces
// before the first line is written.
func (g *Generator) Write(w io.Writer, count uint) error {
	bw := bufio.NewWriter(w)
	for i := uint(0); i < count; i++ {
		phrase, err := g.Generate()
		if err != nil {
			return fmt.Errorf("generate passphrase: %w", err)
		}
		if _, err := bw.WriteString(phrase + "\n"); err != nil {
			return fmt.Errorf("write passphrases: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write passphrases: %w", err)
	}
	return nil
}
