package passphrase

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/pwrs/internal/sampler"
	"github.com/eugenenazirov/pwrs/internal/wordlist"
)

type stubSampler struct {
	draws [][]string
	err   error
	calls int
}

func (s *stubSampler) Sample(_ []string, _ int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	draw := s.draws[s.calls%len(s.draws)]
	s.calls++
	return draw, nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// cappedWriter accepts limit bytes and then fails every write.
type cappedWriter struct {
	limit   int
	written int
	calls   int
}

func (w *cappedWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.written+len(p) > w.limit {
		return 0, errors.New("capacity reached")
	}
	w.written += len(p)
	return len(p), nil
}

func seededSampler(seed uint64) sampler.Sampler {
	return sampler.New(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestFormat(t *testing.T) {
	words := []string{"Paris", "ÉCOLE", "dog"}

	assert.Equal(t, "paris école dog", Format(words, Lower))
	assert.Equal(t, "Paris ÉCOLE dog", Format(words, AsIs))
	assert.Equal(t, "PARIS ÉCOLE DOG", Format(words, Upper))
	assert.Equal(t, "", Format(nil, Lower))
	assert.Equal(t, "", Format([]string{}, AsIs))
}

func TestParseCaseMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    CaseMode
		wantErr bool
	}{
		{raw: "lower", want: Lower},
		{raw: "ASIS", want: AsIs},
		{raw: " upper ", want: Upper},
		{raw: "title", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseCaseMode(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCaseMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"Cat", "Dog"}}}
	g := NewGenerator([]string{"Cat", "Dog"}, stub, 2, Lower)

	got, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "cat dog", got)
}

func TestGenerator_WriteSamplesEveryLine(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}}}
	g := NewGenerator([]string{"a", "b", "c", "d", "e", "f"}, stub, 2, AsIs)

	var out bytes.Buffer
	require.NoError(t, g.Write(&out, 3))

	assert.Equal(t, "a b\nc d\ne f\n", out.String())
	assert.Equal(t, 3, stub.calls)
}

func TestGenerator_WriteZeroCount(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"a"}}}
	g := NewGenerator([]string{"a"}, stub, 1, Lower)

	var out bytes.Buffer
	require.NoError(t, g.Write(&out, 0))

	assert.Empty(t, out.String())
	assert.Zero(t, stub.calls)
}

func TestGenerator_WriteNothingOnSamplerError(t *testing.T) {
	stub := &stubSampler{err: sampler.ErrInsufficientCandidates}
	g := NewGenerator(nil, stub, 4, Lower)

	var out bytes.Buffer
	err := g.Write(&out, 3)

	assert.ErrorIs(t, err, sampler.ErrInsufficientCandidates)
	assert.Empty(t, out.String())
}

func TestGenerator_WriteError(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"a"}}}
	g := NewGenerator([]string{"a"}, stub, 1, Lower)

	err := g.Write(failingWriter{}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGenerator_DictionaryScenario(t *testing.T) {
	list, err := wordlist.Parse([]byte("cat\ndog\nfrog\nlion\nwolf\n"))
	require.NoError(t, err)

	candidates := list.Filter(3, 4)
	require.Equal(t, []string{"cat", "dog", "frog", "lion", "wolf"}, candidates)

	candidates = list.Filter(3, 3)
	require.Equal(t, []string{"cat", "dog"}, candidates)

	g := NewGenerator(candidates, seededSampler(11), 2, Lower)
	for i := 0; i < 10; i++ {
		got, err := g.Generate()
		require.NoError(t, err)
		assert.Contains(t, []string{"cat dog", "dog cat"}, got)
	}
}

func TestGenerator_CountProducesIndependentLines(t *testing.T) {
	pool := strings.Fields("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima")
	g := NewGenerator(pool, seededSampler(5), 3, Lower)

	var out bytes.Buffer
	require.NoError(t, g.Write(&out, 3))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		words := strings.Fields(line)
		assert.Len(t, words, 3)
		for _, w := range words {
			assert.True(t, slices.Contains(pool, w), "unexpected word %q", w)
		}
	}
	assert.False(t, lines[0] == lines[1] && lines[1] == lines[2], "expected independent draws, got %v", lines)
}

func TestGenerator_ZeroNumberYieldsEmptyLine(t *testing.T) {
	g := NewGenerator([]string{"cat", "dog"}, seededSampler(1), 0, Lower)

	var out bytes.Buffer
	require.NoError(t, g.Write(&out, 1))
	assert.Equal(t, "\n", out.String())
}

func TestGenerator_AsIsPreservesCasing(t *testing.T) {
	g := NewGenerator([]string{"Cat", "DOG"}, seededSampler(2), 2, AsIs)

	got, err := g.Generate()
	require.NoError(t, err)
	assert.Contains(t, []string{"Cat DOG", "DOG Cat"}, got)
}

func TestGenerator_NumberAboveMaxIntIsInsufficient(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"cat"}}}
	g := NewGenerator([]string{"cat", "dog"}, stub, math.MaxUint, Lower)

	var out bytes.Buffer
	err := g.Write(&out, 1)

	require.ErrorIs(t, err, sampler.ErrInsufficientCandidates)
	assert.Contains(t, err.Error(), "requested 18446744073709551615, have 2")
	assert.Empty(t, out.String())
	assert.Zero(t, stub.calls)
}

func TestGenerator_CountAboveMaxIntKeepsWriting(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"a"}}}
	g := NewGenerator([]string{"a"}, stub, 1, Lower)

	w := &cappedWriter{limit: 64 * 1024}
	err := g.Write(w, math.MaxUint)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity reached")
	assert.Positive(t, w.written)
	assert.Greater(t, stub.calls, 1000)
}

func TestGenerator_WriteStreamsLines(t *testing.T) {
	stub := &stubSampler{draws: [][]string{{"alpha", "bravo"}}}
	g := NewGenerator([]string{"alpha", "bravo"}, stub, 2, Lower)

	w := &cappedWriter{limit: math.MaxInt}
	require.NoError(t, g.Write(w, 10_000))

	assert.Equal(t, 10_000*len("alpha bravo\n"), w.written)
	assert.Greater(t, w.calls, 1, "expected output to be flushed in chunks")
}
