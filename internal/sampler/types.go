package sampler

// Sampler describes the behaviour required from a word sampler.
type Sampler interface {
	// Sample returns n distinct elements of candidates in random order.
	Sample(candidates []string, n int) ([]string, error)
}
