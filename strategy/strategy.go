package strategy

import "golang.org/x/exp/slices"

// Strategy is an interchangeable algorithm that reorders a sequence of strings.
// Implementations must not mutate data and must return a permutation of it.
type Strategy interface {
	// Transform returns a reordered copy of data.
	Transform(data []string) []string
}

// The Func type is an adapter to allow the use of ordinary functions as Strategy.
// If f is a function with the appropriate signature, Func(f) is a Strategy that calls f.
type Func func(data []string) []string

// Transform calls f(data).
func (f Func) Transform(data []string) []string {
	return f(data)
}

var (
	_ Strategy = Sort{}
	_ Strategy = Reverse{}
)

// Sort orders the sequence ascending, lexicographically.
type Sort struct{}

func (Sort) Transform(data []string) []string {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return sorted
}

// Reverse returns the sequence back-to-front.
type Reverse struct{}

func (Reverse) Transform(data []string) []string {
	reversed := slices.Clone(data)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
