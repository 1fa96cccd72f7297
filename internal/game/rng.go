package game

// SimpleRNG is a small deterministic linear congruential generator.
// Using our own RNG (rather than math/rand) guarantees identical behavior
// across platforms and lets snapshots capture the exact state.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	return &SimpleRNG{state: uint64(seed)} //#nosec G115 -- intentional conversion for seeding
}

// Next returns the next raw 64-bit value.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). n must be positive.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 16) % uint64(n)) //#nosec G115 -- n is positive
}

// Range returns a value in [lo, hi).
func (r *SimpleRNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Sample returns k distinct indices drawn uniformly from [0, n) without
// replacement, via a partial Fisher-Yates shuffle.
func (r *SimpleRNG) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// State returns the internal state for snapshotting.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores the internal state from a snapshot.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}
