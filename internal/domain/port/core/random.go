package core

// RandomSource abstracts random number generation for the domain.
// The transaction ID generator and the payment processing simulator draw
// through this port so tests can drive deterministic outcomes.
type RandomSource interface {
	// Float64 returns a uniform random value in [0.0, 1.0)
	Float64() float64
	// IntN returns a uniform random value in [0, n)
	IntN(n int) int
}
