package random

import (
	"math/rand/v2"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
)

// MathRandomSource implements the RandomSource interface with math/rand/v2
type MathRandomSource struct{}

// NewMathRandomSource creates a new math/rand backed random source
func NewMathRandomSource() core.RandomSource {
	return &MathRandomSource{}
}

// Float64 returns a uniform random value in [0.0, 1.0)
func (s *MathRandomSource) Float64() float64 {
	return rand.Float64()
}

// IntN returns a uniform random value in [0, n)
func (s *MathRandomSource) IntN(n int) int {
	return rand.IntN(n)
}
