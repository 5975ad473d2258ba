package flow

import (
	"math"
	"strconv"
)

// Cost is the per-unit price of pushing flow across an edge.
//
// All arithmetic on Cost saturates at MaxCost and MinCost so that sums
// involving the "unreached" sentinel never wrap around.
type Cost int64

const (
	// MaxCost marks an unreached distance and renders as "inf".
	MaxCost Cost = math.MaxInt64
	// MinCost is the lower saturation bound.
	MinCost Cost = math.MinInt64
)

// Add returns c+o, clamped to [MinCost, MaxCost].
func (c Cost) Add(o Cost) Cost {
	s := c + o
	if o > 0 && s < c {
		return MaxCost
	}
	if o < 0 && s > c {
		return MinCost
	}
	return s
}

// Mul returns c*n, clamped to [MinCost, MaxCost].
func (c Cost) Mul(n int64) Cost {
	if c == 0 || n == 0 {
		return 0
	}
	p := c * Cost(n)
	if p/Cost(n) != c || (c == -1 && n == math.MinInt64) || (n == -1 && c == MinCost) {
		if (c > 0) == (n > 0) {
			return MaxCost
		}
		return MinCost
	}
	return p
}

// Neg returns -c, clamped so that -MinCost becomes MaxCost.
func (c Cost) Neg() Cost {
	if c == MinCost {
		return MaxCost
	}
	return -c
}

func (c Cost) String() string {
	if c == MaxCost {
		return "inf"
	}
	return strconv.FormatInt(int64(c), 10)
}
