package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// CostScale is the factor applied to a normalized inner product before it
// is rounded to an integer flow cost.
const CostScale = 100

// ErrInvalidProfile is returned by Validate for unusable samples.
var ErrInvalidProfile = errors.New("invalid resource profile")

// ResourceProfile is an absolute resource footprint of a machine or task.
type ResourceProfile struct {
	IPC     decimal.Decimal `json:"ipc" yaml:"ipc"`
	Memory  uint64          `json:"memory" yaml:"memory"`
	Network uint64          `json:"network" yaml:"network"`
	Disk    uint64          `json:"disk" yaml:"disk"`
}

// OneProfile has every dimension set to one. It is the normalization
// divisor when no server has been benchmarked.
func OneProfile() ResourceProfile {
	return ResourceProfile{IPC: decimal.NewFromInt(1), Memory: 1, Network: 1, Disk: 1}
}

// Counters are raw measurement totals as reported by an agent.
type Counters struct {
	Instructions uint64 `json:"instructions"`
	Cycles       uint64 `json:"cycles"`
	Memory       uint64 `json:"memory"`
	VFSRead      uint64 `json:"vfs_read"`
	VFSWrite     uint64 `json:"vfs_write"`
	TCPSend      uint64 `json:"tcp_send_bytes"`
	TCPRecv      uint64 `json:"tcp_recv_bytes"`
}

// Profile converts raw counters into a profile. IPC is zero when no cycles
// were counted.
func (c Counters) Profile() ResourceProfile {
	ipc := decimal.Zero
	if c.Cycles > 0 {
		ipc = fromUint(c.Instructions).Div(fromUint(c.Cycles))
	}
	return ResourceProfile{
		IPC:     ipc,
		Memory:  c.Memory,
		Network: c.TCPSend + c.TCPRecv,
		Disk:    c.VFSRead + c.VFSWrite,
	}
}

// Validate rejects profiles with a negative IPC.
func (p ResourceProfile) Validate() error {
	if p.IPC.IsNegative() {
		return fmt.Errorf("%w: negative ipc %s", ErrInvalidProfile, p.IPC)
	}
	return nil
}

// Add returns the dimension-wise sum of p and o.
func (p ResourceProfile) Add(o ResourceProfile) ResourceProfile {
	return ResourceProfile{
		IPC:     p.IPC.Add(o.IPC),
		Memory:  p.Memory + o.Memory,
		Network: p.Network + o.Network,
		Disk:    p.Disk + o.Disk,
	}
}

// Max returns the dimension-wise maximum of p and o.
func (p ResourceProfile) Max(o ResourceProfile) ResourceProfile {
	return ResourceProfile{
		IPC:     decimal.Max(p.IPC, o.IPC),
		Memory:  max(p.Memory, o.Memory),
		Network: max(p.Network, o.Network),
		Disk:    max(p.Disk, o.Disk),
	}
}

// Normalize divides every dimension of p by the matching dimension of
// limit. A zero dimension in limit divides by one instead.
func (p ResourceProfile) Normalize(limit ResourceProfile) NormalizedResourceProfile {
	return NormalizedResourceProfile{
		IPC:     ratio(p.IPC, limit.IPC),
		Memory:  ratio(fromUint(p.Memory), fromUint(limit.Memory)),
		Network: ratio(fromUint(p.Network), fromUint(limit.Network)),
		Disk:    ratio(fromUint(p.Disk), fromUint(limit.Disk)),
	}
}

func (p ResourceProfile) String() string {
	return fmt.Sprintf("ipc=%s mem=%d net=%d disk=%d", p.IPC, p.Memory, p.Network, p.Disk)
}

// NormalizedResourceProfile is a dimensionless profile relative to the
// strongest known server. Values of benchmarked servers lie in [0, 1].
type NormalizedResourceProfile struct {
	IPC     decimal.Decimal `json:"ipc"`
	Memory  decimal.Decimal `json:"memory"`
	Network decimal.Decimal `json:"network"`
	Disk    decimal.Decimal `json:"disk"`
}

// MaxProfile is the worst case profile with every dimension equal to one.
func MaxProfile() NormalizedResourceProfile {
	one := decimal.NewFromInt(1)
	return NormalizedResourceProfile{IPC: one, Memory: one, Network: one, Disk: one}
}

// ZeroProfile has every dimension equal to zero.
func ZeroProfile() NormalizedResourceProfile {
	return NormalizedResourceProfile{IPC: decimal.Zero, Memory: decimal.Zero, Network: decimal.Zero, Disk: decimal.Zero}
}

func (p NormalizedResourceProfile) Add(o NormalizedResourceProfile) NormalizedResourceProfile {
	return NormalizedResourceProfile{
		IPC:     p.IPC.Add(o.IPC),
		Memory:  p.Memory.Add(o.Memory),
		Network: p.Network.Add(o.Network),
		Disk:    p.Disk.Add(o.Disk),
	}
}

func (p NormalizedResourceProfile) Sub(o NormalizedResourceProfile) NormalizedResourceProfile {
	return NormalizedResourceProfile{
		IPC:     p.IPC.Sub(o.IPC),
		Memory:  p.Memory.Sub(o.Memory),
		Network: p.Network.Sub(o.Network),
		Disk:    p.Disk.Sub(o.Disk),
	}
}

// DivScalar divides every dimension by n. n must be positive.
func (p NormalizedResourceProfile) DivScalar(n int64) NormalizedResourceProfile {
	d := decimal.NewFromInt(n)
	return NormalizedResourceProfile{
		IPC:     p.IPC.Div(d),
		Memory:  p.Memory.Div(d),
		Network: p.Network.Div(d),
		Disk:    p.Disk.Div(d),
	}
}

// Dominates reports whether p is at least o in every dimension.
func (p NormalizedResourceProfile) Dominates(o NormalizedResourceProfile) bool {
	return p.IPC.GreaterThanOrEqual(o.IPC) &&
		p.Memory.GreaterThanOrEqual(o.Memory) &&
		p.Network.GreaterThanOrEqual(o.Network) &&
		p.Disk.GreaterThanOrEqual(o.Disk)
}

// InnerProduct sums all dimensions.
func (p NormalizedResourceProfile) InnerProduct() decimal.Decimal {
	return p.IPC.Add(p.Memory).Add(p.Network).Add(p.Disk)
}

// Compare orders profiles by inner product.
func (p NormalizedResourceProfile) Compare(o NormalizedResourceProfile) int {
	return p.InnerProduct().Cmp(o.InnerProduct())
}

// Cost lowers the profile to an integer flow cost: the inner product
// scaled by CostScale and rounded half away from zero.
func (p NormalizedResourceProfile) Cost() int64 {
	return p.InnerProduct().Mul(decimal.NewFromInt(CostScale)).Round(0).IntPart()
}

// InBounds reports whether every dimension lies in [0, 1].
func (p NormalizedResourceProfile) InBounds() bool {
	one := decimal.NewFromInt(1)
	for _, d := range []decimal.Decimal{p.IPC, p.Memory, p.Network, p.Disk} {
		if d.IsNegative() || d.GreaterThan(one) {
			return false
		}
	}
	return true
}

func (p NormalizedResourceProfile) String() string {
	return fmt.Sprintf("ipc=%s mem=%s net=%s disk=%s",
		p.IPC.StringFixed(3), p.Memory.StringFixed(3), p.Network.StringFixed(3), p.Disk.StringFixed(3))
}

func fromUint(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

func ratio(n, d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return n
	}
	return n.Div(d)
}
