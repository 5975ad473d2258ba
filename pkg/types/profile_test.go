package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func norm(ipc, mem, net, disk string) NormalizedResourceProfile {
	return NormalizedResourceProfile{IPC: dec(ipc), Memory: dec(mem), Network: dec(net), Disk: dec(disk)}
}

func TestNormalize(t *testing.T) {
	limit := ResourceProfile{IPC: dec("2"), Memory: 1000, Network: 400, Disk: 0}

	tests := []struct {
		name    string
		profile ResourceProfile
		want    NormalizedResourceProfile
	}{
		{
			name:    "half of everything",
			profile: ResourceProfile{IPC: dec("1"), Memory: 500, Network: 200, Disk: 0},
			want:    norm("0.5", "0.5", "0.5", "0"),
		},
		{
			name:    "zero limit divides by one",
			profile: ResourceProfile{IPC: dec("2"), Memory: 1000, Network: 400, Disk: 7},
			want:    norm("1", "1", "1", "7"),
		},
		{
			name:    "request above limit is unbounded",
			profile: ResourceProfile{IPC: dec("4"), Memory: 3000, Network: 0, Disk: 0},
			want:    norm("2", "3", "0", "0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.Normalize(limit)
			assert.True(t, tt.want.IPC.Equal(got.IPC), "ipc %s", got.IPC)
			assert.True(t, tt.want.Memory.Equal(got.Memory), "memory %s", got.Memory)
			assert.True(t, tt.want.Network.Equal(got.Network), "network %s", got.Network)
			assert.True(t, tt.want.Disk.Equal(got.Disk), "disk %s", got.Disk)
		})
	}
}

func TestCostRounding(t *testing.T) {
	tests := []struct {
		name    string
		profile NormalizedResourceProfile
		want    int64
	}{
		{"max profile", MaxProfile(), 400},
		{"zero profile", ZeroProfile(), 0},
		{"round down", norm("0.1234", "0", "0", "0"), 12},
		{"half rounds up", norm("0.125", "0", "0", "0"), 13},
		{"half rounds away from zero", norm("-0.125", "0", "0", "0"), -13},
		{"thirds", norm("0.3333333333333333", "0.3333333333333333", "0.3333333333333333", "0"), 100},
		{"sum of dimensions", norm("0.25", "0.25", "0.25", "0.25"), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Cost())
		})
	}
}

func TestCostTieBreak(t *testing.T) {
	// Distinct profiles that lower to the same integer cost.
	a := norm("0.504", "0", "0", "0")
	b := norm("0.496", "0", "0", "0")
	assert.Equal(t, a.Cost(), b.Cost())
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDominates(t *testing.T) {
	free := norm("0.5", "0.5", "0.5", "0.5")

	tests := []struct {
		name    string
		request NormalizedResourceProfile
		want    bool
	}{
		{"smaller in every dimension", norm("0.1", "0.2", "0.3", "0.4"), true},
		{"equal", free, true},
		{"one dimension larger", norm("0.1", "0.6", "0.1", "0.1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, free.Dominates(tt.request))
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := norm("0.5", "0.25", "1", "0")
	b := norm("0.25", "0.25", "0.5", "0.5")

	sum := a.Add(b)
	assert.True(t, sum.InnerProduct().Equal(dec("3.25")))

	diff := MaxProfile().Sub(a)
	assert.True(t, diff.InnerProduct().Equal(dec("2.25")))

	half := sum.DivScalar(2)
	assert.True(t, half.IPC.Equal(dec("0.375")))
	assert.True(t, half.Disk.Equal(dec("0.25")))
}

func TestInBounds(t *testing.T) {
	assert.True(t, MaxProfile().InBounds())
	assert.True(t, ZeroProfile().InBounds())
	assert.False(t, norm("1.01", "0", "0", "0").InBounds())
	assert.False(t, norm("0", "-0.1", "0", "0").InBounds())
}

func TestResourceProfileMax(t *testing.T) {
	a := ResourceProfile{IPC: dec("1.5"), Memory: 10, Network: 1, Disk: 30}
	b := ResourceProfile{IPC: dec("0.5"), Memory: 20, Network: 2, Disk: 3}

	m := a.Max(b)
	assert.True(t, m.IPC.Equal(dec("1.5")))
	assert.Equal(t, uint64(20), m.Memory)
	assert.Equal(t, uint64(2), m.Network)
	assert.Equal(t, uint64(30), m.Disk)

	s := a.Add(b)
	assert.True(t, s.IPC.Equal(dec("2")))
	assert.Equal(t, uint64(33), s.Disk)
}

func TestCountersProfile(t *testing.T) {
	c := Counters{Instructions: 300, Cycles: 200, Memory: 64, VFSRead: 5, VFSWrite: 6, TCPSend: 7, TCPRecv: 8}
	p := c.Profile()
	assert.True(t, p.IPC.Equal(dec("1.5")))
	assert.Equal(t, uint64(64), p.Memory)
	assert.Equal(t, uint64(11), p.Disk)
	assert.Equal(t, uint64(15), p.Network)

	assert.True(t, Counters{Instructions: 10}.Profile().IPC.IsZero())
}

func TestValidate(t *testing.T) {
	require.NoError(t, OneProfile().Validate())
	err := ResourceProfile{IPC: dec("-1")}.Validate()
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestAvgProfile(t *testing.T) {
	task := NewTask("web", "nginx", "", nil, false)
	server := uuid.New()
	limit := ResourceProfile{IPC: dec("1"), Memory: 100, Network: 100, Disk: 100}

	_, ok := task.AvgProfile(server, limit)
	assert.False(t, ok)

	task.InsertProfile(server, ResourceProfile{IPC: dec("0.2"), Memory: 10, Network: 0, Disk: 40})
	task.InsertProfile(server, ResourceProfile{IPC: dec("0.4"), Memory: 30, Network: 0, Disk: 40})
	task.InsertProfile(server, ResourceProfile{IPC: dec("0.6"), Memory: 50, Network: 30, Disk: 40})

	avg, ok := task.AvgProfile(server, limit)
	require.True(t, ok)
	assert.True(t, avg.IPC.Equal(dec("0.4")), "ipc %s", avg.IPC)
	assert.True(t, avg.Memory.Equal(dec("0.3")), "memory %s", avg.Memory)
	assert.True(t, avg.Network.Equal(dec("0.1")), "network %s", avg.Network)
	assert.True(t, avg.Disk.Equal(dec("0.4")), "disk %s", avg.Disk)
}

func TestTaskClone(t *testing.T) {
	req := OneProfile()
	task := NewTask("batch", "busybox", "sleep 1", &req, true)
	server := uuid.New()
	task.InsertProfile(server, OneProfile())

	c := task.Clone()
	c.Request.Memory = 99
	c.Profiles[server][0].Memory = 42

	assert.Equal(t, uint64(1), task.Request.Memory)
	assert.Equal(t, uint64(1), task.Profiles[server][0].Memory)
	assert.False(t, task.IsProfiled())
	assert.True(t, NewTask("x", "y", "", nil, false).IsProfiled())
}
