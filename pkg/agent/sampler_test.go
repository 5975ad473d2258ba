package agent

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRates(t *testing.T) {
	start := time.Unix(1000, 0)

	tests := []struct {
		name    string
		prev    counters
		cur     counters
		ok      bool
		ipc     string
		network uint64
		disk    uint64
	}{
		{
			name: "one cpu busy",
			prev: counters{at: start, cpuTicks: 100, ioBytes: 0, netBytes: 0},
			cur:  counters{at: start.Add(2 * time.Second), cpuTicks: 300, rss: 2048, ioBytes: 4000, netBytes: 1000},
			ok:   true, ipc: "1", network: 500, disk: 2000,
		},
		{
			name: "counters reset",
			prev: counters{at: start, cpuTicks: 500, ioBytes: 100, netBytes: 100},
			cur:  counters{at: start.Add(time.Second), cpuTicks: 10, ioBytes: 50, netBytes: 50},
			ok:   true, ipc: "0",
		},
		{
			name: "no time elapsed",
			prev: counters{at: start},
			cur:  counters{at: start},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := rates(tt.prev, tt.cur)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.ipc, p.IPC.String())
			assert.Equal(t, tt.cur.rss, p.Memory)
			assert.Equal(t, tt.network, p.Network)
			assert.Equal(t, tt.disk, p.Disk)
		})
	}
}

func TestProcSamplerBenchmark(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "meminfo"), []byte(
		"MemTotal:       16384 kB\nMemFree:         8192 kB\nMemAvailable:    8192 kB\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stat"), []byte(
		"cpu  10 0 10 100 0 0 0 0 0 0\n"+
			"cpu0 5 0 5 50 0 0 0 0 0 0\n"+
			"cpu1 5 0 5 50 0 0 0 0 0 0\n"), 0o644))

	s := NewProcSampler(root, 125_000_000, 500_000_000)
	p, err := s.Benchmark()
	require.NoError(t, err)

	assert.Equal(t, "2", p.IPC.String())
	assert.Equal(t, uint64(16384*1024), p.Memory)
	assert.Equal(t, uint64(125_000_000), p.Network)
	assert.Equal(t, uint64(500_000_000), p.Disk)
}

func TestProcSamplerMissingProcess(t *testing.T) {
	s := NewProcSampler(t.TempDir(), 0, 0)
	_, ok, err := s.Sample(1234)
	assert.Error(t, err)
	assert.False(t, ok)
}
