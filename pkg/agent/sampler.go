package agent

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	linux "github.com/c9s/goprocinfo/linux"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/shopspring/decimal"
)

// ClockTicks is USER_HZ, the unit of the CPU times in /proc/<pid>/stat.
const ClockTicks = 100

// ProcSampler reads machine and process usage from procfs. IPC is
// approximated by CPU seconds used per wall clock second, so a machine is
// benchmarked at its CPU count.
type ProcSampler struct {
	root string
	// Network and Disk bandwidth of the machine in bytes per second;
	// procfs does not expose them.
	network uint64
	disk    uint64
	now     func() time.Time

	mu   sync.Mutex
	last map[uint32]counters
}

type counters struct {
	at       time.Time
	cpuTicks uint64
	rss      uint64
	ioBytes  uint64
	netBytes uint64
}

// NewProcSampler creates a sampler reading the procfs mounted at root.
func NewProcSampler(root string, network, disk uint64) *ProcSampler {
	if root == "" {
		root = "/proc"
	}
	return &ProcSampler{
		root:    root,
		network: network,
		disk:    disk,
		now:     time.Now,
		last:    make(map[uint32]counters),
	}
}

// Benchmark implements Sampler
func (s *ProcSampler) Benchmark() (types.ResourceProfile, error) {
	mem, err := linux.ReadMemInfo(filepath.Join(s.root, "meminfo"))
	if err != nil {
		return types.ResourceProfile{}, fmt.Errorf("failed to read meminfo: %w", err)
	}
	stat, err := linux.ReadStat(filepath.Join(s.root, "stat"))
	if err != nil {
		return types.ResourceProfile{}, fmt.Errorf("failed to read stat: %w", err)
	}
	cpus := len(stat.CPUStats)
	if cpus == 0 {
		cpus = 1
	}
	return types.ResourceProfile{
		IPC:     decimal.NewFromInt(int64(cpus)),
		Memory:  mem.MemTotal * 1024,
		Network: s.network,
		Disk:    s.disk,
	}, nil
}

// Sample implements Sampler
func (s *ProcSampler) Sample(pid uint32) (types.ResourceProfile, bool, error) {
	cur, err := s.read(pid)
	if err != nil {
		return types.ResourceProfile{}, false, err
	}

	s.mu.Lock()
	prev, ok := s.last[pid]
	s.last[pid] = cur
	s.mu.Unlock()

	if !ok {
		return types.ResourceProfile{}, false, nil
	}
	p, ok := rates(prev, cur)
	return p, ok, nil
}

// Forget implements Sampler
func (s *ProcSampler) Forget(pid uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.last, pid)
}

func (s *ProcSampler) read(pid uint32) (counters, error) {
	dir := filepath.Join(s.root, strconv.FormatUint(uint64(pid), 10))

	stat, err := linux.ReadProcessStat(filepath.Join(dir, "stat"))
	if err != nil {
		return counters{}, fmt.Errorf("failed to read process stat: %w", err)
	}
	status, err := linux.ReadProcessStatus(filepath.Join(dir, "status"))
	if err != nil {
		return counters{}, fmt.Errorf("failed to read process status: %w", err)
	}
	io, err := linux.ReadProcessIO(filepath.Join(dir, "io"))
	if err != nil {
		return counters{}, fmt.Errorf("failed to read process io: %w", err)
	}
	// The task runs in its own network namespace, so the process view of
	// net/dev only holds the task's traffic.
	netStats, err := linux.ReadNetworkStat(filepath.Join(dir, "net", "dev"))
	if err != nil {
		return counters{}, fmt.Errorf("failed to read network stats: %w", err)
	}

	c := counters{
		at:       s.now(),
		cpuTicks: stat.Utime + stat.Stime,
		rss:      status.VmRSS * 1024,
		ioBytes:  io.ReadBytes + io.WriteBytes,
	}
	for _, n := range netStats {
		if n.Iface == "lo" {
			continue
		}
		c.netBytes += n.RxBytes + n.TxBytes
	}
	return c, nil
}

// rates turns two readings of the same process into a usage profile.
// Counters that went backwards count as zero.
func rates(prev, cur counters) (types.ResourceProfile, bool) {
	elapsed := cur.at.Sub(prev.at).Seconds()
	if elapsed <= 0 {
		return types.ResourceProfile{}, false
	}
	perSecond := func(a, b uint64) uint64 {
		if b < a {
			return 0
		}
		return uint64(float64(b-a) / elapsed)
	}

	cpu := float64(0)
	if cur.cpuTicks > prev.cpuTicks {
		cpu = float64(cur.cpuTicks-prev.cpuTicks) / ClockTicks / elapsed
	}
	return types.ResourceProfile{
		IPC:     decimal.NewFromFloat(cpu).Round(2),
		Memory:  cur.rss,
		Network: perSecond(prev.netBytes, cur.netBytes),
		Disk:    perSecond(prev.ioBytes, cur.ioBytes),
	}, true
}
