package storage

import (
	"errors"
	"time"

	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no record exists for a key.
var ErrNotFound = errors.New("not found")

// Benchmark is the one-time profile a server submitted, kept so a server
// that re-registers after a restart is not asked to benchmark again.
type Benchmark struct {
	ServerID  uuid.UUID             `json:"server_id"`
	Hostname  string                `json:"hostname"`
	Profile   types.ResourceProfile `json:"profile"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Store defines the interface for benchmark storage
type Store interface {
	SaveBenchmark(b *Benchmark) error
	GetBenchmark(serverID uuid.UUID) (*Benchmark, error)
	ListBenchmarks() ([]*Benchmark, error)
	DeleteBenchmark(serverID uuid.UUID) error
	Close() error
}
