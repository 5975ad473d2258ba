package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var bucketBenchmarks = []byte("benchmarks")

// BoltStore implements Store interface using BoltDB
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates flowsched.db inside dataDir.
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, "flowsched.db")

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketBenchmarks); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketBenchmarks, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) SaveBenchmark(b *Benchmark) error {
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = time.Now()
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketBenchmarks).Put([]byte(b.ServerID.String()), data)
	})
}

func (s *BoltStore) GetBenchmark(serverID uuid.UUID) (*Benchmark, error) {
	var b Benchmark
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketBenchmarks).Get([]byte(serverID.String()))
		if data == nil {
			return fmt.Errorf("benchmark %s: %w", serverID, ErrNotFound)
		}
		return json.Unmarshal(data, &b)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BoltStore) ListBenchmarks() ([]*Benchmark, error) {
	var out []*Benchmark
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketBenchmarks).ForEach(func(k, v []byte) error {
			var b Benchmark
			if err := json.Unmarshal(v, &b); err != nil {
				return fmt.Errorf("failed to decode benchmark %s: %w", k, err)
			}
			out = append(out, &b)
			return nil
		})
	})
	return out, err
}

func (s *BoltStore) DeleteBenchmark(serverID uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketBenchmarks).Delete([]byte(serverID.String()))
	})
}
