/*
Package storage keeps server benchmarks across scheduler restarts.

A server benchmarks itself only once. The scheduler saves the submitted
profile and, when the same machine registers again, loads it and tells
the agent not to benchmark.

Two Store implementations exist:

  - BoltStore: a bbolt database at <dataDir>/flowsched.db with one
    "benchmarks" bucket keyed by server UUID, values JSON encoded
  - MemoryStore: a map, used when no data directory is configured and
    in tests

Lookups of unknown servers return ErrNotFound.
*/
package storage
