package types

import "github.com/google/uuid"

// Server is a machine able to run tasks.
type Server struct {
	ID       uuid.UUID `json:"id"`
	Hostname string    `json:"hostname"`
	// Profile stays nil until the server submits its benchmark.
	Profile *ResourceProfile `json:"profile,omitempty"`
}

// Normalize returns the server profile relative to limit. ok is false for
// a server that has not been benchmarked.
func (s *Server) Normalize(limit ResourceProfile) (p NormalizedResourceProfile, ok bool) {
	if s.Profile == nil {
		return ZeroProfile(), false
	}
	return s.Profile.Normalize(limit), true
}

// Clone returns a deep copy of s.
func (s *Server) Clone() *Server {
	c := *s
	if s.Profile != nil {
		p := *s.Profile
		c.Profile = &p
	}
	return &c
}
