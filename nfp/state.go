// Package nfp implements the No-Fit-Polygon engine and its cache
// (spec.md §4.D / §3 "State"): NFP/IFP computation for polygons with
// holes, memoized by a translation-invariant shape fingerprint so that
// repeated packings of overlapping shape sets are incremental.
package nfp

import "sync"

// Key is the NFP cache key: the identity of the stationary and orbiter
// polygons plus the orbiter's quantized rotation (spec.md §3, §4.D).
// RotationIndex is whatever index the driver's rotation set uses (see
// pack.Driver) — two calls for the same rotation index always mean the
// same rotation angle within one pack call.
type Key struct {
	StationaryID  int
	OrbiterID     int
	RotationIndex int
}

type point2 struct{ X, Y float64 }

// State owns the NFP cache and any memoized offset results, scoped to
// the caller (spec.md §3 "State"). The zero value is not usable; create
// one with New or use Default.
type State struct {
	mu    sync.Mutex
	cache map[Key][]ringFingerprint
}

// ringFingerprint is how rings are stored in the cache: geometry, kept
// separate from the geom package's Ring type purely so the cache can be
// defined in this file without an import cycle concern as the package
// grows; Engine converts to/from geom.Ring at its API boundary.
type ringFingerprint struct {
	points []point2
}

// New returns a fresh, empty State.
func New() *State {
	return &State{cache: make(map[Key][]ringFingerprint)}
}

var (
	defaultState *State
	defaultOnce  sync.Once
)

// Default returns the process-wide shared State used when the caller
// requests persist=true without supplying a custom_state (spec.md §6,
// §9 "Global default cache"). It is guarded by a one-time initializer;
// like the teacher's own process-wide defaults, it must not be mutated
// concurrently from multiple goroutines without external coordination
// beyond State's own per-call mutex (spec.md §5).
func Default() *State {
	defaultOnce.Do(func() {
		defaultState = New()
	})
	return defaultState
}

var (
	namedStates = map[string]*State{}
	namedMu     sync.Mutex
)

// Named returns the State registered under key, creating and registering
// a fresh one on first use. This is go-nest's adaptation of
// original_source/python/packaide/packaide.py's custom_state parameter:
// Python callers hand pack() a State object directly, but config.Options
// is a serializable YAML document (spec.md §6's custom_state field), so
// callers instead name a State and every caller using the same name
// shares it, process-wide, the same way Default does for persist=true
// without a name.
func Named(key string) *State {
	namedMu.Lock()
	defer namedMu.Unlock()
	s, ok := namedStates[key]
	if !ok {
		s = New()
		namedStates[key] = s
	}
	return s
}

// Len reports the number of distinct NFP keys currently memoized, the
// quantity spec.md §5 says State's memory is proportional to.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

func (s *State) get(k Key) ([]ringFingerprint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache[k]
	return v, ok
}

func (s *State) put(k Key, v []ringFingerprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[k] = v
}
