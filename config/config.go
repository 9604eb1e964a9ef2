// Package config defines the Options a pack call is driven by and their
// YAML on-disk form, grounded in the teacher's sample/solomesh Settings
// pattern and cmd/recast's YAML config command.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/arl/go-nest/nfp"
)

// Options controls one Pack invocation (spec.md §6 "Configuration
// table").
type Options struct {
	// Offset is the minimum clearance dilated onto every part boundary
	// after ingest.
	Offset float64 `yaml:"offset"`
	// Tolerance bounds discretization and simplification error; the
	// resulting packing over-approximates the true shapes by at most
	// 3*Tolerance.
	Tolerance float64 `yaml:"tolerance"`
	// PartialSolution, if false, makes a single infeasible part abort
	// the whole call with zero placements; if true, infeasible parts are
	// recorded as failed and packing continues.
	PartialSolution bool `yaml:"partial_solution"`
	// Rotations is the number of discrete rotations tried per part,
	// uniformly spaced from 0 to 360 degrees.
	Rotations int `yaml:"rotations"`
	// Persist selects the process-wide shared nfp.State instead of a
	// fresh one, when CustomStateKey is empty.
	Persist bool `yaml:"persist"`
	// CustomStateKey names an explicit State to use instead of the
	// process-wide shared one; the zero value means "no custom state
	// requested". Only consulted when Persist is also true, matching
	// original_source/python/packaide/packaide.py's pack() precedence.
	CustomStateKey string `yaml:"custom_state,omitempty"`
}

// ResolveState returns the nfp.State a pack call driven by opts should
// use: the named state if Persist and CustomStateKey are both set, the
// process-wide default if only Persist is set, or a fresh State
// otherwise (spec.md §6's persist/custom_state table, following
// original_source's `custom_state if persist and custom_state else
// persistent_state if persist else State()` precedence).
func (o Options) ResolveState() *nfp.State {
	switch {
	case o.Persist && o.CustomStateKey != "":
		return nfp.Named(o.CustomStateKey)
	case o.Persist:
		return nfp.Default()
	default:
		return nfp.New()
	}
}

// NewOptions returns Options filled with the spec's reference defaults:
// a single rotation, no offset, a tolerance suited to typical sheet
// units, and all-or-nothing placement.
func NewOptions() Options {
	return Options{
		Offset:          0,
		Tolerance:       0.1,
		PartialSolution: false,
		Rotations:       1,
		Persist:         false,
	}
}

// Load reads Options from a YAML file at path, starting from
// NewOptions' defaults so an incomplete file still yields valid Options.
func Load(path string) (Options, error) {
	opts := NewOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Save writes opts to path in YAML form, creating or truncating the
// file.
func Save(path string, opts Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
