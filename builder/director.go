// Package builder implements the Builder/Director session (C5,
// spec.md §4.5/§4.6/§6): constructive operations that mutate a
// TopologyGraph and register geometry in a GeometryBinding atomically,
// plus the CurveElement capability set that lets homotopy be written
// once against both Edge and Wire operands (spec.md §9).
package builder

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/brep/binding"
	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/mesh"
	"github.com/cpmech/brep/topo"
)

// Config carries the tunable numeric knobs of a Director, in the same
// spirit as gofem's Global singleton carrying solver tolerances — here
// scaled down to the handful of constants this kernel actually needs
// (there is no input-deck parser to source them from).
type Config struct {
	// Tolerance is the global geometric equality threshold τ (spec.md §3).
	Tolerance float64
	// IntegrityTolerance is τ_integrity used by CheckIntegrity's
	// curve-on-surface check (spec.md §8).
	IntegrityTolerance float64
	// PresearchGrid is the side length of the coarse grid search.
	PresearchGrid int
	// MaxNewtonIterations bounds search_parameter's damped Newton loop.
	MaxNewtonIterations int
	// Verbose gates io.Pf-style diagnostic printing; never on by
	// default, never on the per-face tessellation hot path.
	Verbose bool
}

// DefaultConfig matches the constants named throughout spec.md.
func DefaultConfig() Config {
	return Config{
		Tolerance:           1.0e-7,
		IntegrityTolerance:  1.0e-6,
		PresearchGrid:       51,
		MaxNewtonIterations: 100,
	}
}

// Director owns the session-scoped identity counter and the
// GeometryBinding that every Builder operation mutates. Mutation is
// single-threaded: only one Building call may be in flight at a time
// (spec.md §5); Director enforces this with a simple busy flag rather
// than a full mutex, since recursive Building calls are a programming
// error, not a contended-resource situation.
type Director struct {
	cfg     Config
	nextID  topo.ID
	binding *binding.Binding
	busy    bool
}

// New returns a Director with default configuration.
func New() *Director { return NewWithConfig(DefaultConfig()) }

// NewWithConfig returns a Director with an explicit Config.
func NewWithConfig(cfg Config) *Director {
	return &Director{cfg: cfg, binding: binding.New()}
}

// Binding returns the director's geometry binding, for read-only use
// by the mesher outside of a Building session.
func (d *Director) Binding() *binding.Binding { return d.binding }

func (d *Director) allocID() topo.ID {
	id := d.nextID
	d.nextID++
	return id
}

func (d *Director) logf(format string, args ...interface{}) {
	if d.cfg.Verbose {
		io.Pforan(format+"\n", args...)
	}
}

// Building runs f with exclusive access to a *Builder bound to this
// director, enforcing that no other Building call is already in
// flight — mirroring the Rust source's director.building(f) session
// wrapper (spec.md §4.5, §6). The busy flag is released on every exit
// path, including a panic unwinding through f.
func (d *Director) Building(f func(b *Builder) error) (err error) {
	if d.busy {
		return kerr.New(kerr.IntegrityError, "director: a building session is already in progress")
	}
	d.busy = true
	defer func() { d.busy = false }()
	b := &Builder{d: d}
	return f(b)
}

// GetMesher returns a Mesher reading this director's binding, usable
// outside a Building session (spec.md §6, "director.get_mesher()").
func (d *Director) GetMesher() *mesh.Mesher {
	return mesh.NewMesher(d.binding, d.cfg.Tolerance, d.cfg.MaxNewtonIterations)
}

// CheckIntegrity checks every edge reachable from the given faces:
// each face must have a surface, each edge a curve, and the edge's
// curve must lie on its face's surface within IntegrityTolerance
// (spec.md §8's "curve-on-surface" property). It does not compare a
// curve's endpoints with the points bound to its vertices. It is
// read-only and safe to call outside a Building session.
func (d *Director) CheckIntegrity(faces []topo.Face) error {
	for _, f := range faces {
		surf, err := d.binding.OrientedSurface(f)
		if err != nil {
			return kerr.New(kerr.NoGeometry, "check_integrity: face %d has no surface: %v", f.ID(), err)
		}
		for _, e := range f.BoundaryEdges() {
			curve, err := d.binding.OrientedCurve(e)
			if err != nil {
				return kerr.New(kerr.NoGeometry, "check_integrity: edge %d has no curve: %v", e.ID(), err)
			}
			if err := d.curveOnSurface(curve, surf); err != nil {
				return kerr.New(kerr.IntegrityError, "check_integrity: edge %d not on face %d: %v", e.ID(), f.ID(), err)
			}
		}
	}
	return nil
}

// curveOnSurface samples curve at its parameter-division points and
// checks that each sampled point's inverse-search solution lands back
// on nearly the same point, within IntegrityTolerance (spec.md §8).
func (d *Director) curveOnSurface(curve *bspline.Curve, surf *bspline.Surface) error {
	division := curve.ParameterDivision(d.cfg.IntegrityTolerance)
	hintU, hintV := bspline.Presearch(surf, bspline.Euclid(curve.Subs(division[0])))
	for _, t := range division {
		target := bspline.Euclid(curve.Subs(t))
		u, v, err := bspline.SearchParameter(surf, target, hintU, hintV, d.cfg.Tolerance, d.cfg.MaxNewtonIterations)
		if err != nil {
			return err
		}
		got := bspline.Euclid(surf.Subs(u, v))
		dist2 := 0.0
		for i := range got {
			diff := got[i] - target[i]
			dist2 += diff * diff
		}
		if dist2 > d.cfg.IntegrityTolerance*d.cfg.IntegrityTolerance {
			return kerr.New(kerr.IntegrityError, "curve point at t=%v has squared distance %v to the surface, want <= %v", t, dist2, d.cfg.IntegrityTolerance*d.cfg.IntegrityTolerance)
		}
		hintU, hintV = u, v
	}
	return nil
}
