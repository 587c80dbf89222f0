package bspline

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/knot"
)

// Concat appends c1 after c0; the precondition is that c0.Back() and
// c1.Front() coincide within knot.Tolerance (the Builder guarantees
// this by construction — see spec.md §9's open question about
// GeometryBinding.bspline_by_wire assuming exact endpoint alignment).
// c1 is re-parameterized to continue from c0's last knot.
func Concat(c0, c1 *Curve) (*Curve, error) {
	if c0.Degree() != c1.Degree() {
		return nil, kerr.New(kerr.CannotAddEdge, "cannot concat curves of different degree: %d != %d", c0.Degree(), c1.Degree())
	}
	if !near(c0.Back(), c1.Front()) {
		return nil, kerr.New(kerr.CannotAddEdge, "cannot concat curves: endpoints do not coincide within tolerance")
	}
	p := c0.Degree()
	shift := c0.knots.Last() - c1.knots.First()
	k0 := c0.knots.Raw()
	k1 := c1.knots.Raw()
	// Drop the last knot of c0 and the p+1 clamped start knots of c1 so
	// the join ends up at multiplicity p (a plain C0 corner), not p+1 —
	// keeping an extra copy would raise the inferred degree of the
	// merged curve by one.
	newKnots := make([]float64, 0, len(k0)+len(k1)-(p+2))
	newKnots = append(newKnots, k0[:len(k0)-1]...)
	for i := p + 1; i < len(k1); i++ {
		newKnots = append(newKnots, k1[i]+shift)
	}
	newCtrl := make([]la.Vector, 0, len(c0.ctrl)+len(c1.ctrl)-1)
	newCtrl = append(newCtrl, c0.ctrl...)
	newCtrl = append(newCtrl, c1.ctrl[1:]...)
	kv, err := knot.FromSequence(newKnots)
	if err != nil {
		return nil, err
	}
	return &Curve{knots: kv, ctrl: newCtrl}, nil
}

// Collector accumulates curves via Concat, mirroring truck_geometry's
// CurveCollector (Singleton / Curve states): an empty Collector
// concatenated with c returns exactly c (the "concat identity"
// testable property of spec.md §8).
type Collector struct {
	cur *Curve
}

// Concat folds next into the collector.
func (cc *Collector) Concat(next *Curve) error {
	if cc.cur == nil {
		cc.cur = next
		return nil
	}
	merged, err := Concat(cc.cur, next)
	if err != nil {
		return err
	}
	cc.cur = merged
	return nil
}

// Curve returns the accumulated curve, failing if nothing was ever
// concatenated in.
func (cc *Collector) Curve() (*Curve, error) {
	if cc.cur == nil {
		return nil, kerr.New(kerr.EmptyWire, "curve collector is empty")
	}
	return cc.cur, nil
}

func near(a, b la.Vector) bool {
	if len(a) != len(b) {
		return false
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum < knot.Tolerance*knot.Tolerance
}
