package knot

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestFromSequenceRejectsShort(t *testing.T) {
	chk.PrintTitle("knot: reject short sequence")
	_, err := FromSequence([]float64{0.0})
	if err == nil {
		t.Fatal("expected EmptyKnotVector error")
	}
}

func TestFromSequenceRejectsUnsorted(t *testing.T) {
	chk.PrintTitle("knot: reject unsorted sequence")
	_, err := FromSequence([]float64{0, 1, 0.5, 1})
	if err == nil {
		t.Fatal("expected NotSortedVector error")
	}
}

func TestBezierKnot(t *testing.T) {
	chk.PrintTitle("knot: bezier")
	v := BezierKnot(3)
	chk.Vector(t, "bezier(3)", 1e-15, v.Raw(), []float64{0, 0, 0, 0, 1, 1, 1, 1})
}

func TestUniformKnot(t *testing.T) {
	chk.PrintTitle("knot: uniform")
	v := UniformKnot(2, 2)
	chk.Vector(t, "uniform(2,2)", 1e-15, v.Raw(), []float64{0, 0, 0, 0.5, 1, 1, 1})
}

func TestFloorAndMultiplicity(t *testing.T) {
	chk.PrintTitle("knot: floor and multiplicity")
	v := MustFromSequence([]float64{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1})
	if m := v.MultiplicityOf(0.25); m != 2 {
		t.Fatalf("expected multiplicity 2 at 0.25, got %d", m)
	}
	if m := v.MultiplicityOf(0); m != 3 {
		t.Fatalf("expected multiplicity 3 at 0, got %d", m)
	}
	if i := v.Floor(0.3); i != 4 {
		t.Fatalf("expected floor(0.3)=4, got %d", i)
	}
	// last span start must stay strictly below the last knot, not tied
	// with it, or a clamped curve's Subs(Last()) reads one control
	// point past the end of its polygon.
	if i := v.Floor(1.0); i != 8 {
		t.Fatalf("expected floor(1.0)=8 (last span start), got %d (knot %v)", i, v.At(i))
	}
}

func TestNormalize(t *testing.T) {
	chk.PrintTitle("knot: normalize")
	v := MustFromSequence([]float64{2, 2, 3, 4, 4})
	n := v.Normalize()
	chk.Scalar(t, "first", 1e-15, n.First(), 0)
	chk.Scalar(t, "last", 1e-15, n.Last(), 1)
}

func TestInsertKnotRaisesMultiplicity(t *testing.T) {
	chk.PrintTitle("knot: insert knot")
	v := MustFromSequence([]float64{0, 0, 1, 1})
	before := v.MultiplicityOf(0.5)
	v2 := v.InsertKnot(0.5)
	after := v2.MultiplicityOf(0.5)
	if after != before+1 {
		t.Fatalf("expected multiplicity to rise by 1, got %d -> %d", before, after)
	}
	for i := 1; i < v2.Len(); i++ {
		if v2.At(i) < v2.At(i-1) {
			t.Fatalf("monotonicity violated after insert at index %d", i)
		}
	}
}

func TestDistinctKnots(t *testing.T) {
	chk.PrintTitle("knot: distinct knots")
	v := MustFromSequence([]float64{0, 0, 0, 0.5, 0.5, 1, 1, 1})
	d := v.DistinctKnots()
	chk.Vector(t, "distinct", 1e-15, d, []float64{0, 0.5, 1})
}
