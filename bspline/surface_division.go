package bspline

// ParameterDivision produces adaptive (u,v) sampling grids for the
// surface (spec.md §4.6, FaceTessellator.from_surface): the u-grid is
// the union of the two bounding column curves' ParameterDivision, the
// v-grid the union of the two bounding row curves', so both chord
// errors stay <= tol along every edge of the patch. This reuses the
// curve-level bisection (the same recursive-bisection idiom as
// Curve.ParameterDivision) rather than gridding the interior
// directly, which is exact for the ruled and lofted surfaces this
// kernel's Builder ever produces (planes, tsweep/rsweep sides,
// homotopies) since their interior isoparametric curves vary no more
// sharply than their boundary ones.
func (s *Surface) ParameterDivision(tol float64) (udiv, vdiv []float64) {
	udiv = mergeSortedUnique(s.colCurve(0).ParameterDivision(tol), s.colCurve(s.Cols()-1).ParameterDivision(tol))
	vdiv = mergeSortedUnique(s.rowCurve(0).ParameterDivision(tol), s.rowCurve(s.Rows()-1).ParameterDivision(tol))
	return udiv, vdiv
}
