package graphics

// PathOp is the kind of a path segment.
type PathOp int

const (
	PathOpMoveTo PathOp = iota
	PathOpLineTo
	PathOpClose
)

// PathSegment is one operation with its end point. Close segments carry
// no point.
type PathSegment struct {
	Op    PathOp
	Point Point
}

// Path is a polyline overlay. It is built in document space and mapped to
// the screen with Transform.
type Path struct {
	Segments []PathSegment
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: PathOpMoveTo, Point: Pt(x, y)})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: PathOpLineTo, Point: Pt(x, y)})
}

// Close ends the current subpath with a segment back to its start.
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Op: PathOpClose})
}

// Rect adds r as a closed subpath, clockwise on screen.
func (p *Path) Rect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Transform returns a copy of the path with every point mapped through m.
// The image of a rectangle stays exact for any affine m, rotation and
// shear included.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{Segments: make([]PathSegment, len(p.Segments))}
	for i, seg := range p.Segments {
		out.Segments[i] = seg
		if seg.Op != PathOpClose {
			out.Segments[i].Point = m.Apply(seg.Point)
		}
	}
	return out
}
