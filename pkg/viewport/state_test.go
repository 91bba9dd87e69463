package viewport

import (
	"errors"
	"io/fs"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"mapview/pkg/graphics"
)

type fakeSource struct {
	bounds graphics.Rect
	err    error
	calls  int
}

func (f *fakeSource) ContentBounds() (graphics.Rect, error) {
	f.calls++
	return f.bounds, f.err
}

func newTestState(t *testing.T, opts ...Option) *State {
	t.Helper()
	s, err := NewState(NewOptions(opts...))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewStateRejectsInvalidOptions(t *testing.T) {
	bad := []Options{
		NewOptions(Margin(0)),
		NewOptions(Margin(1.5)),
		NewOptions(ZoomFactors(0, 0.9)),
		NewOptions(ZoomFactors(1.1, -1)),
		NewOptions(ZoomFactors(math.Inf(1), 0.9)),
	}
	for _, o := range bad {
		if _, err := NewState(o); err == nil {
			t.Errorf("NewState(%+v) succeeded", o)
		}
	}
}

func TestStateLoadFits(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	src := &fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}

	if err := s.Load(src); err != nil {
		t.Fatal(err)
	}
	want := graphics.Matrix{0.72, 0, 0, 0.72, 40, 120}
	if d := cmp.Diff(want, s.Transform(), approx); d != "" {
		t.Error(d)
	}
	if b, ok := s.Bounds(); !ok || b != src.bounds {
		t.Errorf("Bounds() = %v, %v", b, ok)
	}
	if z := s.ZoomLevel(); math.Abs(z-1) > 1e-12 {
		t.Errorf("ZoomLevel() = %g after fit, want 1", z)
	}
}

func TestStateLoadOnce(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 10, Height: 10}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 20, Height: 20}}); err == nil {
		t.Error("second Load succeeded")
	}
	if b, _ := s.Bounds(); b.Width != 10 {
		t.Errorf("bounds changed to %v", b)
	}
}

func TestStateLoadError(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})

	err := s.Load(&fakeSource{err: fs.ErrNotExist})
	var lerr *DocumentLoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("Load error = %v, want *DocumentLoadError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("cause not preserved")
	}
	if s.Transform() != graphics.Identity() {
		t.Errorf("transform = %v, want identity", s.Transform())
	}
	if err := s.Fit(); !errors.Is(err, ErrDocumentLoad) {
		t.Errorf("Fit without document: %v", err)
	}
}

func TestStateDegenerateBoundsKeepsTransform(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	s.Pan(5, 7)
	prior := s.Transform()

	err := s.Load(&fakeSource{bounds: graphics.Rect{X: 0, Y: 0, Width: 0, Height: 500}})
	var ierr *InvalidDocumentError
	if !errors.As(err, &ierr) {
		t.Fatalf("Load error = %v, want *InvalidDocumentError", err)
	}
	if s.Transform() != prior {
		t.Errorf("transform changed from %v to %v", prior, s.Transform())
	}
	if err := s.Fit(); !errors.As(err, &ierr) {
		t.Errorf("re-fit error = %v", err)
	}
	if s.Transform() != prior {
		t.Errorf("transform changed by re-fit")
	}
}

func TestStateDeferredFit(t *testing.T) {
	s := newTestState(t)
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}); err != nil {
		t.Fatalf("Load before layout: %v", err)
	}
	if !s.FitPending() {
		t.Fatal("fit not pending")
	}
	if s.Transform() != graphics.Identity() {
		t.Errorf("transform = %v before layout", s.Transform())
	}

	s.Resize(Size{800, 0})
	if !s.FitPending() {
		t.Fatal("fit ran with an empty viewport")
	}

	s.Resize(Size{800, 600})
	if s.FitPending() {
		t.Fatal("fit still pending after layout")
	}
	if d := cmp.Diff(graphics.Matrix{0.72, 0, 0, 0.72, 40, 120}, s.Transform(), approx); d != "" {
		t.Error(d)
	}

	// Later resizes keep the map where it is.
	before := s.Transform()
	s.Resize(Size{1000, 700})
	if s.Transform() != before {
		t.Error("resize moved the map")
	}
}

func TestStatePanExact(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}); err != nil {
		t.Fatal(err)
	}
	s.ZoomAt(1.1, graphics.Pt(123, 45))
	T := s.Transform()

	s.Pan(-17.5, 33)
	for _, p := range []graphics.Point{{X: 0, Y: 0}, {X: 1000, Y: 500}, {X: -3, Y: 999}} {
		want := T.Apply(p).Add(graphics.Pt(-17.5, 33))
		if d := cmp.Diff(want, s.Transform().Apply(p), approx); d != "" {
			t.Errorf("pan of %v (-want +got):\n%s", p, d)
		}
	}
	if math.Abs(s.Transform().ScaleX()-T.ScaleX()) > 1e-12 {
		t.Error("pan changed the scale")
	}
}

func TestStateZoomAtRejectsBadFactors(t *testing.T) {
	s := newTestState(t)
	before := s.Transform()
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		s.ZoomAt(f, graphics.Pt(10, 10))
	}
	if s.Transform() != before {
		t.Errorf("transform changed to %v", s.Transform())
	}
}

func TestStateScreenToDocument(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}); err != nil {
		t.Fatal(err)
	}
	p, err := s.ScreenToDocument(graphics.Pt(760, 480))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(graphics.Pt(1000, 500), p, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(graphics.Pt(40, 120), s.DocumentToScreen(graphics.Pt(0, 0)), approx); d != "" {
		t.Error(d)
	}
}

func TestStateZoomLevel(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}); err != nil {
		t.Fatal(err)
	}
	s.ZoomAt(1.1, graphics.Pt(0, 0))
	s.ZoomAt(1.1, graphics.Pt(400, 300))
	if z := s.ZoomLevel(); math.Abs(z-1.21) > 1e-12 {
		t.Errorf("ZoomLevel() = %g, want 1.21", z)
	}
}

func TestStateHugeDocumentStaysInteractive(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1e9, Height: 1e9}}); err != nil {
		t.Fatal(err)
	}
	T := s.Transform()

	s.Pan(10, 0)
	want := T
	want[4] += 10
	if d := cmp.Diff(want, s.Transform(), approx); d != "" {
		t.Errorf("pan (-want +got):\n%s", d)
	}

	p, err := s.ScreenToDocument(graphics.Pt(140, 30))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(graphics.Pt(0, 0), p, cmpopts.EquateApprox(0, 1e-3)); d != "" {
		t.Error(d)
	}
}

func TestStateZoomOutHasNoFloor(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}); err != nil {
		t.Fatal(err)
	}
	start := s.Transform().ScaleX()
	for i := 0; i < 200; i++ {
		s.ZoomAt(DefaultZoomOutFactor, graphics.Pt(400, 300))
	}
	want := start * math.Pow(DefaultZoomOutFactor, 200)
	if got := s.Transform().ScaleX(); math.Abs(got-want) > want*1e-9 {
		t.Errorf("scale after 200 zoom-outs = %g, want %g", got, want)
	}
	if _, err := s.ScreenToDocument(graphics.Pt(400, 300)); err != nil {
		t.Errorf("ScreenToDocument: %v", err)
	}
}

func TestStateRejectsNonFiniteInput(t *testing.T) {
	s := newTestState(t)
	s.Resize(Size{800, 600})
	if err := s.Load(&fakeSource{bounds: graphics.Rect{Width: 1000, Height: 500}}); err != nil {
		t.Fatal(err)
	}
	before := s.Transform()

	s.Pan(math.NaN(), 0)
	s.Pan(0, math.Inf(-1))
	s.ZoomAt(1.1, graphics.Pt(math.NaN(), 0))
	s.ZoomAt(0.9, graphics.Pt(0, math.Inf(1)))
	if s.Transform() != before {
		t.Errorf("transform changed to %v", s.Transform())
	}
}
