package viewport

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"

	"mapview/pkg/graphics"
)

var approx = cmpopts.EquateApprox(1e-9, 1e-9)

func TestFitReference(t *testing.T) {
	bounds := graphics.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	m, err := Fit(bounds, Size{800, 600}, 0.9)
	if err != nil {
		t.Fatal(err)
	}

	want := graphics.Matrix{0.72, 0, 0, 0.72, 40, 120}
	if d := cmp.Diff(want, m, approx); d != "" {
		t.Errorf("fit transform (-want +got):\n%s", d)
	}

	tests := []struct {
		doc, screen graphics.Point
	}{
		{graphics.Pt(0, 0), graphics.Pt(40, 120)},
		{graphics.Pt(1000, 500), graphics.Pt(760, 480)},
		{graphics.Pt(500, 250), graphics.Pt(400, 300)},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.screen, m.Apply(tt.doc), approx); d != "" {
			t.Errorf("Apply(%v) (-want +got):\n%s", tt.doc, d)
		}
	}
}

func TestFitOffsetBounds(t *testing.T) {
	bounds := graphics.Rect{X: -200, Y: 50, Width: 400, Height: 400}
	m, err := Fit(bounds, Size{1000, 700}, 0.9)
	if err != nil {
		t.Fatal(err)
	}

	// The centre of the content lands on the centre of the viewport.
	centre := graphics.Pt(0, 250)
	if d := cmp.Diff(graphics.Pt(500, 350), m.Apply(centre), approx); d != "" {
		t.Error(d)
	}
}

func TestFitIdempotent(t *testing.T) {
	bounds := graphics.Rect{X: 3.5, Y: -7, Width: 1234.5, Height: 987}
	size := Size{1000, 700}
	a, errA := Fit(bounds, size, DefaultMargin)
	b, errB := Fit(bounds, size, DefaultMargin)
	if errA != nil || errB != nil {
		t.Fatal(errA, errB)
	}
	if a != b {
		t.Errorf("Fit is not deterministic: %v != %v", a, b)
	}
}

func TestFitContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		bounds := graphics.Rect{
			X:      rng.Float64()*2000 - 1000,
			Y:      rng.Float64()*2000 - 1000,
			Width:  math.Exp(rng.Float64()*12 - 4),
			Height: math.Exp(rng.Float64()*12 - 4),
		}
		size := Size{1 + rng.Float64()*3000, 1 + rng.Float64()*3000}
		margin := 0.05 + rng.Float64()*0.95

		m, err := Fit(bounds, size, margin)
		if err != nil {
			t.Fatalf("Fit(%v, %v): %v", bounds, size, err)
		}

		const tol = 1e-6
		for _, c := range bounds.Corners() {
			p := m.Apply(c)
			if p.X < -tol || p.X > size.Width+tol || p.Y < -tol || p.Y > size.Height+tol {
				t.Fatalf("corner %v of %v maps to %v outside %v", c, bounds, p, size)
			}
		}

		screen := bounds.Transform(m)
		touchesX := scalar.EqualWithinAbsOrRel(screen.Width, size.Width*margin, tol, tol)
		touchesY := scalar.EqualWithinAbsOrRel(screen.Height, size.Height*margin, tol, tol)
		if !touchesX && !touchesY {
			t.Fatalf("fit of %v in %v (margin %g) touches no margin bound: %v", bounds, size, margin, screen)
		}
	}
}

func TestFitInvalidDocument(t *testing.T) {
	tests := []struct {
		name   string
		bounds graphics.Rect
	}{
		{"zero width", graphics.Rect{X: 0, Y: 0, Width: 0, Height: 500}},
		{"zero height", graphics.Rect{X: 0, Y: 0, Width: 500, Height: 0}},
		{"negative", graphics.Rect{X: 0, Y: 0, Width: -10, Height: 500}},
		{"nan", graphics.Rect{X: 0, Y: 0, Width: math.NaN(), Height: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.bounds, Size{800, 600}, DefaultMargin)
			var ierr *InvalidDocumentError
			if !errors.As(err, &ierr) {
				t.Fatalf("got error %v, want *InvalidDocumentError", err)
			}
			if !errors.Is(err, ErrInvalidDocument) {
				t.Error("errors.Is(err, ErrInvalidDocument) = false")
			}
		})
	}
}

func TestFitRejectsMargin(t *testing.T) {
	bounds := graphics.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	for _, margin := range []float64{0, -0.5, 1.5, math.NaN()} {
		m, err := Fit(bounds, Size{800, 600}, margin)
		if err == nil {
			t.Errorf("Fit with margin %g succeeded: %v", margin, m)
			continue
		}
		if m != graphics.Identity() {
			t.Errorf("Fit with margin %g = %v, want identity", margin, m)
		}
	}
}

func TestFitHugeBounds(t *testing.T) {
	m, err := Fit(graphics.Rect{Width: 1e9, Height: 1e9}, Size{800, 600}, DefaultMargin)
	if err != nil {
		t.Fatal(err)
	}
	if m.IsSingular() {
		t.Fatalf("fit %v reported singular", m)
	}
	if d := cmp.Diff(graphics.Matrix{5.4e-7, 0, 0, 5.4e-7, 130, 30}, m, approx); d != "" {
		t.Error(d)
	}
}

func TestFitViewportNotReady(t *testing.T) {
	bounds := graphics.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	for _, size := range []Size{{0, 0}, {800, 0}, {0, 600}} {
		m, err := Fit(bounds, size, DefaultMargin)
		if !errors.Is(err, ErrViewportNotReady) {
			t.Errorf("Fit(_, %v) error = %v, want ErrViewportNotReady", size, err)
		}
		if m != graphics.Identity() {
			t.Errorf("Fit(_, %v) = %v, want identity", size, m)
		}
	}
}
