package viewport

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewOptionsDefaults(t *testing.T) {
	want := Options{Margin: 0.9, ZoomInFactor: 1.1, ZoomOutFactor: 0.9}
	if d := cmp.Diff(want, NewOptions()); d != "" {
		t.Error(d)
	}
	if err := NewOptions().Validate(); err != nil {
		t.Errorf("default options invalid: %v", err)
	}
}

func TestOptionsApply(t *testing.T) {
	o := DefaultOptions()
	o.Apply(Margin(1), ZoomFactors(2, 0.5))
	want := Options{Margin: 1, ZoomInFactor: 2, ZoomOutFactor: 0.5}
	if d := cmp.Diff(want, o); d != "" {
		t.Error(d)
	}
	if err := o.Validate(); err != nil {
		t.Error(err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero margin", Margin(0)},
		{"negative margin", Margin(-0.5)},
		{"margin above one", Margin(1.01)},
		{"nan margin", Margin(math.NaN())},
		{"zero zoom in", ZoomFactors(0, 0.9)},
		{"nan zoom out", ZoomFactors(1.1, math.NaN())},
		{"infinite zoom in", ZoomFactors(math.Inf(1), 0.9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewOptions(tt.opt).Validate(); err == nil {
				t.Error("Validate() = nil")
			}
		})
	}
}
