package cli

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"mapview/pkg/graphics"
	"mapview/pkg/viewport"
)

// MaxFrameSize bounds each side of a rendered frame in pixels.
const MaxFrameSize = 16384

// Step is one command of a gesture script: either an input event or a
// request to re-fit the map.
type Step struct {
	Line  int
	Event viewport.Event
	Fit   bool
}

// ParseScript parses a gesture script. Commands are separated by
// newlines or semicolons; '#' starts a comment.
//
//	down BUTTON X Y
//	move X Y
//	up X Y
//	leave
//	wheel X Y DELTA
//	resize W H
//	fit
func ParseScript(src string) ([]Step, error) {
	var steps []Step
	for n, line := range strings.Split(src, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, cmd := range strings.Split(line, ";") {
			fields := strings.Fields(cmd)
			if len(fields) == 0 {
				continue
			}
			step, err := parseStep(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", n+1, strings.TrimSpace(cmd), err)
			}
			step.Line = n + 1
			steps = append(steps, step)
		}
	}
	return steps, nil
}

// LoadScript reads a script from a file when arg starts with '@' and
// parses arg itself otherwise.
func LoadScript(arg string) ([]Step, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read gesture script: %w", err)
		}
		arg = string(data)
	}
	return ParseScript(arg)
}

func parseStep(fields []string) (Step, error) {
	name, args := strings.ToLower(fields[0]), fields[1:]
	want := map[string]int{
		"down": 3, "move": 2, "up": 2, "leave": 0, "wheel": 3, "resize": 2, "fit": 0,
	}
	n, ok := want[name]
	if !ok {
		return Step{}, fmt.Errorf("unknown command %q", name)
	}
	if len(args) != n {
		return Step{}, fmt.Errorf("%s takes %d arguments, got %d", name, n, len(args))
	}

	v := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Step{}, fmt.Errorf("invalid number %q", a)
		}
		v[i] = f
	}

	switch name {
	case "down":
		b := int(v[0])
		if float64(b) != v[0] || b < int(viewport.ButtonPrimary) || b > int(viewport.ButtonTertiary) {
			return Step{}, fmt.Errorf("invalid button %q", args[0])
		}
		return Step{Event: viewport.PointerDown{Button: viewport.Button(b), Position: graphics.Pt(v[1], v[2])}}, nil
	case "move":
		return Step{Event: viewport.PointerMove{Position: graphics.Pt(v[0], v[1])}}, nil
	case "up":
		return Step{Event: viewport.PointerUp{Position: graphics.Pt(v[0], v[1])}}, nil
	case "leave":
		return Step{Event: viewport.PointerLeave{}}, nil
	case "wheel":
		return Step{Event: viewport.Wheel{Position: graphics.Pt(v[0], v[1]), Delta: v[2]}}, nil
	case "resize":
		if !(v[0] >= 0 && v[0] <= MaxFrameSize && v[1] >= 0 && v[1] <= MaxFrameSize) {
			return Step{}, fmt.Errorf("size %gx%g out of range [0, %d]", v[0], v[1], MaxFrameSize)
		}
		return Step{Event: viewport.Resize{Size: viewport.Size{Width: v[0], Height: v[1]}}}, nil
	}
	return Step{Fit: true}, nil
}

// RunScript feeds steps to c in order. A failing re-fit is logged and
// the script continues, as in the interactive viewer.
func RunScript(c *viewport.Controller, steps []Step) {
	for _, s := range steps {
		if s.Fit {
			if err := c.Fit(); err != nil {
				viewport.Logger().Warn("fit failed", "line", s.Line, "error", err)
			}
			continue
		}
		c.Handle(s.Event)
	}
}
