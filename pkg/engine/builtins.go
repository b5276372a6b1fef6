package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/boxkit/pkg/aabb"
	"github.com/chazu/boxkit/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPoint carries a 2D or 3D point as a coordinate slice.
type sexpPoint struct {
	coords []float64
}

func (p *sexpPoint) SexpString(ps *zygo.PrintState) string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return fmt.Sprintf("(vec%d %s)", len(p.coords), strings.Join(parts, " "))
}
func (p *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpBox wraps a live box. Copies of the value share the box, so mutating
// builtins are visible through every variable and through the scene.
type sexpBox struct {
	box  aabb.Box
	name string // set once the box is registered with defbox
}

func (b *sexpBox) SexpString(ps *zygo.PrintState) string {
	if b.name != "" {
		return fmt.Sprintf("(box %q %s)", b.name, b.box)
	}
	return b.box.String()
}
func (b *sexpBox) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			// Trailing keyword with no value.
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func isNumber(s zygo.Sexp) bool {
	switch s.(type) {
	case *zygo.SexpInt, *zygo.SexpFloat:
		return true
	}
	return false
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_top) and plain strings ("top").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toAxis converts :x, :y or :z to an aabb.Axis.
func toAxis(s zygo.Sexp) (aabb.Axis, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected axis keyword (:x, :y, :z): %w", err)
	}
	switch name {
	case "x":
		return aabb.AxisX, nil
	case "y":
		return aabb.AxisY, nil
	case "z":
		return aabb.AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x, y, or z", name)
}

// toBox extracts the box from a sexpBox.
func toBox(s zygo.Sexp) (*sexpBox, error) {
	if b, ok := s.(*sexpBox); ok {
		return b, nil
	}
	return nil, fmt.Errorf("expected box, got %T (%s)", s, s.SexpString(nil))
}

// toCoords accepts a vec2/vec3 value, an array or a list of numbers.
func toCoords(s zygo.Sexp) ([]float64, error) {
	var items []zygo.Sexp
	switch v := s.(type) {
	case *sexpPoint:
		return append([]float64(nil), v.coords...), nil
	case *zygo.SexpArray:
		items = v.Val
	case *zygo.SexpPair:
		var err error
		if items, err = zygo.ListToArray(v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
	}
	coords := make([]float64, len(items))
	for i, item := range items {
		f, err := toFloat64(item)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = f
	}
	return coords, nil
}

// coordArgs reads either a single point argument or a run of numbers.
// (translate b (vec2 1 2)) and (translate b 1 2) are equivalent.
func coordArgs(args []zygo.Sexp) ([]float64, error) {
	if len(args) == 1 && !isNumber(args[0]) {
		return toCoords(args[0])
	}
	coords := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		coords[i] = f
	}
	return coords, nil
}

func boolSexp(v bool) zygo.Sexp {
	return &zygo.SexpBool{Val: v}
}

func floatSexp(v float64) zygo.Sexp {
	return &zygo.SexpFloat{Val: v}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// builtin is the signature zygomys expects from Go functions.
type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// boxFunc adapts a builtin whose first argument is a box.
func boxFunc(fn string, minArgs int, body func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error)) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < minArgs {
			return zygo.SexpNull, fmt.Errorf("%s requires at least %d arguments, got %d", fn, minArgs, len(args))
		}
		b, err := toBox(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		out, err := body(b, args[1:])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return out, nil
	}
}

// pairFunc adapts a builtin that takes exactly two boxes.
func pairFunc(fn string, body func(a, b aabb.Box) (bool, error)) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 boxes, got %d arguments", fn, len(args))
		}
		a, err := toBox(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: first: %w", fn, err)
		}
		b, err := toBox(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: second: %w", fn, err)
		}
		ok, err := body(a.box, b.box)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return boolSexp(ok), nil
	}
}

// measure adapts a builtin returning a number derived from one box.
func measure(fn string, get func(aabb.Box) float64) builtin {
	return boxFunc(fn, 1, func(b *sexpBox, _ []zygo.Sexp) (zygo.Sexp, error) {
		return floatSexp(get(b.box)), nil
	})
}

// registerBuiltins installs the box DSL into a zygomys environment. Boxes
// registered with defbox are added to s.
//
// Source code must be preprocessed with preprocessSource() so that :keyword
// tokens and kebab-case names reach these builtins in their registered form.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) {

	// (vec2 1 2), (vec3 1 2 3)
	for _, n := range []int{2, 3} {
		fn := fmt.Sprintf("vec%d", n)
		arity := n
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != arity {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly %d arguments, got %d", fn, arity, len(args))
			}
			coords, err := coordArgs(args)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return &sexpPoint{coords: coords}, nil
		})
	}

	// (aabb (vec2 0 0) (vec2 4 3)) or (aabb :min [0 0 0] :max [1 1 1])
	env.AddFunction("aabb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		minS, maxS := pa.kw["min"], pa.kw["max"]
		if len(pa.positional) == 2 {
			minS, maxS = pa.positional[0], pa.positional[1]
		}
		if minS == nil || maxS == nil {
			return zygo.SexpNull, fmt.Errorf("aabb requires a min and a max point")
		}
		min, err := toCoords(minS)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("aabb: min: %w", err)
		}
		max, err := toCoords(maxS)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("aabb: max: %w", err)
		}
		b, err := aabb.FromCoords(min, max)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("aabb: %w", err)
		}
		return &sexpBox{box: b}, nil
	})

	// (defbox "name" (aabb ...))
	env.AddFunction("defbox", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defbox requires a name and a box expression")
		}
		boxName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defbox: name: %w", err)
		}
		b, err := toBox(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defbox: %w", err)
		}
		if _, err := s.Add(boxName, b.box); err != nil {
			return zygo.SexpNull, fmt.Errorf("defbox: %w", err)
		}
		return &sexpBox{box: b.box, name: boxName}, nil
	})

	// (box "name")
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("box requires a name argument")
		}
		boxName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: name: %w", err)
		}
		n := s.Lookup(boxName)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("box: no box named %q", boxName)
		}
		return &sexpBox{box: n.Box, name: n.Name}, nil
	})

	env.AddFunction("width", measure("width", aabb.Box.Width))
	env.AddFunction("height", measure("height", aabb.Box.Height))
	env.AddFunction("depth", measure("depth", aabb.Box.Depth))
	env.AddFunction("area", measure("area", aabb.Box.Area))
	env.AddFunction("volume", measure("volume", aabb.Box.Volume))

	env.AddFunction("center", boxFunc("center", 1, func(b *sexpBox, _ []zygo.Sexp) (zygo.Sexp, error) {
		return &sexpPoint{coords: b.box.CenterCoords()}, nil
	}))

	env.AddFunction("dim", boxFunc("dim", 1, func(b *sexpBox, _ []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpInt{Val: int64(b.box.Dim())}, nil
	}))

	// is2d and is3d accept any value; non-boxes are neither.
	env.AddFunction("is2d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("is2d requires exactly 1 argument, got %d", len(args))
		}
		b, ok := args[0].(*sexpBox)
		return boolSexp(ok && aabb.Is2D(b.box)), nil
	})
	env.AddFunction("is3d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("is3d requires exactly 1 argument, got %d", len(args))
		}
		b, ok := args[0].(*sexpBox)
		return boolSexp(ok && aabb.Is3D(b.box)), nil
	})

	env.AddFunction("clone", boxFunc("clone", 1, func(b *sexpBox, _ []zygo.Sexp) (zygo.Sexp, error) {
		return &sexpBox{box: b.box.CloneBox()}, nil
	}))

	// (translate b (vec2 1 2)) or (translate b 1 2)
	env.AddFunction("translate", boxFunc("translate", 2, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		v, err := coordArgs(rest)
		if err != nil {
			return nil, err
		}
		return b, aabb.TranslateBox(b.box, v)
	}))

	// (move-to b (vec2 0 0))
	env.AddFunction("move_to", boxFunc("move-to", 2, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		p, err := coordArgs(rest)
		if err != nil {
			return nil, err
		}
		return b, aabb.MoveBoxTo(b.box, p)
	}))

	// (scale b 2) scales x only; (scale b 2 3) or (scale b (vec2 2 3)).
	env.AddFunction("scale", boxFunc("scale", 2, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		f, err := coordArgs(rest)
		if err != nil {
			return nil, err
		}
		return b, aabb.ScaleBox(b.box, f)
	}))

	// (scale-axis b :y 2)
	env.AddFunction("scale_axis", boxFunc("scale-axis", 3, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		a, err := toAxis(rest[0])
		if err != nil {
			return nil, err
		}
		f, err := toFloat64(rest[1])
		if err != nil {
			return nil, err
		}
		switch v := b.box.(type) {
		case *aabb.AABB2:
			v.ScaleAxis(a, f)
		case *aabb.AABB3:
			v.ScaleAxis(a, f)
		}
		return b, nil
	}))

	// (resize-endpoint b :top-left (vec2 -1 5))
	env.AddFunction("resize_endpoint", boxFunc("resize-endpoint", 3, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		e, err := toKeywordString(rest[0])
		if err != nil {
			return nil, err
		}
		to, err := coordArgs(rest[1:])
		if err != nil {
			return nil, err
		}
		return b, aabb.ResizeBoxFromEndpoint(b.box, aabb.Endpoint(e), to)
	}))

	// (resize-edge b :right 10)
	env.AddFunction("resize_edge", boxFunc("resize-edge", 3, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		e, err := toKeywordString(rest[0])
		if err != nil {
			return nil, err
		}
		v, err := toFloat64(rest[1])
		if err != nil {
			return nil, err
		}
		return b, aabb.ResizeBoxFromEdge(b.box, aabb.Edge(e), v)
	}))

	env.AddFunction("collide", pairFunc("collide", aabb.CollideBoxes))
	env.AddFunction("contains_box", pairFunc("contains-box", aabb.ContainsBoxes))

	// (contains-point b (vec3 1 1 1))
	env.AddFunction("contains_point", boxFunc("contains-point", 2, func(b *sexpBox, rest []zygo.Sexp) (zygo.Sexp, error) {
		p, err := coordArgs(rest)
		if err != nil {
			return nil, err
		}
		in, err := aabb.ContainsCoords(b.box, p)
		if err != nil {
			return nil, err
		}
		return boolSexp(in), nil
	}))

	env.AddFunction("box_string", boxFunc("box-string", 1, func(b *sexpBox, _ []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpStr{S: b.box.String()}, nil
	}))
}
