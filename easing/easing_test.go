package easing

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestCurveEndpoints(t *testing.T) {
	curves := []struct {
		name  string
		curve Curve
	}{
		{"linear", Linear},
		{"quad_in", QuadIn},
		{"quad_out", QuadOut},
		{"quad_in_out", QuadInOut},
		{"cubic_out", CubicOut},
		{"cubic_in_out", CubicInOut},
	}

	for _, c := range curves {
		t.Run(c.name, func(t *testing.T) {
			if got := c.curve.At(0); got != 0 {
				t.Fatalf("At(0) = %v, want 0", got)
			}
			if got := c.curve.At(1); got != 1 {
				t.Fatalf("At(1) = %v, want 1", got)
			}
			if got := c.curve.At(-0.5); got != 0 {
				t.Fatalf("At(-0.5) = %v, want clamp to 0", got)
			}
			if got := c.curve.At(1.5); got != 1 {
				t.Fatalf("At(1.5) = %v, want clamp to 1", got)
			}
		})
	}
}

func TestLinearIsExact(t *testing.T) {
	for _, tv := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		if got := Linear.At(tv); got != tv {
			t.Fatalf("Linear.At(%v) = %v", tv, got)
		}
	}
}

func TestQuadOutShape(t *testing.T) {
	// t*(2-t): front-loaded, monotonic, above linear on (0, 1).
	prev := 0.0
	for i := 1; i <= 10; i++ {
		tv := float64(i) / 10
		got := QuadOut.At(tv)
		want := tv * (2 - tv)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("QuadOut.At(%v) = %v, want %v", tv, got, want)
		}
		if got < prev {
			t.Fatalf("QuadOut not monotonic at t=%v", tv)
		}
		if tv < 1 && got <= tv {
			t.Fatalf("QuadOut.At(%v) = %v, expected above linear", tv, got)
		}
		prev = got
	}
}

func TestInterpolate(t *testing.T) {
	start := f64.Vec3{0, 0, 0}
	end := f64.Vec3{100, -40, 8}

	tests := []struct {
		name  string
		t     float64
		curve Curve
		want  f64.Vec3
	}{
		{"linear_zero", 0, Linear, start},
		{"linear_half", 0.5, Linear, f64.Vec3{50, -20, 4}},
		{"linear_one", 1, Linear, end},
		{"nil_curve_defaults_linear", 0.5, nil, f64.Vec3{50, -20, 4}},
		{"quad_out_half", 0.5, QuadOut, f64.Vec3{75, -30, 6}},
		{"overshoot_clamps", 2, QuadOut, end},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Interpolate(start, end, tc.t, tc.curve)
			for i := 0; i < 3; i++ {
				if math.Abs(got[i]-tc.want[i]) > 1e-12 {
					t.Fatalf("Interpolate t=%v axis %d: got %v, want %v", tc.t, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	if _, ok := ByName("quad_out"); !ok {
		t.Fatal("quad_out should be registered by default")
	}
	if _, ok := ByName("nope"); ok {
		t.Fatal("unknown name should not resolve")
	}
	if err := Register("linear", Linear); err == nil {
		t.Fatal("re-registering a builtin name should fail")
	}
	if err := Register("", Linear); err == nil {
		t.Fatal("empty name should fail")
	}
	if err := Register("test_custom", curveFunc(func(v float64) float64 { return v })); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, ok := ByName("test_custom"); !ok {
		t.Fatal("custom curve should resolve after Register")
	}
}

func TestScriptCurve(t *testing.T) {
	t.Run("smoothstep", func(t *testing.T) {
		c, err := NewScriptCurve(`out := t * t * (3.0 - 2.0*t)`)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		if got := c.At(0); got != 0 {
			t.Fatalf("At(0) = %v", got)
		}
		if got := c.At(1); got != 1 {
			t.Fatalf("At(1) = %v", got)
		}
		want := 0.5 * 0.5 * (3 - 2*0.5)
		if got := c.At(0.5); math.Abs(got-want) > 1e-12 {
			t.Fatalf("At(0.5) = %v, want %v", got, want)
		}
	})

	t.Run("math_module", func(t *testing.T) {
		c, err := NewScriptCurve(`math := import("math"); out := math.pow(t, 2.0)`)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		if got := c.At(0.5); math.Abs(got-0.25) > 1e-12 {
			t.Fatalf("At(0.5) = %v, want 0.25", got)
		}
	})

	t.Run("missing_out_rejected", func(t *testing.T) {
		if _, err := NewScriptCurve(`x := t`); err == nil {
			t.Fatal("script without `out` should fail to build")
		}
	})

	t.Run("syntax_error_rejected", func(t *testing.T) {
		if _, err := NewScriptCurve(`out :=`); err == nil {
			t.Fatal("broken script should fail to compile")
		}
	})
}
