package easing

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptCurve is a user-defined curve written in tengo. The script
// reads the progress variable `t` and must assign the weight to `out`:
//
//	out := t * t * (3.0 - 2.0*t)
//
// The tengo math module is importable. Compilation happens once;
// sampling reuses the compiled program.
type ScriptCurve struct {
	compiled *tengo.Compiled
}

// NewScriptCurve compiles the script and runs it once at t=0 to catch
// scripts that never assign `out`.
func NewScriptCurve(src string) (*ScriptCurve, error) {
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("easing: add script input: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("easing: compile curve script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("easing: probe curve script: %w", err)
	}
	if !compiled.IsDefined("out") {
		return nil, fmt.Errorf("easing: curve script never assigns `out`")
	}
	return &ScriptCurve{compiled: compiled}, nil
}

// At samples the scripted curve. Script errors degrade to linear so a
// bad script cannot stall a camera move mid-flight.
func (s *ScriptCurve) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if err := s.compiled.Set("t", t); err != nil {
		return t
	}
	if err := s.compiled.Run(); err != nil {
		return t
	}
	return s.compiled.Get("out").Float()
}
