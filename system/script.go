package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/puzzlepath/obj"
)

// platformScript runs a level's tengo source once per physics tick. The
// script reads `elapsed` (seconds) and calls set_active(name, bool) to open
// or close named platforms. Changes are applied after the run, between
// physics steps.
type platformScript struct {
	compiled  *tengo.Compiled
	platforms map[string]*obj.Platform
	pending   map[string]bool
}

func newPlatformScript(src string, platforms []*obj.Platform) (*platformScript, error) {
	ps := &platformScript{
		platforms: make(map[string]*obj.Platform),
		pending:   make(map[string]bool),
	}
	for _, p := range platforms {
		if p.Name != "" {
			ps.platforms[p.Name] = p
		}
	}

	script := tengo.NewScript([]byte(src))
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("set_active", &tengo.UserFunction{Name: "set_active", Value: ps.setActive})
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile platform script: %w", err)
	}
	ps.compiled = compiled
	return ps, nil
}

func (ps *platformScript) setActive(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	name, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
	}
	active, ok := tengo.ToBool(args[1])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "active", Expected: "bool", Found: args[1].TypeName()}
	}
	if _, known := ps.platforms[name]; !known {
		return nil, fmt.Errorf("set_active: unknown platform %q", name)
	}
	ps.pending[name] = active
	return tengo.UndefinedValue, nil
}

func (ps *platformScript) run(elapsed float64) error {
	if err := ps.compiled.Set("elapsed", elapsed); err != nil {
		return err
	}
	clear(ps.pending)
	if err := ps.compiled.Run(); err != nil {
		return err
	}
	for name, active := range ps.pending {
		ps.platforms[name].SetActive(active)
	}
	return nil
}
