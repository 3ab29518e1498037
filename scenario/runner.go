package scenario

import (
	"context"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/prefabs"
	"github.com/milk9111/firefight/sim"
	"github.com/pkg/errors"
)

var logger = common.NewLogger("scenario")

// ErrTickBudget is returned when a script waits past Runner.MaxTicks.
var ErrTickBudget = errors.New("scenario: tick budget exhausted")

// Runner drives a simulation from a tengo script. The script's builtins
// write player intent and step the simulation synchronously inside wait().
//
//	trigger() release() reload() switch(slot)
//	aim(yaw, pitch) aim_at(x, y, z) move(x, z)
//	wait(seconds) ticks(n) spawn() spawn(x, z)
//	log(args...) now() stats()
type Runner struct {
	Sim *sim.Simulation
	// MaxTicks bounds the whole run; zero means unbounded.
	MaxTicks int
	// OnTick runs after every stepped tick, e.g. to apply hot reloads.
	OnTick func()

	ticks int
}

func NewRunner(s *sim.Simulation, maxTicks int) *Runner {
	return &Runner{Sim: s, MaxTicks: maxTicks}
}

// Ticks returns how many ticks the runner has stepped.
func (r *Runner) Ticks() int {
	return r.ticks
}

// RunFile loads a script through the prefab loader and runs it.
func (r *Runner) RunFile(ctx context.Context, name string) error {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return err
	}
	return errors.Wrapf(r.Run(ctx, src), "scenario: %s", name)
}

// Run compiles and runs src to completion.
func (r *Runner) Run(ctx context.Context, src []byte) error {
	if r == nil || r.Sim == nil {
		return errors.New("scenario: no simulation")
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for name, fn := range r.builtins() {
		if err := script.Add(name, fn); err != nil {
			return errors.Wrapf(err, "scenario: add builtin %s", name)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return errors.Wrap(err, "scenario: compile")
	}
	if err := compiled.RunContext(ctx); err != nil {
		if errors.Is(err, ErrTickBudget) {
			return ErrTickBudget
		}
		return errors.Wrap(err, "scenario: run")
	}
	logger.Info("scenario finished", "ticks", r.ticks)
	return nil
}

// Step advances the simulation n ticks within the budget.
func (r *Runner) Step(n int) error {
	for i := 0; i < n; i++ {
		if r.MaxTicks > 0 && r.ticks >= r.MaxTicks {
			return ErrTickBudget
		}
		r.Sim.Step()
		r.ticks++
		if r.OnTick != nil {
			r.OnTick()
		}
	}
	return nil
}

func (r *Runner) builtins() map[string]*tengo.UserFunction {
	s := r.Sim
	fn := func(name string, f tengo.CallableFunc) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: f}
	}

	return map[string]*tengo.UserFunction{
		"trigger": fn("trigger", func(args ...tengo.Object) (tengo.Object, error) {
			s.SetTrigger(true)
			return tengo.UndefinedValue, nil
		}),
		"release": fn("release", func(args ...tengo.Object) (tengo.Object, error) {
			s.SetTrigger(false)
			return tengo.UndefinedValue, nil
		}),
		"reload": fn("reload", func(args ...tengo.Object) (tengo.Object, error) {
			s.RequestReload()
			return tengo.UndefinedValue, nil
		}),
		"switch": fn("switch", func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			slot, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "slot", Expected: "int", Found: args[0].TypeName()}
			}
			s.SwitchWeapon(slot)
			return tengo.UndefinedValue, nil
		}),
		"aim": fn("aim", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats(args, 2, "yaw", "pitch")
			if err != nil {
				return nil, err
			}
			s.SetAim(v[0], v[1])
			return tengo.UndefinedValue, nil
		}),
		"aim_at": fn("aim_at", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats(args, 3, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			s.AimAt(mgl64.Vec3{v[0], v[1], v[2]})
			return tengo.UndefinedValue, nil
		}),
		"move": fn("move", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats(args, 2, "x", "z")
			if err != nil {
				return nil, err
			}
			s.SetMove(mgl64.Vec3{v[0], 0, v[1]})
			return tengo.UndefinedValue, nil
		}),
		"wait": fn("wait", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats(args, 1, "seconds")
			if err != nil {
				return nil, err
			}
			n := int(math.Round(v[0] / s.Clock.Step().Seconds()))
			return tengo.UndefinedValue, r.Step(n)
		}),
		"ticks": fn("ticks", func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "n", Expected: "int", Found: args[0].TypeName()}
			}
			return tengo.UndefinedValue, r.Step(n)
		}),
		"spawn": fn("spawn", func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) == 0 {
				return &tengo.Int{Value: int64(len(s.SpawnWave()))}, nil
			}
			v, err := floats(args, 2, "x", "z")
			if err != nil {
				return nil, err
			}
			if _, err := s.SpawnHostile(mgl64.Vec3{v[0], 0, v[1]}); err != nil {
				logger.Warn("spawn failed", "err", err)
				return &tengo.Int{Value: 0}, nil
			}
			return &tengo.Int{Value: 1}, nil
		}),
		"log": fn("log", func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, 0, len(args))
			for _, a := range args {
				parts = append(parts, objectAsString(a))
			}
			logger.Info(strings.Join(parts, " "), "t", s.Now())
			return tengo.UndefinedValue, nil
		}),
		"now": fn("now", func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: s.Now().Seconds()}, nil
		}),
		"stats": fn("stats", func(args ...tengo.Object) (tengo.Object, error) {
			st := s.Stats()
			return &tengo.ImmutableMap{Value: map[string]tengo.Object{
				"shots":       &tengo.Int{Value: int64(st.ShotsFired)},
				"hits":        &tengo.Int{Value: int64(st.Hits)},
				"damage":      &tengo.Float{Value: st.DamageDealt},
				"kills":       &tengo.Int{Value: int64(st.Kills)},
				"reloads":     &tengo.Int{Value: int64(st.ReloadsStarted)},
				"projectiles": &tengo.Int{Value: int64(st.ProjectilesSpent)},
			}}, nil
		}),
	}
}

func floats(args []tengo.Object, n int, names ...string) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, a := range args {
		v, ok := tengo.ToFloat64(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: names[i], Expected: "float", Found: a.TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if v, ok := obj.(*tengo.String); ok {
		return v.Value
	}
	return strings.Trim(obj.String(), "\"")
}
