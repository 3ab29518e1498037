package scenario

import (
	"context"
	"testing"

	"github.com/milk9111/firefight/prefabs"
	"github.com/milk9111/firefight/sim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T, maxTicks int) *Runner {
	t.Helper()
	cat, err := prefabs.LoadCatalog(context.Background(), prefabs.DefaultCatalogFiles())
	require.NoError(t, err)
	s, err := sim.New(cat, 1)
	require.NoError(t, err)
	return NewRunner(s, maxTicks)
}

func TestRunnerBuiltins(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantTicks int
		check     func(t *testing.T, r *Runner)
	}{
		{
			name:      "wait converts seconds to ticks",
			src:       `wait(0.5)`,
			wantTicks: 30,
		},
		{
			name:      "ticks",
			src:       `ticks(7)`,
			wantTicks: 7,
		},
		{
			name:      "semi auto fires once per press",
			src:       "trigger()\nticks(30)\nrelease()\nticks(1)\ntrigger()\nticks(1)",
			wantTicks: 32,
			check: func(t *testing.T, r *Runner) {
				assert.Equal(t, 2, r.Sim.Stats().ShotsFired)
			},
		},
		{
			name:      "switch and reload",
			src:       "switch(1)\ntrigger()\nticks(1)\nrelease()\nreload()\nticks(1)",
			wantTicks: 2,
			check: func(t *testing.T, r *Runner) {
				snap := r.Sim.Snapshot()
				assert.Equal(t, "rifle", snap.Player.Weapon)
				assert.True(t, snap.Player.Reloading)
				assert.Equal(t, 1, r.Sim.Stats().ReloadsStarted)
			},
		},
		{
			name:      "spawn one and a wave",
			src:       "spawn(0, -10)\nspawn()",
			wantTicks: 0,
			check: func(t *testing.T, r *Runner) {
				assert.Len(t, r.Sim.Snapshot().Hostiles, 5)
			},
		},
		{
			name:      "stats and now are readable",
			src:       "ticks(60)\ns := stats()\nlog(\"shots\", s.shots, \"at\", now())",
			wantTicks: 60,
		},
		{
			name:      "move and aim_at",
			src:       "move(1, 0)\naim_at(10, 1.6, 12)\nticks(60)",
			wantTicks: 60,
			check: func(t *testing.T, r *Runner) {
				snap := r.Sim.Snapshot()
				assert.InDelta(t, 6.0, snap.Player.Position.X(), 0.01)
				assert.Greater(t, snap.Player.Yaw, 0.0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t, 0)
			require.NoError(t, r.Run(context.Background(), []byte(tt.src)))
			assert.Equal(t, tt.wantTicks, r.Ticks())
			if tt.check != nil {
				tt.check(t, r)
			}
		})
	}
}

func TestRunnerErrors(t *testing.T) {
	r := newRunner(t, 10)
	err := r.Run(context.Background(), []byte(`wait(1)`))
	assert.True(t, errors.Is(err, ErrTickBudget), "got %v", err)
	assert.Equal(t, 10, r.Ticks())

	r = newRunner(t, 0)
	assert.Error(t, r.Run(context.Background(), []byte(`aim("left")`)))
	assert.Error(t, r.Run(context.Background(), []byte(`switch(`)))

	r = newRunner(t, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, r.Run(ctx, []byte(`for { ticks(1) }`)))
}

func TestRunDemoScript(t *testing.T) {
	r := newRunner(t, 60*30)
	require.NoError(t, r.RunFile(context.Background(), "demo.tengo"))

	st := r.Sim.Stats()
	assert.Greater(t, st.ShotsFired, 10)
	assert.Equal(t, 3, st.ProjectilesSpent)
	assert.Equal(t, 1, st.ReloadsStarted)
}
