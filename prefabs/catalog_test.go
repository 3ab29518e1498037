package prefabs

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/firefight/combat"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	cat, err := LoadCatalog(context.Background(), DefaultCatalogFiles())
	require.NoError(t, err)

	require.Len(t, cat.Weapons, 3)
	pistol, ok := cat.Weapon("pistol")
	require.True(t, ok)
	assert.Equal(t, combat.SemiAutomatic, pistol.Mode)
	assert.Equal(t, combat.DeliveryHitscan, pistol.Delivery)
	assert.Equal(t, 1100*time.Millisecond, pistol.ReloadDuration)

	rifle, ok := cat.Weapon("rifle")
	require.True(t, ok)
	assert.Equal(t, combat.Automatic, rifle.Mode)
	assert.Equal(t, 30, rifle.MagazineCapacity)

	launcher, ok := cat.Weapon("launcher")
	require.True(t, ok)
	assert.Equal(t, combat.DeliveryProjectile, launcher.Delivery)
	assert.InDelta(t, 60.0, launcher.ProjectileDamage(), 1e-9)
	assert.InDelta(t, 0.15, cat.ProjectileFor["launcher"].Radius, 1e-9)

	assert.Equal(t, "Player", cat.Player.Role)
	assert.Equal(t, []string{"pistol", "rifle", "launcher"}, cat.Player.Loadout)
	assert.Equal(t, MovementPursuit, cat.Hostile.Movement)
	assert.Equal(t, 200*time.Millisecond, cat.Hostile.Pursuit.Config().RepathInterval)
	assert.Equal(t, 40, cat.Arena.Nav.Width)
	assert.NotEmpty(t, cat.Arena.Walls)
}

func TestBuildWeaponsErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    WeaponsFile
		wantErr error
	}{
		{
			name: "missing projectile template",
			file: WeaponsFile{Weapons: []WeaponSpec{{
				Name: "launcher", Delivery: "projectile", FireRate: 1, Magazine: 1, Projectile: "rocket",
			}}},
			wantErr: combat.ErrNoProjectileTemplate,
		},
		{
			name: "duplicate",
			file: WeaponsFile{Weapons: []WeaponSpec{
				{Name: "a", FireRate: 1, Magazine: 1},
				{Name: "a", FireRate: 1, Magazine: 1},
			}},
			wantErr: combat.ErrInvalidWeapon,
		},
		{
			name:    "zero fire rate",
			file:    WeaponsFile{Weapons: []WeaponSpec{{Name: "a", Magazine: 1}}},
			wantErr: combat.ErrInvalidWeapon,
		},
		{
			name:    "unknown mode",
			file:    WeaponsFile{Weapons: []WeaponSpec{{Name: "a", Mode: "burst", FireRate: 1, Magazine: 1}}},
			wantErr: combat.ErrInvalidWeapon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildWeapons(tt.file)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestBuildCatalogRejectsUnknownLoadout(t *testing.T) {
	weapons := WeaponsFile{Weapons: []WeaponSpec{{Name: "pistol", FireRate: 2, Magazine: 6}}}
	arena := ArenaSpec{Nav: NavSpec{Width: 1, Depth: 1}}

	_, err := buildCatalog(weapons, PlayerSpec{Loadout: []string{"pistol", "bfg"}}, HostileSpec{}, arena)
	assert.True(t, errors.Is(err, combat.ErrInvalidWeapon))

	_, err = buildCatalog(weapons, PlayerSpec{Loadout: []string{"pistol"}}, HostileSpec{Movement: "teleport"}, arena)
	assert.Error(t, err)

	cat, err := buildCatalog(weapons, PlayerSpec{Loadout: []string{"pistol"}}, HostileSpec{}, arena)
	require.NoError(t, err)
	assert.Empty(t, cat.ProjectileFor)
}

func TestWeaponSpecUnlimited(t *testing.T) {
	cfg, err := WeaponSpec{Name: "sidearm", FireRate: 3, Magazine: 8, Unlimited: true}.Config()
	require.NoError(t, err)
	assert.Equal(t, combat.UnlimitedReserve, cfg.ReserveAmmo)
	assert.Equal(t, combat.DefaultRange, cfg.Range)
}

func TestYAMLColor(t *testing.T) {
	var out struct {
		A YAMLColor `yaml:"a"`
		B YAMLColor `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: \"#102030\"\nb: \"#ffffff80\"\n"), &out))
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, out.A.Color)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, out.B.Color)

	var bad struct {
		C YAMLColor `yaml:"c"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("c: \"#12\"\n"), &bad))
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	override := "weapons:\n  - name: pistol\n    mode: semi\n    fire_rate: 8\n    magazine: 6\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weapons.yaml"), []byte(override), 0o644))

	weapons, err := LoadWeapons("weapons.yaml")
	require.NoError(t, err)
	require.Len(t, weapons.Weapons, 1)
	assert.InDelta(t, 8.0, weapons.Weapons[0].FireRate, 1e-9)

	_, ok := ModTime("weapons.yaml")
	assert.True(t, ok)
	_, ok = ModTime("arena.yaml")
	assert.False(t, ok)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"demo.tengo", "scripts/demo.tengo", "prefabs/scripts/demo.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "trigger()")
	}
	_, err := LoadScript("missing.tengo")
	assert.Error(t, err)
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "weapons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weapons: []\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
		assert.True(t, IsWeaponsFile(got))
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}
