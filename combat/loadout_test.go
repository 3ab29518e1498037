package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadoutActivateClamps(t *testing.T) {
	pistol := mustWeapon(t, WeaponConfig{Name: "pistol", Mode: SemiAutomatic, FireRate: 4, MagazineCapacity: 12, ReserveAmmo: 36})
	rifle := mustWeapon(t, rifleConfig())
	l := NewLoadout(pistol, rifle)

	assert.Equal(t, 0, l.ActiveIndex())
	assert.Equal(t, 1, l.Activate(5))
	assert.Same(t, rifle, l.Active())
	assert.Equal(t, 0, l.Activate(-2))
	assert.Same(t, pistol, l.Active())

	var empty *Loadout
	assert.Nil(t, empty.Active())
	assert.Equal(t, 0, NewLoadout().Activate(1))
}

func TestLoadoutReloadContinuesWhileHolstered(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(0)
	rifle := mustWeapon(t, cfg)
	pistol := mustWeapon(t, WeaponConfig{Name: "pistol", Mode: SemiAutomatic, FireRate: 4, MagazineCapacity: 12, ReserveAmmo: 36})
	l := NewLoadout(rifle, pistol)

	require.True(t, l.Reload(0))
	l.Activate(1)

	step := 100 * time.Millisecond
	for now := time.Duration(0); now <= 1500*time.Millisecond; now += step {
		l.Tick(now, testAim(), nil)
	}
	assert.False(t, rifle.IsReloading())
	assert.Equal(t, 30, rifle.AmmoInMagazine())

	l.Activate(0)
	l.SetTrigger(true)
	_, ok := l.Tick(2*time.Second, testAim(), nil)
	assert.True(t, ok)
}

func TestLoadoutSwitchDropsTrigger(t *testing.T) {
	rifle := mustWeapon(t, rifleConfig())
	pistol := mustWeapon(t, WeaponConfig{Name: "pistol", Mode: SemiAutomatic, FireRate: 4, MagazineCapacity: 12, ReserveAmmo: 36})
	l := NewLoadout(rifle, pistol)

	l.SetTrigger(true)
	l.Activate(1)
	l.Activate(0)
	_, ok := l.Tick(0, testAim(), nil)
	assert.False(t, ok, "held trigger does not survive a weapon switch")
}
