package combat

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func float64Ptr(f float64) *float64 {
	return &f
}

func testAim() Aim {
	return NewAim(mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{0, 0, -1})
}

func rifleConfig() WeaponConfig {
	return WeaponConfig{
		Name:             "rifle",
		Mode:             Automatic,
		FireRate:         10,
		MagazineCapacity: 30,
		ReserveAmmo:      120,
		ReloadDuration:   1200 * time.Millisecond,
		SpreadDegrees:    0.4,
	}
}

func mustWeapon(t *testing.T, cfg WeaponConfig) *Weapon {
	t.Helper()
	w, err := NewWeapon(cfg)
	require.NoError(t, err)
	return w
}

func TestEmptyMagazineReloadScenario(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(0)
	w := mustWeapon(t, cfg)
	rng := rand.New(rand.NewSource(12345))

	_, fired := w.TryFire(0, testAim(), rng)
	require.False(t, fired)
	require.True(t, w.IsReloading())

	step := time.Second / 60
	now := time.Duration(0)
	for now < 1200*time.Millisecond-step {
		now += step
		w.Update(now)
		require.True(t, w.IsReloading(), "reload finished early at %s", now)
	}

	w.Update(1200 * time.Millisecond)
	assert.False(t, w.IsReloading())
	assert.Equal(t, 30, w.AmmoInMagazine())
	assert.Equal(t, 90, w.ReserveAmmo())
}

func TestTriggerSemantics(t *testing.T) {
	cases := []struct {
		name      string
		mode      FireMode
		fireRate  float64
		step      time.Duration
		ticks     int
		wantShots int
	}{
		{"semi_held_ten_ticks", SemiAutomatic, 5, 50 * time.Millisecond, 10, 1},
		{"semi_held_long_ticks", SemiAutomatic, 100, time.Second, 10, 1},
		{"auto_fire_rate_5_over_ten_ticks", Automatic, 5, 50 * time.Millisecond, 10, 3},
		{"auto_fire_rate_5_over_one_second", Automatic, 5, 50 * time.Millisecond, 20, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := rifleConfig()
			cfg.Mode = c.mode
			cfg.FireRate = c.fireRate
			cfg.MagazineCapacity = 100
			w := mustWeapon(t, cfg)

			var fireTimes []time.Duration
			w.SetTrigger(true)
			for i := 0; i < c.ticks; i++ {
				now := time.Duration(i) * c.step
				w.SetTrigger(true)
				if shot, ok := w.Tick(now, testAim(), nil); ok {
					fireTimes = append(fireTimes, shot.FiredAt)
				}
			}
			require.Len(t, fireTimes, c.wantShots)
			for i := 1; i < len(fireTimes); i++ {
				assert.Equal(t, 200*time.Millisecond, fireTimes[i]-fireTimes[i-1])
			}
		})
	}
}

func TestCadenceOnTickClock(t *testing.T) {
	cfg := rifleConfig()
	cfg.FireRate = 5
	cfg.MagazineCapacity = 100
	w := mustWeapon(t, cfg)
	clock := common.NewClock(common.TickRate)

	var fireTicks []uint64
	w.SetTrigger(true)
	for clock.Tick() < 6*common.TickRate {
		if _, ok := w.Tick(clock.Now(), testAim(), nil); ok {
			fireTicks = append(fireTicks, clock.Tick())
		}
		clock.Advance()
	}
	require.Len(t, fireTicks, 30, "once per 200ms over six seconds")
	for i := 1; i < len(fireTicks); i++ {
		assert.Equal(t, uint64(12), fireTicks[i]-fireTicks[i-1])
	}
}

func TestReloadCompletesOnTickClock(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(0)
	w := mustWeapon(t, cfg)
	clock := common.NewClock(common.TickRate)

	require.True(t, w.StartReload(clock.Now()))
	for w.IsReloading() {
		clock.Advance()
		w.Update(clock.Now())
		require.LessOrEqual(t, clock.Tick(), uint64(100))
	}
	assert.Equal(t, uint64(72), clock.Tick(), "1.2s at 60 Hz")
	assert.Equal(t, 30, w.AmmoInMagazine())
	assert.Equal(t, 90, w.ReserveAmmo())
}

func TestSemiAutomaticFiresOncePerPressEdge(t *testing.T) {
	cfg := rifleConfig()
	cfg.Mode = SemiAutomatic
	cfg.FireRate = 1000
	w := mustWeapon(t, cfg)

	shots := 0
	now := time.Duration(0)
	for press := 0; press < 3; press++ {
		w.SetTrigger(true)
		for i := 0; i < 5; i++ {
			now += 10 * time.Millisecond
			if _, ok := w.Tick(now, testAim(), nil); ok {
				shots++
			}
		}
		w.SetTrigger(false)
		now += 10 * time.Millisecond
		_, ok := w.Tick(now, testAim(), nil)
		assert.False(t, ok)
	}
	assert.Equal(t, 3, shots)
}

func TestSemiAutomaticEdgeConsumedWhenGated(t *testing.T) {
	cfg := rifleConfig()
	cfg.Mode = SemiAutomatic
	cfg.FireRate = 1
	w := mustWeapon(t, cfg)

	w.SetTrigger(true)
	_, ok := w.Tick(0, testAim(), nil)
	require.True(t, ok)
	w.SetTrigger(false)

	w.SetTrigger(true)
	_, ok = w.Tick(100*time.Millisecond, testAim(), nil)
	assert.False(t, ok, "gated by fire rate")
	_, ok = w.Tick(2*time.Second, testAim(), nil)
	assert.False(t, ok, "edge was consumed by the gated attempt")
}

func TestStartReloadGate(t *testing.T) {
	cases := []struct {
		name    string
		loaded  int
		reserve int
		want    bool
	}{
		{"full_magazine", 30, 120, false},
		{"empty_reserve", 10, 0, false},
		{"partial", 10, 120, true},
		{"unlimited", 0, UnlimitedReserve, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := rifleConfig()
			cfg.Loaded = intPtr(c.loaded)
			cfg.ReserveAmmo = c.reserve
			w := mustWeapon(t, cfg)
			assert.Equal(t, c.want, w.StartReload(0))
			assert.Equal(t, c.want, w.IsReloading())
		})
	}
}

func TestStartReloadIsIdempotentWhileReloading(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(5)
	w := mustWeapon(t, cfg)

	require.True(t, w.StartReload(0))
	assert.False(t, w.StartReload(500*time.Millisecond))

	// the second request must not push the deadline out
	w.Update(1200 * time.Millisecond)
	assert.False(t, w.IsReloading())
	assert.Equal(t, 30, w.AmmoInMagazine())
}

func TestPartialReserveReload(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(20)
	cfg.ReserveAmmo = 4
	w := mustWeapon(t, cfg)

	require.True(t, w.StartReload(0))
	w.Update(cfg.ReloadDuration)
	assert.Equal(t, 24, w.AmmoInMagazine())
	assert.Zero(t, w.ReserveAmmo())
	assert.False(t, w.StartReload(2*time.Second), "no reserve left")
}

func TestReserveMatchingDeficitFillsMagazine(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(20)
	cfg.ReserveAmmo = 10
	w := mustWeapon(t, cfg)

	require.True(t, w.StartReload(0))
	w.Update(cfg.ReloadDuration)
	assert.Equal(t, 30, w.AmmoInMagazine())
	assert.Zero(t, w.ReserveAmmo())
}

func TestReloadBlocksFiring(t *testing.T) {
	cfg := rifleConfig()
	cfg.Loaded = intPtr(1)
	w := mustWeapon(t, cfg)

	_, ok := w.TryFire(0, testAim(), nil)
	require.True(t, ok)
	require.True(t, w.StartReload(time.Second))
	_, ok = w.TryFire(1500*time.Millisecond, testAim(), nil)
	assert.False(t, ok)
	assert.Equal(t, 0, w.AmmoInMagazine())
}

func TestAmmoConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := rifleConfig()
	cfg.MagazineCapacity = 12
	cfg.ReserveAmmo = 40
	cfg.ReloadDuration = 300 * time.Millisecond
	w := mustWeapon(t, cfg)

	total := w.AmmoInMagazine() + w.ReserveAmmo()
	fired := 0
	now := time.Duration(0)
	for i := 0; i < 2000; i++ {
		now += time.Duration(rng.Intn(120)) * time.Millisecond
		switch rng.Intn(4) {
		case 0:
			w.StartReload(now)
		case 1:
			w.Update(now)
		default:
			w.Update(now)
			if _, ok := w.TryFire(now, testAim(), rng); ok {
				fired++
			}
		}
		require.LessOrEqual(t, w.AmmoInMagazine(), cfg.MagazineCapacity)
		require.GreaterOrEqual(t, w.AmmoInMagazine(), 0)
		require.GreaterOrEqual(t, w.ReserveAmmo(), 0)
		require.Equal(t, total, w.AmmoInMagazine()+w.ReserveAmmo()+fired)
	}
	assert.Equal(t, total, fired, "all ammunition eventually fired")
}

func TestUnlimitedAmmoIsNeverCounted(t *testing.T) {
	cfg := rifleConfig()
	cfg.ReserveAmmo = UnlimitedReserve
	cfg.MagazineCapacity = 2
	cfg.Delivery = DeliveryProjectile
	w := mustWeapon(t, cfg)

	for i := 0; i < 10; i++ {
		_, ok := w.TryFire(time.Duration(i)*time.Second, testAim(), nil)
		require.True(t, ok)
	}
	assert.True(t, w.Unlimited())
	assert.Equal(t, 2, w.AmmoInMagazine())
	assert.Equal(t, UnlimitedReserve, w.ReserveAmmo())
	assert.False(t, w.IsReloading())
}

func TestProjectileShotUsesMuzzleAndOverride(t *testing.T) {
	cfg := rifleConfig()
	cfg.Delivery = DeliveryProjectile
	cfg.SpreadDegrees = 0
	cfg.DamageOverride = float64Ptr(40)
	w := mustWeapon(t, cfg)

	aim := testAim()
	shot, ok := w.TryFire(0, aim, nil)
	require.True(t, ok)
	assert.Equal(t, DeliveryProjectile, shot.Delivery)
	assert.InDelta(t, 40, shot.Damage, 1e-9)
	assert.True(t, shot.Origin.ApproxEqual(mgl64.Vec3{0, 1.6, -0.5}))
	assert.Equal(t, aim.Forward, shot.Direction)
	assert.Equal(t, DefaultMuzzleSpeed, shot.MuzzleSpeed)
	assert.Equal(t, DefaultProjectileLifetime, shot.Lifetime)
}

func TestNegativeOverrideMeansBaseDamage(t *testing.T) {
	cfg := rifleConfig()
	cfg.DamageOverride = float64Ptr(-1)
	assert.Equal(t, DefaultDamage, cfg.WithDefaults().ProjectileDamage())
}

func TestWeaponConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *WeaponConfig)
	}{
		{"zero_fire_rate", func(c *WeaponConfig) { c.FireRate = 0 }},
		{"zero_capacity", func(c *WeaponConfig) { c.MagazineCapacity = 0 }},
		{"negative_reserve", func(c *WeaponConfig) { c.ReserveAmmo = -5 }},
		{"loaded_over_capacity", func(c *WeaponConfig) { c.Loaded = intPtr(31) }},
		{"negative_spread", func(c *WeaponConfig) { c.SpreadDegrees = -1 }},
		{"zero_override", func(c *WeaponConfig) { c.DamageOverride = float64Ptr(0) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := rifleConfig()
			c.mutate(&cfg)
			_, err := NewWeapon(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidWeapon))
		})
	}
}

func TestRetuneKeepsAmmunition(t *testing.T) {
	cfg := rifleConfig()
	w := mustWeapon(t, cfg)

	smaller := cfg
	smaller.MagazineCapacity = 20
	require.NoError(t, w.Retune(smaller))
	assert.Equal(t, 20, w.AmmoInMagazine())
	assert.Equal(t, 130, w.ReserveAmmo())

	bad := cfg
	bad.FireRate = 0
	assert.Error(t, w.Retune(bad))
	assert.Equal(t, 20, w.Config().MagazineCapacity)
}

func TestParseFireModeAndDelivery(t *testing.T) {
	m, err := ParseFireMode("semi")
	require.NoError(t, err)
	assert.Equal(t, SemiAutomatic, m)
	_, err = ParseFireMode("burst")
	assert.True(t, errors.Is(err, ErrInvalidWeapon))

	d, err := ParseDelivery("projectile")
	require.NoError(t, err)
	assert.Equal(t, DeliveryProjectile, d)
}
