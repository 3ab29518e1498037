package combat

import (
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/firefight/common"
	"github.com/pkg/errors"
)

// FireMode selects trigger semantics.
type FireMode int

const (
	Automatic FireMode = iota
	SemiAutomatic
)

func (m FireMode) String() string {
	switch m {
	case Automatic:
		return "automatic"
	case SemiAutomatic:
		return "semi_automatic"
	default:
		return "unknown"
	}
}

// ParseFireMode accepts "auto", "automatic", "semi" and "semi_automatic".
func ParseFireMode(s string) (FireMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "automatic":
		return Automatic, nil
	case "semi", "semi_automatic", "semiautomatic":
		return SemiAutomatic, nil
	}
	return Automatic, errors.Wrapf(ErrInvalidWeapon, "unknown fire mode %q", s)
}

// Delivery selects how a shot is resolved.
type Delivery int

const (
	DeliveryHitscan Delivery = iota
	DeliveryProjectile
)

func (d Delivery) String() string {
	if d == DeliveryProjectile {
		return "projectile"
	}
	return "hitscan"
}

func ParseDelivery(s string) (Delivery, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hitscan", "ray":
		return DeliveryHitscan, nil
	case "projectile", "bullet":
		return DeliveryProjectile, nil
	}
	return DeliveryHitscan, errors.Wrapf(ErrInvalidWeapon, "unknown delivery %q", s)
}

// ReloadState is the reload state machine.
type ReloadState int

const (
	ReloadIdle ReloadState = iota
	Reloading
)

// UnlimitedReserve marks a weapon whose ammunition is never counted.
const UnlimitedReserve = -1

const (
	DefaultDamage             = 25.0
	DefaultRange              = 250.0
	DefaultMuzzleSpeed        = 80.0
	DefaultProjectileLifetime = 3 * time.Second

	// MuzzleFallbackDistance is how far in front of the camera projectiles
	// spawn when the weapon has no muzzle point.
	MuzzleFallbackDistance = 0.5
)

// WeaponConfig is the static tuning of a weapon.
type WeaponConfig struct {
	Name             string
	Mode             FireMode
	Delivery         Delivery
	FireRate         float64
	MagazineCapacity int
	// Loaded is the starting magazine count. Nil means full.
	Loaded         *int
	ReserveAmmo    int
	ReloadDuration time.Duration
	SpreadDegrees  float64

	Damage             float64
	Range              float64
	MuzzleSpeed        float64
	DamageOverride     *float64
	ProjectileLifetime time.Duration
}

// Validate reports configuration errors wrapped around ErrInvalidWeapon.
func (c WeaponConfig) Validate() error {
	switch {
	case c.FireRate <= 0:
		return errors.Wrapf(ErrInvalidWeapon, "%s: fire rate %g must be positive", c.Name, c.FireRate)
	case c.MagazineCapacity <= 0:
		return errors.Wrapf(ErrInvalidWeapon, "%s: magazine capacity %d must be positive", c.Name, c.MagazineCapacity)
	case c.ReserveAmmo < 0 && c.ReserveAmmo != UnlimitedReserve:
		return errors.Wrapf(ErrInvalidWeapon, "%s: reserve ammo %d is negative", c.Name, c.ReserveAmmo)
	case c.ReloadDuration < 0:
		return errors.Wrapf(ErrInvalidWeapon, "%s: reload duration %s is negative", c.Name, c.ReloadDuration)
	case c.SpreadDegrees < 0 || c.SpreadDegrees >= 90:
		return errors.Wrapf(ErrInvalidWeapon, "%s: spread %g outside [0, 90)", c.Name, c.SpreadDegrees)
	case c.Loaded != nil && (*c.Loaded < 0 || *c.Loaded > c.MagazineCapacity):
		return errors.Wrapf(ErrInvalidWeapon, "%s: loaded %d outside [0, %d]", c.Name, *c.Loaded, c.MagazineCapacity)
	case c.Damage < 0:
		return errors.Wrapf(ErrInvalidWeapon, "%s: damage %g is negative", c.Name, c.Damage)
	case c.DamageOverride != nil && *c.DamageOverride == 0:
		return errors.Wrapf(ErrInvalidWeapon, "%s: damage override must be positive", c.Name)
	}
	return nil
}

// WithDefaults fills unset tuning values.
func (c WeaponConfig) WithDefaults() WeaponConfig {
	if c.Damage == 0 {
		c.Damage = DefaultDamage
	}
	if c.Range <= 0 {
		c.Range = DefaultRange
	}
	if c.MuzzleSpeed <= 0 {
		c.MuzzleSpeed = DefaultMuzzleSpeed
	}
	if c.ProjectileLifetime <= 0 {
		c.ProjectileLifetime = DefaultProjectileLifetime
	}
	return c
}

// ProjectileDamage is the override when one is set, the base damage
// otherwise. Negative overrides mean "no override".
func (c WeaponConfig) ProjectileDamage() float64 {
	if c.DamageOverride != nil && *c.DamageOverride > 0 {
		return *c.DamageOverride
	}
	return c.Damage
}

// Aim is the camera basis a shot is fired along.
type Aim struct {
	Origin  mgl64.Vec3
	Forward mgl64.Vec3
	Right   mgl64.Vec3
	Up      mgl64.Vec3
	// Muzzle is where projectiles spawn. Nil falls back to a point just in
	// front of Origin.
	Muzzle *mgl64.Vec3
}

// NewAim derives right/up from forward.
func NewAim(origin, forward mgl64.Vec3) Aim {
	forward = common.SafeNormalize(forward, mgl64.Vec3{0, 0, -1})
	right, up := common.Basis(forward)
	return Aim{Origin: origin, Forward: forward, Right: right, Up: up}
}

func (a Aim) MuzzlePosition() mgl64.Vec3 {
	if a.Muzzle != nil {
		return *a.Muzzle
	}
	return a.Origin.Add(a.Forward.Mul(MuzzleFallbackDistance))
}

// Shot is a discharge handed to the hit resolver or projectile spawner.
type Shot struct {
	ID          uuid.UUID
	Weapon      string
	Delivery    Delivery
	Origin      mgl64.Vec3
	Direction   mgl64.Vec3
	Damage      float64
	Range       float64
	MuzzleSpeed float64
	Lifetime    time.Duration
	FiredAt     time.Duration
}

// Weapon is the fire control of one weapon instance. It owns its ammo
// counters and reload state; all timing is compared against the caller's
// simulation clock.
type Weapon struct {
	cfg WeaponConfig

	ammo    int
	reserve int

	nextEligibleFireAt time.Duration
	reload             ReloadState
	reloadStartedAt    time.Duration
	reloadCompletesAt  time.Duration

	triggerHeld  bool
	pressPending bool
}

// NewWeapon validates cfg and returns a weapon with its starting ammo.
func NewWeapon(cfg WeaponConfig) (*Weapon, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Weapon{cfg: cfg, ammo: cfg.MagazineCapacity, reserve: cfg.ReserveAmmo}
	if cfg.Loaded != nil {
		w.ammo = *cfg.Loaded
	}
	return w, nil
}

func (w *Weapon) Config() WeaponConfig {
	if w == nil {
		return WeaponConfig{}
	}
	return w.cfg
}

func (w *Weapon) Name() string {
	if w == nil {
		return ""
	}
	return w.cfg.Name
}

func (w *Weapon) AmmoInMagazine() int {
	if w == nil {
		return 0
	}
	return w.ammo
}

// ReserveAmmo returns UnlimitedReserve for unlimited weapons.
func (w *Weapon) ReserveAmmo() int {
	if w == nil {
		return 0
	}
	return w.reserve
}

func (w *Weapon) Unlimited() bool {
	return w != nil && w.reserve == UnlimitedReserve
}

func (w *Weapon) IsReloading() bool {
	return w != nil && w.reload == Reloading
}

func (w *Weapon) NextEligibleFireAt() time.Duration {
	if w == nil {
		return 0
	}
	return w.nextEligibleFireAt
}

// ReloadProgress returns 0..1 while reloading and 0 otherwise.
func (w *Weapon) ReloadProgress(now time.Duration) float64 {
	if w == nil || w.reload != Reloading {
		return 0
	}
	total := w.reloadCompletesAt - w.reloadStartedAt
	if total <= 0 {
		return 1
	}
	p := float64(now-w.reloadStartedAt) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// SetTrigger records the trigger state. A false→true change is a press edge.
func (w *Weapon) SetTrigger(held bool) {
	if w == nil {
		return
	}
	if held && !w.triggerHeld {
		w.pressPending = true
	}
	w.triggerHeld = held
}

// Holster releases the trigger and drops any unconsumed press edge.
func (w *Weapon) Holster() {
	if w == nil {
		return
	}
	w.triggerHeld = false
	w.pressPending = false
}

// Tick runs one simulation step: reload completion, then trigger handling.
// Automatic weapons attempt a shot every tick the trigger is held;
// semi-automatic weapons attempt at most one shot per press edge.
func (w *Weapon) Tick(now time.Duration, aim Aim, rng Sampler) (Shot, bool) {
	if w == nil {
		return Shot{}, false
	}
	w.Update(now)
	switch w.cfg.Mode {
	case SemiAutomatic:
		if !w.pressPending {
			return Shot{}, false
		}
		w.pressPending = false
		return w.TryFire(now, aim, rng)
	default:
		if !w.triggerHeld {
			return Shot{}, false
		}
		return w.TryFire(now, aim, rng)
	}
}

// TryFire attempts one discharge at now. Reloading and fire-rate gating fail
// silently. An empty magazine starts a reload instead of firing.
func (w *Weapon) TryFire(now time.Duration, aim Aim, rng Sampler) (Shot, bool) {
	if w == nil || w.reload == Reloading || now < w.nextEligibleFireAt {
		return Shot{}, false
	}
	if !w.Unlimited() {
		if w.ammo <= 0 {
			w.StartReload(now)
			return Shot{}, false
		}
		w.ammo--
	}
	w.nextEligibleFireAt = now + shotInterval(w.cfg.FireRate)

	shot := Shot{
		ID:          uuid.New(),
		Weapon:      w.cfg.Name,
		Delivery:    w.cfg.Delivery,
		Origin:      aim.Origin,
		Direction:   ApplySpread(aim.Forward, w.cfg.SpreadDegrees, aim.Right, aim.Up, rng),
		Damage:      w.cfg.Damage,
		Range:       w.cfg.Range,
		MuzzleSpeed: w.cfg.MuzzleSpeed,
		Lifetime:    w.cfg.ProjectileLifetime,
		FiredAt:     now,
	}
	if w.cfg.Delivery == DeliveryProjectile {
		shot.Origin = aim.MuzzlePosition()
		shot.Damage = w.cfg.ProjectileDamage()
	}
	return shot, true
}

// StartReload begins a reload. It is a no-op while already reloading, with
// no reserve left, or with a full magazine. Reports whether a reload began.
func (w *Weapon) StartReload(now time.Duration) bool {
	if w == nil || w.reload == Reloading || w.Unlimited() {
		return false
	}
	if w.reserve <= 0 || w.ammo >= w.cfg.MagazineCapacity {
		return false
	}
	w.reload = Reloading
	w.reloadStartedAt = now
	w.reloadCompletesAt = now + w.cfg.ReloadDuration
	return true
}

// Update completes a due reload. It must be polled every tick, including
// while the weapon is holstered.
func (w *Weapon) Update(now time.Duration) {
	if w == nil || w.reload != Reloading || now < w.reloadCompletesAt {
		return
	}
	moved := min(w.cfg.MagazineCapacity-w.ammo, w.reserve)
	if moved > 0 {
		w.ammo += moved
		w.reserve -= moved
	}
	w.reload = ReloadIdle
}

// Retune swaps in a new config while keeping the ammo counters. Rounds that
// no longer fit the magazine go back to the reserve.
func (w *Weapon) Retune(cfg WeaponConfig) error {
	if w == nil {
		return nil
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	wasUnlimited := w.Unlimited()
	w.cfg = cfg
	switch {
	case cfg.ReserveAmmo == UnlimitedReserve:
		w.reserve = UnlimitedReserve
		w.ammo = min(w.ammo, cfg.MagazineCapacity)
	case wasUnlimited:
		w.reserve = cfg.ReserveAmmo
		w.ammo = min(w.ammo, cfg.MagazineCapacity)
	case w.ammo > cfg.MagazineCapacity:
		w.reserve += w.ammo - cfg.MagazineCapacity
		w.ammo = cfg.MagazineCapacity
	}
	return nil
}

func shotInterval(rate float64) time.Duration {
	return time.Duration(float64(time.Second) / rate)
}
