package combat

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/firefight/common"
)

// Projectile is the payload of a simulated bullet. Movement is owned by the
// physics backend; the projectile owns lifetime and damage debouncing.
type Projectile struct {
	Shot        uuid.UUID
	Owner       EntityID
	Velocity    mgl64.Vec3
	Damage      float64
	SpawnTime   time.Duration
	MaxLifetime time.Duration

	hasAppliedDamage bool
}

// NewProjectile builds the payload for a projectile shot fired by owner.
func NewProjectile(shot Shot, owner EntityID, now time.Duration) *Projectile {
	lifetime := shot.Lifetime
	if lifetime <= 0 {
		lifetime = DefaultProjectileLifetime
	}
	speed := shot.MuzzleSpeed
	if speed <= 0 {
		speed = DefaultMuzzleSpeed
	}
	dmg := shot.Damage
	if dmg <= 0 {
		dmg = DefaultDamage
	}
	return &Projectile{
		Shot:        shot.ID,
		Owner:       owner,
		Velocity:    common.SafeNormalize(shot.Direction, mgl64.Vec3{0, 0, -1}).Mul(speed),
		Damage:      dmg,
		SpawnTime:   now,
		MaxLifetime: lifetime,
	}
}

// Expired reports whether the projectile outlived MaxLifetime.
func (p *Projectile) Expired(now time.Duration) bool {
	return p != nil && now >= p.SpawnTime+p.MaxLifetime
}

func (p *Projectile) HasAppliedDamage() bool {
	return p != nil && p.hasAppliedDamage
}

// OnContact handles one contact report. Only the first solid contact counts:
// it stops the projectile and delivers damage to the struck Damageable, if
// any. Sensor contacts, contacts with the owner and every later report are
// ignored. The return value is true when the projectile is spent and should
// be removed.
func (p *Projectile) OnContact(c Contact, targets TargetLookup) bool {
	if p == nil || p.hasAppliedDamage || c.Sensor {
		return false
	}
	if c.Other != 0 && c.Other == p.Owner {
		return false
	}
	p.hasAppliedDamage = true
	p.Velocity = mgl64.Vec3{}
	if c.Other == 0 || targets == nil {
		return true
	}
	if target, ok := targets.FindDamageable(c.Other); ok {
		target.TakeDamage(p.Damage, c.Point, c.Normal)
	}
	return true
}
