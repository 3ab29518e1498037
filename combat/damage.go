package combat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Damageable is implemented by anything that can be hurt. Implementations
// are unrelated types and are only ever consumed through this interface.
type Damageable interface {
	TakeDamage(amount float64, point, normal mgl64.Vec3)
	IsAlive() bool
	CurrentHealth() float64
}

// DeathFunc runs once when a Damageable reaches zero.
type DeathFunc func(point, normal mgl64.Vec3)

// Health is the damage target used by players and hostile agents.
type Health struct {
	Max     float64
	Current float64

	OnDamage func(h *Health, amount float64)
	OnDeath  DeathFunc

	dead bool
}

// NewHealth creates a Health with current set to max.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// TakeDamage subtracts amount, clamped at zero. Death runs on the first call
// that reaches zero; later calls are no-ops.
func (h *Health) TakeDamage(amount float64, point, normal mgl64.Vec3) {
	if h == nil || h.dead {
		return
	}
	amount = sanitizeDamage(amount)
	h.Current = math.Max(0, h.Current-amount)
	if h.OnDamage != nil && amount > 0 {
		h.OnDamage(h, amount)
	}
	if h.Current > 0 {
		return
	}
	h.dead = true
	if h.OnDeath != nil {
		h.OnDeath(point, normal)
	}
}

func (h *Health) IsAlive() bool {
	return h != nil && !h.dead && h.Current > 0
}

func (h *Health) CurrentHealth() float64 {
	if h == nil {
		return 0
	}
	return h.Current
}

// Fraction returns current/max for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Destructible is a breakable prop. Armor is subtracted from every hit
// before it reaches Durability.
type Destructible struct {
	Durability float64
	Armor      float64
	OnBreak    DeathFunc

	broken bool
}

func NewDestructible(durability, armor float64) *Destructible {
	if durability <= 0 {
		durability = 1
	}
	return &Destructible{Durability: durability, Armor: math.Max(0, armor)}
}

func (d *Destructible) TakeDamage(amount float64, point, normal mgl64.Vec3) {
	if d == nil || d.broken {
		return
	}
	amount = math.Max(0, sanitizeDamage(amount)-d.Armor)
	d.Durability = math.Max(0, d.Durability-amount)
	if d.Durability > 0 {
		return
	}
	d.broken = true
	if d.OnBreak != nil {
		d.OnBreak(point, normal)
	}
}

func (d *Destructible) IsAlive() bool {
	return d != nil && !d.broken
}

func (d *Destructible) CurrentHealth() float64 {
	if d == nil {
		return 0
	}
	return d.Durability
}

func sanitizeDamage(amount float64) float64 {
	if math.IsNaN(amount) || amount < 0 {
		return 0
	}
	return amount
}
