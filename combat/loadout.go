package combat

import (
	"time"

	"github.com/milk9111/firefight/common"
)

// Loadout holds the weapons an operator can switch between. Only the active
// weapon sees trigger input, but every weapon keeps polling its reload.
type Loadout struct {
	weapons []*Weapon
	active  int
}

func NewLoadout(weapons ...*Weapon) *Loadout {
	l := &Loadout{}
	for _, w := range weapons {
		if w != nil {
			l.weapons = append(l.weapons, w)
		}
	}
	return l
}

// Activate selects slot i, clamped to the available slots, and returns the
// slot that ended up active.
func (l *Loadout) Activate(i int) int {
	if l == nil || len(l.weapons) == 0 {
		return 0
	}
	i = common.Clamp(i, 0, len(l.weapons)-1)
	if i != l.active {
		l.weapons[l.active].Holster()
	}
	l.active = i
	return i
}

func (l *Loadout) Active() *Weapon {
	if l == nil || len(l.weapons) == 0 {
		return nil
	}
	return l.weapons[l.active]
}

func (l *Loadout) ActiveIndex() int {
	if l == nil {
		return 0
	}
	return l.active
}

func (l *Loadout) Weapons() []*Weapon {
	if l == nil {
		return nil
	}
	return l.weapons
}

// SetTrigger forwards trigger state to the active weapon.
func (l *Loadout) SetTrigger(held bool) {
	l.Active().SetTrigger(held)
}

// Reload requests a reload of the active weapon.
func (l *Loadout) Reload(now time.Duration) bool {
	return l.Active().StartReload(now)
}

// Tick polls holstered weapons and ticks the active one.
func (l *Loadout) Tick(now time.Duration, aim Aim, rng Sampler) (Shot, bool) {
	if l == nil || len(l.weapons) == 0 {
		return Shot{}, false
	}
	for i, w := range l.weapons {
		if i != l.active {
			w.Update(now)
		}
	}
	return l.weapons[l.active].Tick(now, aim, rng)
}
