package sim

import "github.com/milk9111/firefight/combat"

// Stats are running combat totals collected from combat events.
type Stats struct {
	ShotsFired       int
	Hits             int
	DamageEvents     int
	DamageDealt      float64
	Kills            int
	ReloadsStarted   int
	ProjectilesSpent int
}

func (s *Stats) record(evt combat.CombatEvent) {
	switch evt.Type {
	case combat.EventShotFired:
		s.ShotsFired++
	case combat.EventHit:
		s.Hits++
	case combat.EventDamageApplied:
		s.DamageEvents++
		s.DamageDealt += evt.Damage
	case combat.EventDeath:
		s.Kills++
	case combat.EventReloadStarted:
		s.ReloadsStarted++
	case combat.EventProjectileSpent:
		s.ProjectilesSpent++
	}
}
