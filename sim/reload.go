package sim

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/prefabs"
	"github.com/pkg/errors"
)

// ApplyReload re-reads a weapons file and retunes the player's weapons by
// name. Ammunition counters and reload state are kept. On error nothing is
// changed. Call between ticks.
func (s *Simulation) ApplyReload(name string) error {
	fresh, err := prefabs.LoadWeapons(name)
	if err != nil {
		return errors.Wrap(err, "sim: reload")
	}
	return s.retune(fresh)
}

func (s *Simulation) retune(fresh *prefabs.Catalog) error {
	armory, ok := ecs.Get(s.World, s.player, component.ArmoryComponent.Kind())
	if !ok || armory.Loadout == nil {
		return errors.New("sim: reload: player has no armory")
	}

	// validate everything first so a bad file leaves all weapons untouched
	updates := make(map[*combat.Weapon]combat.WeaponConfig)
	for _, w := range armory.Loadout.Weapons() {
		cfg, ok := fresh.Weapon(w.Name())
		if !ok {
			logger.Warn("reload: weapon missing from new definitions, kept", "weapon", w.Name())
			continue
		}
		if err := cfg.WithDefaults().Validate(); err != nil {
			return errors.Wrapf(err, "sim: reload weapon %s", w.Name())
		}
		updates[w] = cfg
	}
	for w, cfg := range updates {
		if err := w.Retune(cfg); err != nil {
			return errors.Wrapf(err, "sim: reload weapon %s", w.Name())
		}
	}

	s.Catalog.Weapons = fresh.Weapons
	s.Catalog.Projectiles = fresh.Projectiles
	s.Catalog.ProjectileFor = fresh.ProjectileFor
	s.setProjectileRadii()
	logger.Info("weapons reloaded", "retuned", len(updates))
	return nil
}
