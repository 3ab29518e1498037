package prefabs

import (
	"context"

	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var logger = common.NewLogger("prefabs")

// CatalogFiles names the prefab files a catalog is read from.
type CatalogFiles struct {
	Weapons string
	Player  string
	Hostile string
	Arena   string
}

func DefaultCatalogFiles() CatalogFiles {
	return CatalogFiles{
		Weapons: "weapons.yaml",
		Player:  "player.yaml",
		Hostile: "hostile.yaml",
		Arena:   "arena.yaml",
	}
}

// Catalog is every definition the simulation is built from.
type Catalog struct {
	Weapons     []combat.WeaponConfig
	Projectiles map[string]ProjectileSpec
	// ProjectileFor maps a projectile weapon to its body template.
	ProjectileFor map[string]ProjectileSpec
	Player        PlayerSpec
	Hostile       HostileSpec
	Arena         ArenaSpec
}

// Weapon returns the named weapon config.
func (c *Catalog) Weapon(name string) (combat.WeaponConfig, bool) {
	if c == nil {
		return combat.WeaponConfig{}, false
	}
	for _, cfg := range c.Weapons {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return combat.WeaponConfig{}, false
}

// LoadCatalog reads all prefab files concurrently and validates them.
func LoadCatalog(ctx context.Context, files CatalogFiles) (*Catalog, error) {
	var (
		weapons WeaponsFile
		player  PlayerSpec
		hostile HostileSpec
		arena   ArenaSpec
	)

	g, ctx := errgroup.WithContext(ctx)
	load := func(name string, fn func() error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return errors.Wrapf(fn(), "prefabs: load %s", name)
		})
	}
	load(files.Weapons, func() (err error) { weapons, err = LoadSpec[WeaponsFile](files.Weapons); return })
	load(files.Player, func() (err error) { player, err = LoadSpec[PlayerSpec](files.Player); return })
	load(files.Hostile, func() (err error) { hostile, err = LoadSpec[HostileSpec](files.Hostile); return })
	load(files.Arena, func() (err error) { arena, err = LoadSpec[ArenaSpec](files.Arena); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat, err := buildCatalog(weapons, player, hostile, arena)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "weapons", len(cat.Weapons), "arena", cat.Arena.Name, "hostile", cat.Hostile.Name)
	return cat, nil
}

// LoadWeapons reads and validates only the weapons file; used by hot reload.
// The returned catalog carries weapons and projectile templates only.
func LoadWeapons(name string) (*Catalog, error) {
	file, err := LoadSpec[WeaponsFile](name)
	if err != nil {
		return nil, err
	}
	return buildWeapons(file)
}

func buildCatalog(weapons WeaponsFile, player PlayerSpec, hostile HostileSpec, arena ArenaSpec) (*Catalog, error) {
	cat, err := buildWeapons(weapons)
	if err != nil {
		return nil, err
	}
	cat.Player = player
	cat.Hostile = hostile
	cat.Arena = arena

	if len(player.Loadout) == 0 {
		return nil, errors.Wrap(combat.ErrInvalidWeapon, "prefabs: player has an empty loadout")
	}
	for _, name := range player.Loadout {
		if _, ok := cat.Weapon(name); !ok {
			return nil, errors.Wrapf(combat.ErrInvalidWeapon, "prefabs: player loadout names unknown weapon %q", name)
		}
	}
	if hostile.Movement != "" && hostile.Movement != MovementPursuit && hostile.Movement != MovementChase {
		return nil, errors.Errorf("prefabs: hostile %s has unknown movement %q", hostile.Name, hostile.Movement)
	}
	if arena.Nav.Width <= 0 || arena.Nav.Depth <= 0 {
		return nil, errors.Errorf("prefabs: arena %s has an empty nav grid", arena.Name)
	}
	return cat, nil
}

func buildWeapons(file WeaponsFile) (*Catalog, error) {
	cat := &Catalog{
		Projectiles:   make(map[string]ProjectileSpec, len(file.Projectiles)),
		ProjectileFor: make(map[string]ProjectileSpec),
	}
	for _, p := range file.Projectiles {
		cat.Projectiles[p.Name] = p
	}

	seen := make(map[string]bool, len(file.Weapons))
	for _, spec := range file.Weapons {
		if seen[spec.Name] {
			return nil, errors.Wrapf(combat.ErrInvalidWeapon, "prefabs: duplicate weapon %q", spec.Name)
		}
		seen[spec.Name] = true

		cfg, err := spec.Config()
		if err != nil {
			return nil, errors.Wrap(err, "prefabs")
		}
		if cfg.Delivery == combat.DeliveryProjectile {
			tmpl, ok := cat.Projectiles[spec.Projectile]
			if !ok {
				return nil, errors.Wrapf(combat.ErrNoProjectileTemplate, "prefabs: weapon %s wants %q", spec.Name, spec.Projectile)
			}
			cat.ProjectileFor[spec.Name] = tmpl
		}
		cat.Weapons = append(cat.Weapons, cfg)
	}
	return cat, nil
}
