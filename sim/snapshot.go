package sim

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// Snapshot is a read-only copy of the world for drawing and reporting.
type Snapshot struct {
	Now         time.Duration
	Player      *PlayerView
	Hostiles    []ActorView
	Props       []PropView
	Projectiles []mgl64.Vec3
	Impacts     []component.Impact
	Walls       []BoxView
	Sensors     []SensorView
}

type PlayerView struct {
	Position      mgl64.Vec3
	Yaw, Pitch    float64
	Health        float64
	Weapon        string
	Slot          int
	Ammo          int
	Reserve       int
	Unlimited     bool
	Reloading     bool
	ReloadPercent float64
	ReticleGap    float64
}

type ActorView struct {
	Entity   ecs.Entity
	Position mgl64.Vec3
	Yaw      float64
	Radius   float64
	Health   float64
	State    string
	Path     []mgl64.Vec3
}

type PropView struct {
	Name   string
	Min    mgl64.Vec3
	Max    mgl64.Vec3
	Health float64
	Color  color.Color
}

type BoxView struct {
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Color color.Color
}

type SensorView struct {
	Name     string
	Position mgl64.Vec3
	Radius   float64
}

var (
	defaultWallColor = color.NRGBA{R: 0x50, G: 0x50, B: 0x58, A: 0xff}
	defaultPropColor = color.NRGBA{R: 0x96, G: 0x6e, B: 0x3c, A: 0xff}
)

func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{Now: s.Clock.Now(), Player: s.playerView()}

	ecs.ForEach2(s.World, component.HostileTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.HostileTag, t *component.Transform) {
		v := ActorView{Entity: e, Position: t.Position, Yaw: t.Yaw, State: "chase"}
		if c, ok := ecs.Get(s.World, e, component.ColliderComponent.Kind()); ok {
			v.Radius = c.Radius
		}
		if dr, ok := ecs.Get(s.World, e, component.DamageReceiverComponent.Kind()); ok && dr.Target != nil {
			v.Health = dr.Target.CurrentHealth()
		}
		if p, ok := ecs.Get(s.World, e, component.PursuitComponent.Kind()); ok {
			v.State = p.Controller.State().String()
			v.Path = s.Nav.Path(combat.EntityID(e))
		}
		snap.Hostiles = append(snap.Hostiles, v)
	})

	colors := make(map[string]color.Color, len(s.Catalog.Arena.Props))
	for _, p := range s.Catalog.Arena.Props {
		if p.Color != nil {
			colors[p.Name] = p.Color.Color
		}
	}
	ecs.ForEach2(s.World, component.PropTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PropTag, t *component.Transform) {
		v := PropView{Color: defaultPropColor}
		if r, ok := ecs.Get(s.World, e, component.RoleComponent.Kind()); ok {
			v.Name = r.Name
			if c, ok := colors[r.Name]; ok {
				v.Color = c
			}
		}
		if c, ok := ecs.Get(s.World, e, component.ColliderComponent.Kind()); ok {
			half := mgl64.Vec3{c.HalfX, 0, c.HalfZ}
			v.Min = t.Position.Sub(half)
			v.Max = t.Position.Add(half).Add(mgl64.Vec3{0, c.Height, 0})
		}
		if dr, ok := ecs.Get(s.World, e, component.DamageReceiverComponent.Kind()); ok && dr.Target != nil {
			v.Health = dr.Target.CurrentHealth()
		}
		snap.Props = append(snap.Props, v)
	})

	ecs.ForEach2(s.World, component.ProjectileBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.ProjectileBody, t *component.Transform) {
		snap.Projectiles = append(snap.Projectiles, t.Position)
	})
	ecs.ForEach(s.World, component.ImpactComponent.Kind(), func(_ ecs.Entity, im *component.Impact) {
		snap.Impacts = append(snap.Impacts, *im)
	})

	for _, w := range s.Catalog.Arena.Walls {
		v := BoxView{Min: w.Min.Vec(), Max: w.Max.Vec(), Color: defaultWallColor}
		if w.Color != nil {
			v.Color = w.Color.Color
		}
		snap.Walls = append(snap.Walls, v)
	}
	for _, sensor := range s.Catalog.Arena.Sensors {
		snap.Sensors = append(snap.Sensors, SensorView{Name: sensor.Name, Position: sensor.Position.Vec(), Radius: sensor.Radius})
	}
	return snap
}

func (s *Simulation) playerView() *PlayerView {
	t, ok := ecs.Get(s.World, s.player, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	v := &PlayerView{Position: t.Position, Yaw: t.Yaw, Pitch: t.Pitch}
	if dr, ok := ecs.Get(s.World, s.player, component.DamageReceiverComponent.Kind()); ok && dr.Target != nil {
		v.Health = dr.Target.CurrentHealth()
	}
	armory, ok := ecs.Get(s.World, s.player, component.ArmoryComponent.Kind())
	if !ok || armory.Loadout == nil {
		return v
	}
	if w := armory.Loadout.Active(); w != nil {
		v.Weapon = w.Name()
		v.Slot = armory.Loadout.ActiveIndex()
		v.Ammo = w.AmmoInMagazine()
		v.Reserve = w.ReserveAmmo()
		v.Unlimited = w.Unlimited()
		v.Reloading = w.IsReloading()
		v.ReloadPercent = w.ReloadProgress(s.Clock.Now())
	}
	v.ReticleGap = armory.Reticle.Gap()
	return v
}
