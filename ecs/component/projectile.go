package component

import "github.com/milk9111/firefight/combat"

type ProjectileBody struct {
	Body *combat.Projectile
}

var ProjectileBodyComponent = NewComponent[ProjectileBody]()
