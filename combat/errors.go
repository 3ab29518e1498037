package combat

import (
	"github.com/milk9111/firefight/common"
	"github.com/pkg/errors"
)

var (
	ErrInvalidWeapon        = errors.New("combat: invalid weapon config")
	ErrNoNavSurface         = errors.New("combat: no navigable surface within search radius")
	ErrNoProjectileTemplate = errors.New("combat: projectile weapon has no projectile template")
)

var logger = common.NewLogger("combat")
