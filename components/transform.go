package components

import (
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Transform is the world position and scale of an entity.
var Transform = donburi.NewComponentType[gamemath.Transform]()
