package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer
const Default ecs.LayerID = 0
