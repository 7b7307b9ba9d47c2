package tags

import "github.com/yohamta/donburi"

var (
	Dome      = donburi.NewTag().SetName("Dome")
	Disappear = donburi.NewTag().SetName("Disappear")
)
