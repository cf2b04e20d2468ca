package config

import "github.com/yohamta/donburi/ecs"

// ECS layers.
const (
	DefaultLayer ecs.LayerID = iota
)
