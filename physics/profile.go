package physics

// Material holds fixture surface parameters
// Profiles are pre-defined as package variables and copied into BodySpec
type Material struct {
	Density     float64
	Friction    float64
	Restitution float64
}

// Ground is the static floor under the biggest demo
var Ground = Material{
	Density:  0,
	Friction: 0.6,
}

// Wall bounces arena balls without losing energy
var Wall = Material{
	Density:     0,
	Friction:    0,
	Restitution: 1,
}
