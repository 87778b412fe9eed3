package sim

// Tuning holds every physics and spawn constant. DefaultTuning reproduces the
// reference feel; YAML config can override any field.
type Tuning struct {
	BallSize          float64 // side of the ball's bounding square
	BallStartY        float64 // top of the ball at (re)start; x is centered
	TrailLength       int     // positions kept in the ball trail
	WindowCoupling    float64 // share of window velocity transferred to the ball
	Gravity           float64 // added to vy every tick
	HorizontalDamping float64 // vx multiplier applied after integration
	Restitution       float64 // velocity kept on a wall bounce
	MinBounce         float64 // weakest allowed floor bounce (negative = up)
	ImpactFactor      float64 // force multiplier slope per unit of |window vy|
	HeaderBand        float64 // reserved band at the top of the playfield

	HazardSize    float64
	HazardSpeed   float64
	SpawnInterval float64 // seconds of accumulated time between spawns
	SpawnDelay    float64 // seconds after (re)start before spawning begins
	SpawnMinY     float64 // lowest y for side spawns
}

// DefaultTuning returns the reference constants.
func DefaultTuning() Tuning {
	return Tuning{
		BallSize:          25,
		BallStartY:        50,
		TrailLength:       3,
		WindowCoupling:    0.15,
		Gravity:           0.75,
		HorizontalDamping: 0.99,
		Restitution:       0.86,
		MinBounce:         -10,
		ImpactFactor:      0.1,
		HeaderBand:        30,

		HazardSize:    30,
		HazardSpeed:   3,
		SpawnInterval: 1.5,
		SpawnDelay:    5,
		SpawnMinY:     50,
	}
}
