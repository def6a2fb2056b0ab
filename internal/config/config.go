// Package config provides YAML-based gameplay configuration loading for the
// paddle game.
package config

// Config contains all tunable gameplay parameters.
type Config struct {
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Speed  SpeedConfig  `yaml:"speed"`
	Rules  RulesConfig  `yaml:"rules"`
}

// PaddleConfig defines the paddle's shape and handling.
type PaddleConfig struct {
	Width        int     `yaml:"width"`         // Width in cells
	Step         float64 `yaml:"step"`          // Cells moved per tick per held button
	BottomOffset int     `yaml:"bottom_offset"` // Rows above the bottom edge
}

// BallConfig defines the ball's shape and physics.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`         // Collision radius in cells
	Speed         float64 `yaml:"speed"`          // Base velocity per tick on each axis
	Gain          float64 `yaml:"gain"`           // Horizontal spin per cell of paddle offset
	MaxHorizontal float64 `yaml:"max_horizontal"` // Horizontal velocity clamp after spin
	Accel         float64 `yaml:"accel"`          // Multiplicative speed-up per paddle hit
}

// SpeedConfig defines the periodic speed-mode alternation.
type SpeedConfig struct {
	NormalSecs int     `yaml:"normal_secs"` // Seconds spent in the normal phase
	FastSecs   int     `yaml:"fast_secs"`   // Seconds spent in the fast phase
	NormalMult float64 `yaml:"normal_mult"` // Displacement multiplier, normal phase
	FastMult   float64 `yaml:"fast_mult"`   // Displacement multiplier, fast phase
}

// RulesConfig defines session rules.
type RulesConfig struct {
	Lives         int `yaml:"lives"`           // Points before game over
	RestartHoldMs int `yaml:"restart_hold_ms"` // Chord hold time to restart after game over
}
