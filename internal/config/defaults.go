package config

import (
	_ "embed"
)

//go:embed defaults/paddle.yaml
var defaultPaddleYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors the
// embedded YAML and serves as the last-resort fallback.
func DefaultConfig() Config {
	return Config{
		Paddle: PaddleConfig{
			Width:        9,
			Step:         0.8,
			BottomOffset: 2,
		},
		Ball: BallConfig{
			Radius:        0.5,
			Speed:         0.35,
			Gain:          0.12,
			MaxHorizontal: 0.9,
			Accel:         1.03,
		},
		Speed: SpeedConfig{
			NormalSecs: 20,
			FastSecs:   5,
			NormalMult: 1.0,
			FastMult:   2.0,
		},
		Rules: RulesConfig{
			Lives:         10,
			RestartHoldMs: 800,
		},
	}
}
