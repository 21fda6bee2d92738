package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultYAML returns the embedded default game.yaml.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultGameYAML))
	copy(out, defaultGameYAML)
	return out
}

// Default returns the default game configuration.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 450,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsConfig{
			Gravity:     500,
			MoveSpeed:   200,
			JumpImpulse: 350,
		},
		Level: LevelConfig{
			TileSize: 32,
		},
		Player: PlayerConfig{
			Width:         28,
			Height:        30,
			MaxHealth:     3,
			ShootDuration: 0.5,
			AnimInterval:  0.15,
			HistoryFrames: 180,
			FrameWidth:    32,
			FrameHeight:   32,
		},
		Projectile: ProjectileConfig{
			Capacity:       16,
			Speed:          400,
			Width:          10,
			Height:         4,
			Damage:         1,
			CullHalfWidth:  800,
			CullHalfHeight: 600,
		},
		Enemy: EnemyConfig{
			Width:        30,
			Height:       30,
			Speed:        50,
			PatrolOffset: 200,
			Health:       1,
			KillBonus:    100,
		},
		Coin: CoinConfig{
			Width:  16,
			Height: 16,
			Value:  10,
		},
	}
}
