package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Level      LevelConfig      `yaml:"level"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Coin       CoinConfig       `yaml:"coin"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`     // px/s^2, applied every frame
	MoveSpeed   float64 `yaml:"moveSpeed"`   // px/s
	JumpImpulse float64 `yaml:"jumpImpulse"` // px/s, upward
}

type LevelConfig struct {
	TileSize int `yaml:"tileSize"`
}

type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxHealth     int     `yaml:"maxHealth"`
	ShootDuration float64 `yaml:"shootDuration"`
	AnimInterval  float64 `yaml:"animInterval"`
	HistoryFrames int     `yaml:"historyFrames"`
	FrameWidth    int     `yaml:"frameWidth"`
	FrameHeight   int     `yaml:"frameHeight"`

	// SeedHistoryWithSpawn fills the position history with the spawn point at
	// load. When false, a soft reset before the ring wraps lands at (0, 0).
	SeedHistoryWithSpawn bool `yaml:"seedHistoryWithSpawn"`
}

type ProjectileConfig struct {
	Capacity       int     `yaml:"capacity"`
	Speed          float64 `yaml:"speed"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Damage         int     `yaml:"damage"`
	CullHalfWidth  float64 `yaml:"cullHalfWidth"`
	CullHalfHeight float64 `yaml:"cullHalfHeight"`
}

type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	PatrolOffset float64 `yaml:"patrolOffset"`
	Health       int     `yaml:"health"`
	KillBonus    int     `yaml:"killBonus"` // points per projectile hit
}

type CoinConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Value  int     `yaml:"value"`
}
