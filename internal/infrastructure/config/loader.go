package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration and levels using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads a YAML config file. Keys it leaves out keep their defaults.
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return cfg, nil
}

// LoadDefault parses the embedded default game.yaml
func LoadDefault() (*GameConfig, error) {
	return Parse(defaultGameYAML)
}

// Parse decodes YAML over Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects non-positive sizes, capacities and rates.
func (c *GameConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"display.screenWidth", c.Display.ScreenWidth > 0},
		{"display.screenHeight", c.Display.ScreenHeight > 0},
		{"display.scale", c.Display.Scale > 0},
		{"display.framerate", c.Display.Framerate > 0},
		{"physics.gravity", c.Physics.Gravity >= 0},
		{"physics.moveSpeed", c.Physics.MoveSpeed > 0},
		{"physics.jumpImpulse", c.Physics.JumpImpulse > 0},
		{"level.tileSize", c.Level.TileSize > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.maxHealth", c.Player.MaxHealth > 0},
		{"player.shootDuration", c.Player.ShootDuration > 0},
		{"player.animInterval", c.Player.AnimInterval > 0},
		{"player.historyFrames", c.Player.HistoryFrames > 0},
		{"player.frameWidth", c.Player.FrameWidth > 0},
		{"player.frameHeight", c.Player.FrameHeight > 0},
		{"projectile.capacity", c.Projectile.Capacity > 0},
		{"projectile.speed", c.Projectile.Speed > 0},
		{"projectile.width", c.Projectile.Width > 0},
		{"projectile.height", c.Projectile.Height > 0},
		{"projectile.damage", c.Projectile.Damage > 0},
		{"projectile.cullHalfWidth", c.Projectile.CullHalfWidth > 0},
		{"projectile.cullHalfHeight", c.Projectile.CullHalfHeight > 0},
		{"enemy.width", c.Enemy.Width > 0},
		{"enemy.height", c.Enemy.Height > 0},
		{"enemy.speed", c.Enemy.Speed >= 0},
		{"enemy.patrolOffset", c.Enemy.PatrolOffset >= 0},
		{"enemy.health", c.Enemy.Health > 0},
		{"enemy.killBonus", c.Enemy.KillBonus >= 0},
		{"coin.width", c.Coin.Width > 0},
		{"coin.height", c.Coin.Height > 0},
		{"coin.value", c.Coin.Value >= 0},
	}

	var errs []error
	for _, chk := range checks {
		if !chk.ok {
			errs = append(errs, fmt.Errorf("%w: %s out of range", ErrInvalidConfig, chk.name))
		}
	}
	return errors.Join(errs...)
}
