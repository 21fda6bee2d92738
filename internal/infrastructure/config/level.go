package config

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/tilerun/internal/domain/entity"
)

// LoadLevel reads a plain-text level file and parses it into a grid.
// A missing or unreadable file matches entity.ErrLevelUnreadable.
func (l *Loader) LoadLevel(name string, tileSize int) (*entity.Grid, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrLevelUnreadable, name, err)
	}
	defer f.Close()

	grid, err := entity.ParseGrid(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	return grid, nil
}

// LevelNames lists the .txt files at the root of the loader's filesystem.
func (l *Loader) LevelNames() ([]string, error) {
	names, err := fs.Glob(l.fsys, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	return names, nil
}
