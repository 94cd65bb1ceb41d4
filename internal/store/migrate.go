package store

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Direction selects which half of each migration pair is applied.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection converts a CLI argument into a Direction.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	default:
		return "", fmt.Errorf("unknown migration direction %q", raw)
	}
}

// MigrationFiles lists the migration files for dir inside fsys in the order
// they must run: ascending for up, descending for down.
func MigrationFiles(fsys fs.FS, dir string, direction Direction) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*_*."+string(direction)+".sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(matches)
	if direction == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	}
	return matches, nil
}

// Migrate executes every migration file for direction. A file may hold
// several statements; it is sent without arguments as one exec.
func (s *Store) Migrate(ctx context.Context, fsys fs.FS, dir string, direction Direction) error {
	files, err := MigrationFiles(fsys, dir, direction)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s migrations found in %s", direction, dir)
	}

	for _, name := range files {
		payload, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := s.pool.Exec(ctx, string(payload)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		s.logger.Info("migration applied", zap.String("file", name), zap.String("direction", string(direction)))
	}
	return nil
}
