// Package world is a small grid pursuit game: text layouts, a concrete
// game.State, and a maze search problem over the same layouts.
package world

import (
	"fmt"
	"os"
	"strings"

	"pursuit/game"
)

const (
	wallCell    = '%'
	foodCell    = '.'
	capsuleCell = 'o'
	pacmanCell  = 'P'
	ghostCell   = 'G'
	emptyCell   = ' '
)

// Layout is the static part of a board. Positions are listed in row-major order.
type Layout struct {
	Name        string
	Width       int
	Height      int
	Food        []game.Position
	Capsules    []game.Position
	PacmanStart game.Position
	GhostStarts []game.Position
	walls       [][]bool // Indexed by row, then column
}

func ParseLayout(name, text string) (*Layout, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s is empty", name)
	}

	l := &Layout{Name: name, Width: len(rows[0]), Height: len(rows)}
	pacmen := 0
	for y, row := range rows {
		if len(row) != l.Width {
			return nil, fmt.Errorf("layout %s: row %d has width %d, want %d", name, y, len(row), l.Width)
		}
		walls := make([]bool, l.Width)
		for x, cell := range []byte(row) {
			p := game.Position{X: x, Y: y}
			switch cell {
			case wallCell:
				walls[x] = true
			case foodCell:
				l.Food = append(l.Food, p)
			case capsuleCell:
				l.Capsules = append(l.Capsules, p)
			case pacmanCell:
				l.PacmanStart = p
				pacmen++
			case ghostCell:
				l.GhostStarts = append(l.GhostStarts, p)
			case emptyCell:
			default:
				return nil, fmt.Errorf("layout %s: unknown cell %q at %d,%d", name, cell, x, y)
			}
		}
		l.walls = append(l.walls, walls)
	}
	if pacmen != 1 {
		return nil, fmt.Errorf("layout %s: want exactly one %c, found %d", name, pacmanCell, pacmen)
	}
	return l, nil
}

// LoadLayout returns the built-in layout called name, or parses the file at
// that path.
func LoadLayout(name string) (*Layout, error) {
	if text, ok := layouts[name]; ok {
		return ParseLayout(name, text)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %s: %w", name, err)
	}
	return ParseLayout(name, string(data))
}

// IsWall reports whether p is a wall; everything off the board counts as one.
func (l *Layout) IsWall(p game.Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.walls[p.Y][p.X]
}

// Moves returns the directions leading from p to a non-wall cell.
func (l *Layout) Moves(p game.Position) []game.Action {
	var moves []game.Action
	for _, direction := range game.Directions {
		if !l.IsWall(p.Move(direction)) {
			moves = append(moves, direction)
		}
	}
	return moves
}
