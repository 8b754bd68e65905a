package game

// Position is a grid cell; X is the column and Y the row.
type Position struct {
	X int
	Y int
}

// Move returns the cell reached by taking action from p, ignoring walls.
func (p Position) Move(action Action) Position {
	dx, dy := action.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// NearestDistance returns the Manhattan distance from p to the closest of
// targets, and false when targets is empty.
func NearestDistance(p Position, targets []Position) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	nearest := ManhattanDistance(p, targets[0])
	for _, target := range targets[1:] {
		if d := ManhattanDistance(p, target); d < nearest {
			nearest = d
		}
	}
	return nearest, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
