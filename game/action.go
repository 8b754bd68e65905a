package game

// Action identifies a move on the grid.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// Directions lists the moving actions in the order successors are generated.
var Directions = []Action{North, South, East, West}

// Vector returns the displacement of the action. Rows grow southwards.
func (a Action) Vector() (dx, dy int) {
	switch a {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction; Stop reverses to itself.
func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return a
}
