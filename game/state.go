// Package game defines the contract between the adversarial search engine
// and a multi-agent grid world, and the evaluation functions scoring it.
package game

// PacmanIndex is the agent controlled by the search; it maximizes.
const PacmanIndex = 0

// GhostState is an adversary's position and how many more of its own moves
// it stays scared for.
type GhostState struct {
	Position    Position
	ScaredTimer int
}

func (g GhostState) IsScared() bool {
	return g.ScaredTimer > 0
}

// State is an immutable snapshot of the world. GenerateNextState always
// returns a new value and leaves the receiver untouched.
type State interface {
	NumAgents() int
	// AvailableActions lists the legal actions of agent in a fixed order; it may be empty.
	AvailableActions(agent int) []Action
	GenerateNextState(agent int, action Action) State
	IsWin() bool
	IsLose() bool

	PacmanPosition() Position
	Food() []Position
	GhostStates() []GhostState
	Capsules() []Position
	Score() float64
}
