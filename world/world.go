package world

import (
	"fmt"
	"slices"
	"strings"

	"pursuit/game"
	"pursuit/meta"
)

const (
	timePenalty   = 1.0
	foodReward    = 10.0
	winReward     = 500.0
	ghostReward   = 200.0
	losePenalty   = 500.0
	pacmanSymbol  = "P"
	ghostSymbol   = "G"
	scaredSymbol  = "S"
	foodSymbol    = "."
	capsuleSymbol = "o"
)

// World is an immutable game.State over a Layout. Agent 0 is pacman and
// agents 1..N-1 are the ghosts in layout order.
type World struct {
	layout     *Layout
	pacman     game.Position
	ghosts     []game.GhostState
	food       []game.Position
	capsules   []game.Position
	score      float64
	win        bool
	lose       bool
	scaredTime int
}

type Option func(w *World)

// WithScaredTime sets how many of its own moves a ghost stays scared after
// pacman eats a capsule.
func WithScaredTime(moves int) Option {
	return func(w *World) {
		if moves > 0 {
			w.scaredTime = moves
		}
	}
}

func NewWorld(layout *Layout, options ...Option) *World {
	w := &World{
		layout:     layout,
		pacman:     layout.PacmanStart,
		ghosts:     make([]game.GhostState, len(layout.GhostStarts)),
		food:       slices.Clone(layout.Food),
		capsules:   slices.Clone(layout.Capsules),
		scaredTime: meta.SCARED_TIME,
	}
	for i, start := range layout.GhostStarts {
		w.ghosts[i] = game.GhostState{Position: start}
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *World) Layout() *Layout {
	return w.layout
}

func (w *World) NumAgents() int {
	return 1 + len(w.ghosts)
}

func (w *World) AvailableActions(agent int) []game.Action {
	if w.win || w.lose {
		return nil
	}
	if agent == game.PacmanIndex {
		return append(w.layout.Moves(w.pacman), game.Stop)
	}

	moves := w.layout.Moves(w.ghosts[agent-1].Position)
	if len(moves) == 0 { // Boxed in
		return []game.Action{game.Stop}
	}
	return moves
}

// GenerateNextState returns the world after agent takes action. It panics on
// an illegal action or once the game is over.
func (w *World) GenerateNextState(agent int, action game.Action) game.State {
	if w.win || w.lose {
		panic("cannot generate a successor of a finished game")
	}
	if !slices.Contains(w.AvailableActions(agent), action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := w.copy()
	if agent == game.PacmanIndex {
		next.movePacman(action)
	} else {
		next.moveGhost(agent-1, action)
	}
	return next
}

func (w *World) copy() *World {
	next := *w
	next.ghosts = slices.Clone(w.ghosts)
	return &next // food and capsules are replaced, never mutated
}

func (w *World) movePacman(action game.Action) {
	w.pacman = w.pacman.Move(action)
	w.score -= timePenalty

	if i := slices.Index(w.food, w.pacman); i >= 0 {
		w.food = slices.Delete(slices.Clone(w.food), i, i+1)
		w.score += foodReward
		if len(w.food) == 0 {
			w.score += winReward
			w.win = true
			return
		}
	}
	if i := slices.Index(w.capsules, w.pacman); i >= 0 {
		w.capsules = slices.Delete(slices.Clone(w.capsules), i, i+1)
		for g := range w.ghosts {
			w.ghosts[g].ScaredTimer = w.scaredTime
		}
	}
	for g := range w.ghosts {
		w.collide(g)
	}
}

func (w *World) moveGhost(ghost int, action game.Action) {
	state := &w.ghosts[ghost]
	state.Position = state.Position.Move(action)
	if state.ScaredTimer > 0 {
		state.ScaredTimer--
	}
	w.collide(ghost)
}

func (w *World) collide(ghost int) {
	if w.lose || w.ghosts[ghost].Position != w.pacman {
		return
	}
	if w.ghosts[ghost].IsScared() {
		w.score += ghostReward
		w.ghosts[ghost] = game.GhostState{Position: w.layout.GhostStarts[ghost]}
		return
	}
	w.score -= losePenalty
	w.lose = true
}

func (w *World) IsWin() bool {
	return w.win
}

func (w *World) IsLose() bool {
	return w.lose
}

func (w *World) PacmanPosition() game.Position {
	return w.pacman
}

func (w *World) Food() []game.Position {
	return slices.Clone(w.food)
}

func (w *World) GhostStates() []game.GhostState {
	return slices.Clone(w.ghosts)
}

func (w *World) Capsules() []game.Position {
	return slices.Clone(w.capsules)
}

func (w *World) Score() float64 {
	return w.score
}

// String draws the board, followed by the score.
func (w *World) String() string {
	cells := make([][]string, w.layout.Height)
	for y := range cells {
		cells[y] = make([]string, w.layout.Width)
		for x := range cells[y] {
			cells[y][x] = " "
			if w.layout.IsWall(game.Position{X: x, Y: y}) {
				cells[y][x] = string(wallCell)
			}
		}
	}
	for _, p := range w.food {
		cells[p.Y][p.X] = foodSymbol
	}
	for _, p := range w.capsules {
		cells[p.Y][p.X] = capsuleSymbol
	}
	cells[w.pacman.Y][w.pacman.X] = pacmanSymbol
	for _, g := range w.ghosts {
		symbol := ghostSymbol
		if g.IsScared() {
			symbol = scaredSymbol
		}
		cells[g.Position.Y][g.Position.X] = symbol
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Score: %g\n", w.score)
	return b.String()
}
