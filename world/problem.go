package world

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"
	"pursuit/game"
	"pursuit/search"
)

// PositionProblem is the problem of walking from a start cell to a goal cell.
// Its start, goal and costs never change; only the expansion counter grows.
type PositionProblem struct {
	layout   *Layout
	start    game.Position
	goal     game.Position
	cost     func(game.Position) float64
	expanded int // Summed over every search run on this value
}

type ProblemOption func(p *PositionProblem)

func WithStart(start game.Position) ProblemOption {
	return func(p *PositionProblem) {
		p.start = start
	}
}

func WithGoal(goal game.Position) ProblemOption {
	return func(p *PositionProblem) {
		p.goal = goal
	}
}

// WithCostFn prices each step by the cell it enters.
func WithCostFn(cost func(game.Position) float64) ProblemOption {
	return func(p *PositionProblem) {
		if cost != nil {
			p.cost = cost
		}
	}
}

// NewPositionProblem starts at the layout's pacman cell. Without WithGoal the
// layout must contain exactly one food, which becomes the goal.
func NewPositionProblem(layout *Layout, options ...ProblemOption) (*PositionProblem, error) {
	p := &PositionProblem{
		layout: layout,
		start:  layout.PacmanStart,
		goal:   game.Position{X: -1, Y: -1},
		cost:   func(game.Position) float64 { return 1 },
	}
	if len(layout.Food) == 1 {
		p.goal = layout.Food[0]
	}
	for _, option := range options {
		option(p)
	}
	if p.layout.IsWall(p.goal) {
		return nil, errors.New("position problem needs a goal: pass WithGoal or use a layout with a single food")
	}
	return p, nil
}

func (p *PositionProblem) InitialState() game.Position {
	return p.start
}

func (p *PositionProblem) IsGoalState(state game.Position) bool {
	return state == p.goal
}

func (p *PositionProblem) NextStates(state game.Position) []search.Successor[game.Position, game.Action] {
	p.expanded++
	var successors []search.Successor[game.Position, game.Action]
	for _, action := range p.layout.Moves(state) {
		next := state.Move(action)
		successors = append(successors, search.Successor[game.Position, game.Action]{
			State:  next,
			Action: action,
			Cost:   p.cost(next),
		})
	}
	return successors
}

// CostOfActions returns +Inf when the sequence walks into a wall.
func (p *PositionProblem) CostOfActions(actions []game.Action) float64 {
	state := p.start
	total := 0.0
	for _, action := range actions {
		state = state.Move(action)
		if p.layout.IsWall(state) {
			return math.Inf(1)
		}
		total += p.cost(state)
	}
	return total
}

func (p *PositionProblem) Goal() game.Position {
	return p.goal
}

// Expanded returns how many states have been expanded by every search run on
// this problem so far. Build a fresh problem to count a single search.
func (p *PositionProblem) Expanded() int {
	return p.expanded
}

type goalProblem interface {
	Goal() game.Position
}

// ManhattanHeuristic is admissible for unit step costs.
func ManhattanHeuristic(state game.Position, problem search.Problem[game.Position, game.Action]) float64 {
	p, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	return float64(game.ManhattanDistance(state, p.Goal()))
}

func EuclideanHeuristic(state game.Position, problem search.Problem[game.Position, game.Action]) float64 {
	p, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	goal := p.Goal()
	return math.Hypot(float64(state.X-goal.X), float64(state.Y-goal.Y))
}

var heuristics = map[string]search.Heuristic[game.Position, game.Action]{
	"null":      search.NullHeuristic[game.Position, game.Action],
	"manhattan": ManhattanHeuristic,
	"euclidean": EuclideanHeuristic,
}

// LookupHeuristic returns the heuristic configured under name.
func LookupHeuristic(name string) (search.Heuristic[game.Position, game.Action], error) {
	heuristic, ok := heuristics[name]
	if !ok {
		names := maps.Keys(heuristics)
		slices.Sort(names)
		return nil, fmt.Errorf("unknown heuristic %q (want one of %v)", name, names)
	}
	return heuristic, nil
}
