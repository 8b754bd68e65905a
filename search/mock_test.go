package search

import (
	"fmt"
	"math"
)

type edge struct {
	to   string
	cost float64
}

// graphProblem is a hand-built directed graph. Actions are labelled "from>to".
type graphProblem struct {
	start      string
	goals      map[string]bool
	edges      map[string][]edge
	expansions map[string]int
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	g := &graphProblem{
		start:      start,
		goals:      map[string]bool{},
		edges:      map[string][]edge{},
		expansions: map[string]int{},
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *graphProblem) link(from, to string, cost float64) *graphProblem {
	g.edges[from] = append(g.edges[from], edge{to: to, cost: cost})
	return g
}

func (g *graphProblem) InitialState() string {
	return g.start
}

func (g *graphProblem) IsGoalState(state string) bool {
	return g.goals[state]
}

func (g *graphProblem) NextStates(state string) []Successor[string, string] {
	g.expansions[state]++
	var successors []Successor[string, string]
	for _, e := range g.edges[state] {
		successors = append(successors, Successor[string, string]{
			State:  e.to,
			Action: fmt.Sprintf("%s>%s", state, e.to),
			Cost:   e.cost,
		})
	}
	return successors
}

func (g *graphProblem) CostOfActions(actions []string) float64 {
	_, cost, ok := g.walk(actions)
	if !ok {
		return math.Inf(1)
	}
	return cost
}

// walk follows actions from the start, reporting whether each one is a real edge.
func (g *graphProblem) walk(actions []string) (end string, cost float64, ok bool) {
	state := g.start
	for _, action := range actions {
		found := false
		for _, e := range g.edges[state] {
			if action == fmt.Sprintf("%s>%s", state, e.to) {
				state = e.to
				cost += e.cost
				found = true
				break
			}
		}
		if !found {
			return state, 0, false
		}
	}
	return state, cost, true
}

// bruteForceCost enumerates every simple path from the start and returns the
// cheapest cost of reaching a goal.
func (g *graphProblem) bruteForceCost() (float64, bool) {
	best := math.Inf(1)
	onPath := map[string]bool{}
	var visit func(state string, cost float64)
	visit = func(state string, cost float64) {
		if g.goals[state] {
			best = math.Min(best, cost)
			return
		}
		onPath[state] = true
		for _, e := range g.edges[state] {
			if !onPath[e.to] {
				visit(e.to, cost+e.cost)
			}
		}
		onPath[state] = false
	}
	visit(g.start, 0)
	return best, !math.IsInf(best, 1)
}

type partialProblem struct {
	UnimplementedProblem[string, string]
}

func (partialProblem) InitialState() string { return "S" }
