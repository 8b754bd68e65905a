package searcher

import (
	"fmt"
	"strconv"

	"pursuit/game"
)

// treeState is a hand-built game tree. The action to reach children[i] is "i"
// whichever agent is acting, and leaves are valued by evaluateTree.
type treeState struct {
	id        string
	value     float64
	win       bool
	lose      bool
	children  []*treeState
	numAgents int
	visits    *[]string
}

func leaf(value float64) *treeState {
	return &treeState{value: value}
}

func node(children ...*treeState) *treeState {
	return &treeState{children: children}
}

// newTreeGame labels every node by its path and shares one visit log.
func newTreeGame(root *treeState, numAgents int) (*treeState, *[]string) {
	visits := &[]string{}
	var label func(s *treeState, id string)
	label = func(s *treeState, id string) {
		s.id = id
		s.numAgents = numAgents
		s.visits = visits
		for i, child := range s.children {
			label(child, fmt.Sprintf("%s.%d", id, i))
		}
	}
	label(root, "r")
	return root, visits
}

func evaluateTree(s game.State) float64 {
	return s.(*treeState).value
}

func (s *treeState) NumAgents() int { return s.numAgents }

func (s *treeState) AvailableActions(int) []game.Action {
	actions := make([]game.Action, 0, len(s.children))
	for i := range s.children {
		actions = append(actions, game.Action(strconv.Itoa(i)))
	}
	return actions
}

func (s *treeState) GenerateNextState(_ int, action game.Action) game.State {
	i, err := strconv.Atoi(string(action))
	if err != nil {
		panic(err)
	}
	child := s.children[i]
	*s.visits = append(*s.visits, child.id)
	return child
}

func (s *treeState) IsWin() bool                    { return s.win }
func (s *treeState) IsLose() bool                   { return s.lose }
func (s *treeState) PacmanPosition() game.Position  { return game.Position{} }
func (s *treeState) Food() []game.Position          { return nil }
func (s *treeState) GhostStates() []game.GhostState { return nil }
func (s *treeState) Capsules() []game.Position      { return nil }
func (s *treeState) Score() float64                 { return s.value }

// reference recomputes a subtree's value by plain recursion. Adversaries
// minimize, or average when chance is set.
func reference(s *treeState, agent, ply, depth int, chance bool) float64 {
	if s.win || s.lose || ply == depth || len(s.children) == 0 {
		return s.value
	}
	next, nextPly := (agent+1)%s.numAgents, ply
	if next == 0 {
		nextPly++
	}
	values := make([]float64, len(s.children))
	for i, child := range s.children {
		values[i] = reference(child, next, nextPly, depth, chance)
	}

	result := values[0]
	switch {
	case agent == 0:
		for _, v := range values {
			result = max(result, v)
		}
	case chance:
		result = 0
		for _, v := range values {
			result += v
		}
		result /= float64(len(values))
	default:
		for _, v := range values {
			result = min(result, v)
		}
	}
	return result
}

func referenceDecision(root *treeState, depth int, chance bool) (game.Action, float64) {
	agent, ply := 1%root.numAgents, 0
	if agent == 0 {
		ply = 1
	}
	bestAction, bestValue := game.Stop, negInf
	for i, child := range root.children {
		if v := reference(child, agent, ply, depth, chance); v > bestValue {
			bestAction, bestValue = game.Action(strconv.Itoa(i)), v
		}
	}
	return bestAction, bestValue
}
