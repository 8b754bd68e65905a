package searcher

import (
	"testing"

	"pursuit/experiments/metrics"
	"pursuit/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type constructor struct {
	name string
	new  func(...Option) Searcher
}

func allSearchers() []constructor {
	return []constructor{
		{"minimax", func(o ...Option) Searcher { return NewMinimax(o...) }},
		{"alphabeta", func(o ...Option) Searcher { return NewAlphaBeta(o...) }},
		{"expectimax", func(o ...Option) Searcher { return NewExpectimax(o...) }},
	}
}

func TestDecide(t *testing.T) {
	t.Run("choosing the greater of two single-response branches", func(t *testing.T) {
		for _, c := range allSearchers() {
			root, _ := newTreeGame(node(node(leaf(3)), node(leaf(5))), 2)
			s := c.new(WithDepth(1), WithEvaluationFn(evaluateTree))

			action, value := s.Decide(root)

			require.Equal(t, game.Action("1"), action, "%s should choose B", c.name)
			require.Equal(t, 5.0, value, "%s should back up 5", c.name)
		}
	})

	t.Run("returning the first action among equal values", func(t *testing.T) {
		for _, c := range allSearchers() {
			root, _ := newTreeGame(node(node(leaf(4)), node(leaf(4)), node(leaf(4))), 2)
			s := c.new(WithDepth(1), WithEvaluationFn(evaluateTree))

			require.Equal(t, game.Action("0"), s.FindNextMove(root), "%s should keep the first maximum", c.name)
		}
	})

	t.Run("stopping when agent 0 has no actions", func(t *testing.T) {
		for _, c := range allSearchers() {
			root, _ := newTreeGame(leaf(9), 2)
			s := c.new(WithEvaluationFn(evaluateTree))

			action, value := s.Decide(root)

			require.Equal(t, game.Stop, action, "%s should stop", c.name)
			require.Equal(t, 9.0, value, "%s should evaluate the root", c.name)
		}
	})

	t.Run("minimizing against adversaries but averaging over chance", func(t *testing.T) {
		build := func() *treeState {
			root, _ := newTreeGame(node(node(leaf(3), leaf(9)), node(leaf(5), leaf(5))), 2)
			return root
		}

		action, value := NewMinimax(WithDepth(1), WithEvaluationFn(evaluateTree)).Decide(build())
		require.Equal(t, game.Action("1"), action, "Minimax should avoid the worst case of 3")
		require.Equal(t, 5.0, value, "Minimax should back up the minimum")

		action, value = NewExpectimax(WithDepth(1), WithEvaluationFn(evaluateTree)).Decide(build())
		require.Equal(t, game.Action("0"), action, "Expectimax should prefer the mean of 6")
		require.Equal(t, 6.0, value, "Expectimax should back up the mean")
	})
}

func TestTurnOrder(t *testing.T) {
	t.Run("counting a ply as one full round of all agents", func(t *testing.T) {
		// Three agents at depth 1: agent 0, ghost 1, ghost 2, then the cutoff.
		// The deeper values must never be reached.
		deep := func(v float64) *treeState { return &treeState{value: v, children: []*treeState{leaf(1000)}} }
		root, visits := newTreeGame(node(
			node(node(deep(2), deep(6)), node(deep(4))),
			node(node(deep(3)), node(deep(7), deep(1))),
		), 3)

		action, value := NewMinimax(WithDepth(1), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("0"), action, "Should pick the branch worth min(2, 4)")
		require.Equal(t, 2.0, value, "Should evaluate at the round boundary")
		for _, id := range *visits {
			require.LessOrEqual(t, len(id), len("r.0.0.0"), "Should never expand past the third agent: %s", id)
		}
	})

	t.Run("searching two rounds at depth 2", func(t *testing.T) {
		// Two agents at depth 2: agent 0, ghost, agent 0, ghost, then the cutoff
		root, _ := newTreeGame(node(
			node(node(node(leaf(1)), node(leaf(8)))),
			node(node(node(leaf(6)), node(leaf(2)))),
		), 2)

		action, value := NewMinimax(WithDepth(2), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("0"), action, "Should look two rounds ahead")
		require.Equal(t, 8.0, value, "Should back up agent 0's second move")
	})

	t.Run("evaluating won and lost states without expanding them", func(t *testing.T) {
		won := &treeState{value: 50, win: true, children: []*treeState{leaf(-100)}}
		lost := &treeState{value: -50, lose: true, children: []*treeState{leaf(100)}}
		root, visits := newTreeGame(node(node(won), node(lost)), 2)

		action, value := NewAlphaBeta(WithDepth(3), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("0"), action, "Should take the win")
		require.Equal(t, 50.0, value, "Should use the terminal evaluation")
		require.NotContains(t, *visits, "r.0.0.0", "Should not expand a won state")
		require.NotContains(t, *visits, "r.1.0.0", "Should not expand a lost state")
	})

	t.Run("evaluating an adversary without actions", func(t *testing.T) {
		stuck := &treeState{value: 7}
		root, _ := newTreeGame(node(stuck, node(leaf(3))), 2)

		action, value := NewMinimax(WithDepth(2), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("0"), action, "Should treat the stuck ghost as a leaf")
		require.Equal(t, 7.0, value, "Should evaluate the stuck ghost's state")
	})

	t.Run("searching a single agent world", func(t *testing.T) {
		root, _ := newTreeGame(node(node(leaf(1), leaf(4)), node(leaf(3))), 1)

		action, value := NewMinimax(WithDepth(2), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("0"), action, "Should keep maximizing on agent 0's turns")
		require.Equal(t, 4.0, value, "Should look two moves ahead")
	})
}

func TestAlphaBetaPruning(t *testing.T) {
	t.Run("pruning a dominated sibling", func(t *testing.T) {
		build := func() (*treeState, *[]string) {
			return newTreeGame(node(node(leaf(3), leaf(4)), node(leaf(2), leaf(7), leaf(8))), 2)
		}
		minimaxMetrics, alphaBetaMetrics := metrics.NewCollector(), metrics.NewCollector()

		root, minimaxVisits := build()
		wantAction, wantValue := NewMinimax(WithDepth(1), WithEvaluationFn(evaluateTree), WithMetrics(minimaxMetrics)).Decide(root)
		root, alphaBetaVisits := build()
		gotAction, gotValue := NewAlphaBeta(WithDepth(1), WithEvaluationFn(evaluateTree), WithMetrics(alphaBetaMetrics)).Decide(root)

		require.Equal(t, wantAction, gotAction, "Should choose the minimax action")
		require.Equal(t, wantValue, gotValue, "Should back up the minimax value")
		require.Equal(t, 5, minimaxMetrics.Complete().Leaves, "Minimax should evaluate every leaf")
		require.Equal(t, 3, alphaBetaMetrics.Complete().Leaves, "Should skip the leaves after 2 < alpha")
		require.Equal(t, 1, alphaBetaMetrics.Complete().Prunes, "Should cut off once")
		require.NotContains(t, *alphaBetaVisits, "r.1.1", "Should not generate the pruned sibling")
		require.Subset(t, *minimaxVisits, *alphaBetaVisits, "Should visit a subset of minimax's nodes")
	})

	t.Run("keeping equal values unpruned", func(t *testing.T) {
		// 3 == alpha is not a cutoff under strict inequality
		root, visits := newTreeGame(node(node(leaf(3)), node(leaf(3), leaf(9))), 2)

		action, _ := NewAlphaBeta(WithDepth(1), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("0"), action, "Should keep the first of equal actions")
		require.Contains(t, *visits, "r.1.1", "Should expand past a value equal to alpha")
	})
}

func randomTree(rng *rand.Rand, level, height int) *treeState {
	s := &treeState{value: float64(rng.Intn(21) - 10)}
	if level == height || (level > 0 && rng.Intn(6) == 0) {
		return s
	}
	if level > 0 {
		switch rng.Intn(12) {
		case 0:
			s.win = true
		case 1:
			s.lose = true
		}
	}
	for i := 0; i < 1+rng.Intn(3); i++ {
		s.children = append(s.children, randomTree(rng, level+1, height))
	}
	return s
}

func TestSearchProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for trial := 0; trial < 300; trial++ {
		numAgents := 2 + rng.Intn(3)
		depth := 1 + rng.Intn(2)
		seed := rng.Uint64()
		build := func() (*treeState, *[]string) {
			return newTreeGame(randomTree(rand.New(rand.NewSource(seed)), 0, depth*numAgents+1), numAgents)
		}

		root, minimaxVisits := build()
		minimaxMetrics := metrics.NewCollector()
		minimaxAction, minimaxValue := NewMinimax(WithDepth(depth), WithEvaluationFn(evaluateTree), WithMetrics(minimaxMetrics)).Decide(root)
		wantAction, wantValue := referenceDecision(root, depth, false)
		require.Equal(t, wantAction, minimaxAction, "trial %d: minimax action should match plain recursion", trial)
		require.Equal(t, wantValue, minimaxValue, "trial %d: minimax value should match plain recursion", trial)

		root, alphaBetaVisits := build()
		alphaBetaMetrics := metrics.NewCollector()
		alphaBetaAction, alphaBetaValue := NewAlphaBeta(WithDepth(depth), WithEvaluationFn(evaluateTree), WithMetrics(alphaBetaMetrics)).Decide(root)
		require.Equal(t, minimaxAction, alphaBetaAction, "trial %d: pruning should not change the action", trial)
		require.Equal(t, minimaxValue, alphaBetaValue, "trial %d: pruning should not change the value", trial)
		require.Subset(t, *minimaxVisits, *alphaBetaVisits, "trial %d: pruning should only skip nodes", trial)
		require.LessOrEqual(t, alphaBetaMetrics.Complete().Leaves, minimaxMetrics.Complete().Leaves,
			"trial %d: pruning should not evaluate more leaves", trial)

		root, _ = build()
		expectimaxAction, expectimaxValue := NewExpectimax(WithDepth(depth), WithEvaluationFn(evaluateTree)).Decide(root)
		wantAction, wantValue = referenceDecision(root, depth, true)
		require.Equal(t, wantAction, expectimaxAction, "trial %d: expectimax action should match plain recursion", trial)
		require.InDelta(t, wantValue, expectimaxValue, 1e-9, "trial %d: chance nodes should average their children", trial)
	}
}

func TestOptions(t *testing.T) {
	t.Run("falling back to defaults on invalid values", func(t *testing.T) {
		s := NewMinimax(WithDepth(-1), WithEvaluationFn(nil), WithMetrics(nil))

		require.Equal(t, 2, s.depth, "Should keep the default depth")
		require.NotNil(t, s.evaluate, "Should keep the default evaluation")
		require.NotNil(t, s.metrics, "Should keep the dummy collector")
	})

	t.Run("evaluating the root's children at depth 0", func(t *testing.T) {
		root, _ := newTreeGame(node(&treeState{value: 1, children: []*treeState{leaf(9)}}, leaf(2)), 2)

		action, value := NewMinimax(WithDepth(0), WithEvaluationFn(evaluateTree)).Decide(root)

		require.Equal(t, game.Action("1"), action, "Should compare the children's static values")
		require.Equal(t, 2.0, value, "Should not look past the children")
	})

	t.Run("recording metrics per decision", func(t *testing.T) {
		collector := metrics.NewCollector()
		s := NewExpectimax(WithDepth(1), WithEvaluationFn(evaluateTree), WithMetrics(collector))
		root, _ := newTreeGame(node(node(leaf(1), leaf(2)), node(leaf(3))), 2)

		s.Decide(root)
		got := s.Metrics()

		require.Equal(t, "expectimax", got.Searcher, "Should name the searcher")
		require.Equal(t, 1, got.Depth, "Should record the depth")
		require.Equal(t, 3, got.Nodes, "Should count the root and both ghost nodes")
		require.Equal(t, 3, got.Leaves, "Should count every evaluated leaf")
	})
}

func TestNew(t *testing.T) {
	t.Run("building every registered searcher", func(t *testing.T) {
		for _, name := range Names() {
			s, err := New(name, WithDepth(1))

			require.NoError(t, err, "Should know %s", name)
			require.Equal(t, name, s.Name(), "Should build %s", name)
		}
		require.Equal(t, []string{"alphabeta", "expectimax", "minimax"}, Names(), "Should list sorted names")
	})

	t.Run("rejecting an unknown name", func(t *testing.T) {
		_, err := New("mcts")

		require.ErrorContains(t, err, `unknown searcher "mcts"`, "Should name the bad searcher")
	})
}
