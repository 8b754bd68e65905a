package engine

import (
	"slices"
	"time"

	"pursuit/agent"
	"pursuit/experiments/metrics"
	"pursuit/game"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	State    game.State
	Agents   []agent.Agent // Indexed by agent
	MaxMoves int           // Cap on agent 0 moves
}

// LocalEngine runs every agent in-process, one turn each in index order.
func LocalEngine(state game.State, agents []agent.Agent, maxMoves int) *Local {
	if len(agents) != state.NumAgents() {
		panic("number of agents does not match the game")
	}
	if maxMoves <= 0 {
		panic("max moves must be positive")
	}
	return &Local{
		State:    state,
		Agents:   agents,
		MaxMoves: maxMoves,
	}
}

func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game starting with %d agents", len(e.Agents))

	rounds := 0
	for !e.over() && rounds < e.MaxMoves {
		for index := 0; index < len(e.Agents) && !e.over(); index++ {
			action, searchMetric := e.Agents[index].GetAction(e.State)
			action = e.legalize(index, action)

			e.State = e.State.GenerateNextState(index, action)
			gameMetric.TotalMoves++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         gameMetric.TotalMoves,
				Agent:        index,
				Action:       string(action),
				SearchMetric: searchMetric,
			})
		}
		rounds++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = e.State.IsWin()
	gameMetric.Lost = e.State.IsLose()
	gameMetric.Score = e.State.Score()

	if e.over() {
		log.Info().Msgf("game over after %d rounds: %s with score %g", rounds, gameMetric.Outcome(), gameMetric.Score)
	} else {
		log.Info().Msgf("stopped after %d rounds with score %g", rounds, gameMetric.Score)
	}
	return gameMetric, moveMetrics
}

func (e *Local) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}

// legalize replaces an illegal choice with the agent's first legal action.
func (e *Local) legalize(index int, action game.Action) game.Action {
	legal := e.State.AvailableActions(index)
	if slices.Contains(legal, action) {
		return action
	}
	if len(legal) == 0 {
		panic("no legal actions in a running game")
	}
	log.Warn().Msgf("agent %d chose illegal action %s, playing %s instead", index, action, legal[0])
	return legal[0]
}
