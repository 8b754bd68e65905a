package experiments

import (
	"context"
	"fmt"

	"pursuit/agent"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher"
	"pursuit/world"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Config describes a batch of games: every agent configuration plays Games
// games on Layout, game i against ghosts seeded with Seed+i.
type Config struct {
	Name       string
	Layout     string
	Games      int
	Seed       uint64
	MaxMoves   int
	Agents     []metrics.AgentConfig
	OutputDir  string // CSV root, skipped when empty
	SQLitePath string // Skipped when empty
}

// DefaultAgents configures every registered searcher alike.
func DefaultAgents(depth int, evaluation string) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for i, name := range searcher.Names() {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Searcher: name, Depth: depth, Evaluation: evaluation})
	}
	return configs
}

type Result struct {
	RunID     string
	Dir       string // Where the CSV files went, if anywhere
	Games     []metrics.GameRecord
	Summaries map[int]metrics.Summary // By AgentConfig.ID
}

func Run(ctx context.Context, config Config) (Result, error) {
	if config.Games <= 0 {
		config.Games = meta.GAMES
	}
	if config.MaxMoves <= 0 {
		config.MaxMoves = meta.MAX_MOVES
	}
	if config.Name == "" {
		config.Name = "experiment"
	}
	layout, err := world.LoadLayout(config.Layout)
	if err != nil {
		return Result{}, err
	}

	var store *metrics.SQLiteStore
	if config.SQLitePath != "" {
		store = metrics.NewSQLiteStore(config.SQLitePath)
		if err := store.Init(ctx); err != nil {
			return Result{}, fmt.Errorf("failed to open experiment store: %w", err)
		}
		defer store.Close()
	}

	result := Result{RunID: uuid.NewString(), Summaries: map[int]metrics.Summary{}}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment %s on %s...", config.Name, result.RunID, layout.Name)
	if store != nil {
		if err := store.SaveAgentConfigs(ctx, result.RunID, config.Agents); err != nil {
			return Result{}, err
		}
	}

	for ci, agentConfig := range config.Agents {
		log.Info().Msgf("starting configuration %d of %d: %+v", ci+1, len(config.Agents), agentConfig)

		records := []metrics.GameRecord{}
		for i := 0; i < config.Games; i++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			seed := config.Seed + uint64(i)
			gameMetric, moveMetrics, err := runGame(layout, agentConfig, seed, config.MaxMoves)
			if err != nil {
				return Result{}, err
			}

			record := metrics.GameRecord{ID: len(result.Games) + 1, Agent: agentConfig.ID, GameMetric: gameMetric}
			moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
			for _, mm := range moveMetrics {
				moves = append(moves, metrics.MoveRecord{Game: record.ID, MoveMetric: mm})
			}
			if store != nil {
				if err := store.SaveGame(ctx, result.RunID, record, moves); err != nil {
					return Result{}, err
				}
			}
			records = append(records, record)
			result.Games = append(result.Games, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().Msgf("configuration %d game %d of %d: %s with score %g", ci+1, i+1, config.Games, gameMetric.Outcome(), gameMetric.Score)
		}

		summary := metrics.Summarize(records)
		result.Summaries[agentConfig.ID] = summary
		log.Info().Msgf("configuration %d won %d of %d, mean score %.1f (sd %.1f)",
			ci+1, summary.Wins, summary.Games, summary.MeanScore, summary.StdDevScore)
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	if config.OutputDir != "" {
		dir, err := writeCSV(config, result.Games, moveRecords)
		if err != nil {
			return Result{}, err
		}
		result.Dir = dir
	}
	return result, nil
}

func writeCSV(config Config, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays one game: agent 0 searches, every ghost walks at random.
func runGame(layout *world.Layout, config metrics.AgentConfig, seed uint64, maxMoves int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := NewGame(layout, config, seed, maxMoves)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	gameMetric, moveMetrics := e.Run()
	gameMetric.Layout = layout.Name
	gameMetric.Seed = seed
	return gameMetric, moveMetrics, nil
}

// NewGame sets up the game an experiment plays with seed: agent 0 searches
// as configured and the ghosts come from agent.NewGhosts.
func NewGame(layout *world.Layout, config metrics.AgentConfig, seed uint64, maxMoves int) (*engine.Local, error) {
	s, err := createSearcher(config)
	if err != nil {
		return nil, err
	}

	state := world.NewWorld(layout)
	agents := append([]agent.Agent{agent.NewSearchAgent(s)}, agent.NewGhosts(state.NumAgents(), seed)...)
	return engine.LocalEngine(state, agents, maxMoves), nil
}

func createSearcher(config metrics.AgentConfig) (searcher.Searcher, error) {
	evaluation := config.Evaluation
	if evaluation == "" {
		evaluation = meta.EVALUATION
	}
	evaluate, err := game.LookupEvaluation(evaluation)
	if err != nil {
		return nil, err
	}
	return searcher.New(config.Searcher,
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(metrics.NewCollector()),
	)
}
