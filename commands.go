package main

import (
	"context"
	"fmt"
	"strings"

	"pursuit/experiments"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/search"
	"pursuit/searcher"
	"pursuit/world"

	"github.com/gonuts/commander"
	"github.com/rs/zerolog/log"
)

// Every subcommand binds its own flag values.

type searchFlags struct {
	layout    string
	algorithm string
	heuristic string
}

type playFlags struct {
	layout     string
	searcher   string
	depth      int
	evaluation string
	seed       uint64
	maxMoves   int
	render     bool
}

type experimentFlags struct {
	layout     string
	searchers  string
	depth      int
	evaluation string
	games      int
	seed       uint64
	maxMoves   int
	outputDir  string
	sqlitePath string
}

func searchCmd() *commander.Command {
	f := &searchFlags{}
	cmd := newCommand("search", f.run)
	cmd.UsageLine = "search [options]"
	cmd.Short = "find a path to the single food of a maze"
	cmd.Long = `
find a path from pacman to the single food of a maze layout

	$ ./pursuit search -layout smallMaze -fn astar -heuristic manhattan

`
	cmd.Flag.StringVar(&f.layout, "layout", "tinyMaze", "Built-in layout name or layout file")
	cmd.Flag.StringVar(&f.algorithm, "fn", "bfs", "Search algorithm: dfs, bfs, ucs or astar")
	cmd.Flag.StringVar(&f.heuristic, "heuristic", "null", "A* heuristic: null, manhattan or euclidean")
	return cmd
}

func (f *searchFlags) run(cmd *commander.Command, args []string) error {
	layout, err := world.LoadLayout(f.layout)
	if err != nil {
		return err
	}
	problem, err := world.NewPositionProblem(layout)
	if err != nil {
		return err
	}
	find, err := search.Lookup[game.Position, game.Action](f.algorithm)
	if err != nil {
		return err
	}
	h, err := world.LookupHeuristic(f.heuristic)
	if err != nil {
		return err
	}

	path := find(problem, h)
	if len(path) == 0 && !problem.IsGoalState(problem.InitialState()) {
		return fmt.Errorf("no path to %v on %s", problem.Goal(), layout.Name)
	}
	log.Info().Msgf("%s found a path of %d actions with cost %g after expanding %d states",
		f.algorithm, len(path), problem.CostOfActions(path), problem.Expanded())

	actions := make([]string, len(path))
	for i, action := range path {
		actions[i] = string(action)
	}
	fmt.Println(strings.Join(actions, " "))
	return nil
}

func playCmd() *commander.Command {
	f := &playFlags{}
	cmd := newCommand("play", f.run)
	cmd.UsageLine = "play [options]"
	cmd.Short = "play one game with a searching pacman against random ghosts"
	cmd.Long = `
play one game with a searching pacman against random ghosts; the same seed
replays the experiment game played with it

	$ ./pursuit play -layout smallClassic -searcher expectimax -depth 2 -evaluation better

`
	cmd.Flag.StringVar(&f.layout, "layout", "smallClassic", "Built-in layout name or layout file")
	cmd.Flag.StringVar(&f.searcher, "searcher", "alphabeta", "Searcher: "+strings.Join(searcher.Names(), ", "))
	cmd.Flag.IntVar(&f.depth, "depth", meta.DEPTH, "Search depth in rounds")
	cmd.Flag.StringVar(&f.evaluation, "evaluation", meta.EVALUATION, "Evaluation: "+strings.Join(game.EvaluationNames(), ", "))
	cmd.Flag.Uint64Var(&f.seed, "seed", 1, "Ghost random seed")
	cmd.Flag.IntVar(&f.maxMoves, "moves", meta.MAX_MOVES, "Maximum pacman moves")
	cmd.Flag.BoolVar(&f.render, "render", false, "Print the final board")
	return cmd
}

func (f *playFlags) run(cmd *commander.Command, args []string) error {
	layout, err := world.LoadLayout(f.layout)
	if err != nil {
		return err
	}
	config := metrics.AgentConfig{ID: 1, Searcher: f.searcher, Depth: f.depth, Evaluation: f.evaluation}
	e, err := experiments.NewGame(layout, config, f.seed, f.maxMoves)
	if err != nil {
		return err
	}
	gameMetric, _ := e.Run()

	if f.render {
		fmt.Print(e.State)
	}
	fmt.Printf("%s: %s with score %g after %d moves\n", layout.Name, gameMetric.Outcome(), gameMetric.Score, gameMetric.TotalMoves)
	return nil
}

func experimentCmd() *commander.Command {
	f := &experimentFlags{}
	cmd := newCommand("experiment", f.run)
	cmd.UsageLine = "experiment [options]"
	cmd.Short = "compare searchers over many seeded games"
	cmd.Long = `
compare searchers over many seeded games and store the results

	$ ./pursuit experiment -layout smallClassic -games 10 -out results -db results/runs.db

`
	cmd.Flag.StringVar(&f.layout, "layout", "smallClassic", "Built-in layout name or layout file")
	cmd.Flag.StringVar(&f.searchers, "searchers", "", "Comma separated searchers, all when empty")
	cmd.Flag.IntVar(&f.depth, "depth", meta.DEPTH, "Search depth in rounds")
	cmd.Flag.StringVar(&f.evaluation, "evaluation", meta.EVALUATION, "Evaluation function")
	cmd.Flag.IntVar(&f.games, "games", meta.GAMES, "Games per searcher")
	cmd.Flag.Uint64Var(&f.seed, "seed", 1, "Seed of the first game")
	cmd.Flag.IntVar(&f.maxMoves, "moves", meta.MAX_MOVES, "Maximum pacman moves per game")
	cmd.Flag.StringVar(&f.outputDir, "out", "", "CSV output directory")
	cmd.Flag.StringVar(&f.sqlitePath, "db", "", "SQLite database file")
	return cmd
}

func (f *experimentFlags) configs() []metrics.AgentConfig {
	if f.searchers == "" {
		return experiments.DefaultAgents(f.depth, f.evaluation)
	}
	configs := []metrics.AgentConfig{}
	for i, name := range strings.Split(f.searchers, ",") {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Searcher: strings.TrimSpace(name), Depth: f.depth, Evaluation: f.evaluation})
	}
	return configs
}

func (f *experimentFlags) run(cmd *commander.Command, args []string) error {
	configs := f.configs()
	result, err := experiments.Run(context.Background(), experiments.Config{
		Name:       "searchers",
		Layout:     f.layout,
		Games:      f.games,
		Seed:       f.seed,
		MaxMoves:   f.maxMoves,
		Agents:     configs,
		OutputDir:  f.outputDir,
		SQLitePath: f.sqlitePath,
	})
	if err != nil {
		return err
	}

	fmt.Printf("run %s\n", result.RunID)
	for _, config := range configs {
		summary := result.Summaries[config.ID]
		fmt.Printf("%-10s won %d/%d  mean score %8.1f  sd %7.1f  mean moves %6.1f\n",
			config.Searcher, summary.Wins, summary.Games, summary.MeanScore, summary.StdDevScore, summary.MeanMoves)
	}
	if result.Dir != "" {
		fmt.Printf("csv written to %s\n", result.Dir)
	}
	return nil
}
