package metrics

// AgentConfig identifies the searcher configuration driving agent 0.
type AgentConfig struct {
	ID         int
	Searcher   string
	Depth      int
	Evaluation string
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
