package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done for one decision.
type SearchMetric struct {
	Searcher string
	Depth    int
	Duration time.Duration
	Nodes    int // Expanded internal nodes
	Leaves   int // Evaluation function calls
	Prunes   int // Alpha-beta cutoffs
}

type MoveMetric struct {
	Step   int
	Agent  int // Agent index
	Action string
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Seed       uint64
	Won        bool
	Lost       bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Outcome names how the game ended.
func (g GameMetric) Outcome() string {
	switch {
	case g.Won:
		return "win"
	case g.Lost:
		return "lose"
	}
	return "cutoff"
}

type Collector interface {
	Start(searcher string, depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	searcher  string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(searcher string, depth int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher: m.searcher,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Prunes:   int(m.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) AddPrune()                        {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
