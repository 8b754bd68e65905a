package metrics

import "gonum.org/v1/gonum/stat"

// Summary aggregates the games played by one agent configuration.
type Summary struct {
	Games       int
	Wins        int
	WinRate     float64
	MeanScore   float64
	StdDevScore float64
	MeanMoves   float64
}

func Summarize(records []GameRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(records))
	moves := make([]float64, len(records))
	wins := 0
	for i, record := range records {
		scores[i] = record.Score
		moves[i] = float64(record.TotalMoves)
		if record.Won {
			wins++
		}
	}

	summary := Summary{
		Games:     len(records),
		Wins:      wins,
		WinRate:   float64(wins) / float64(len(records)),
		MeanScore: stat.Mean(scores, nil),
		MeanMoves: stat.Mean(moves, nil),
	}
	if len(records) > 1 { // Sample deviation is undefined for one game
		summary.StdDevScore = stat.StdDev(scores, nil)
	}
	return summary
}
