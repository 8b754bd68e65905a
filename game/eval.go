package game

// Evaluate scores a state from agent 0's perspective; larger is better.
type Evaluate func(State) float64

const (
	foodCountWeight     = -20.0
	foodProximityWeight = 10.0
	scaredGhostWeight   = 20.0
	dangerPenalty       = -500.0
	dangerRadius        = 2
	ghostWeight         = -5.0
	capsuleWeight       = 10.0
	capsuleCountWeight  = -20.0
)

// EvaluateScore is the environment's own score.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter adds hand-tuned food, ghost and capsule features to the
// environment's score. Distance terms are scaled by 1/(d+1).
func EvaluateBetter(s State) float64 {
	pos := s.PacmanPosition()
	food := s.Food()
	capsules := s.Capsules()

	score := s.Score()
	score += foodCountWeight * float64(len(food))
	if d, ok := NearestDistance(pos, food); ok {
		score += foodProximityWeight * inverse(d)
	}

	for _, ghost := range s.GhostStates() {
		d := ManhattanDistance(pos, ghost.Position)
		switch {
		case ghost.IsScared():
			score += scaredGhostWeight * inverse(d)
		case d < dangerRadius:
			score += dangerPenalty
		default:
			score += ghostWeight * inverse(d)
		}
	}

	if d, ok := NearestDistance(pos, capsules); ok {
		score += capsuleWeight * inverse(d)
	}
	score += capsuleCountWeight * float64(len(capsules))

	return score
}

func inverse(distance int) float64 {
	return 1.0 / float64(distance+1)
}
