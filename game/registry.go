package game

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

var evaluations = map[string]Evaluate{
	"score":                    EvaluateScore,
	"scoreEvaluationFunction":  EvaluateScore,
	"better":                   EvaluateBetter,
	"betterEvaluationFunction": EvaluateBetter,
}

// LookupEvaluation returns the evaluation function configured under name.
func LookupEvaluation(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation function %q (want one of %v)", name, EvaluationNames())
	}
	return evaluate, nil
}

func EvaluationNames() []string {
	names := maps.Keys(evaluations)
	slices.Sort(names)
	return names
}
