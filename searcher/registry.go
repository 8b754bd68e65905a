package searcher

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

var constructors = map[string]func(...Option) Searcher{
	"minimax":    func(options ...Option) Searcher { return NewMinimax(options...) },
	"alphabeta":  func(options ...Option) Searcher { return NewAlphaBeta(options...) },
	"expectimax": func(options ...Option) Searcher { return NewExpectimax(options...) },
}

// New builds the searcher registered under name.
func New(name string, options ...Option) (Searcher, error) {
	constructor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown searcher %q (want one of %v)", name, Names())
	}
	return constructor(options...), nil
}

func Names() []string {
	names := maps.Keys(constructors)
	slices.Sort(names)
	return names
}
