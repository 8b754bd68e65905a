// meta/meta.go
package meta

// DEPTH defines how many full rounds of agent moves a searcher looks ahead.
const DEPTH = 2

// EVALUATION names the default leaf evaluation function.
const EVALUATION = "score"

// MAX_MOVES caps the number of agent 0 moves in one game.
const MAX_MOVES = 500

// GAMES defines the number of games per agent configuration in an experiment.
const GAMES = 10

// SCARED_TIME defines how many of its own moves a ghost stays scared after a capsule.
const SCARED_TIME = 40
