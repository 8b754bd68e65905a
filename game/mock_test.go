package game

type stubState struct {
	pacman   Position
	food     []Position
	ghosts   []GhostState
	capsules []Position
	score    float64
}

func (s stubState) NumAgents() int                      { return 1 + len(s.ghosts) }
func (s stubState) AvailableActions(int) []Action       { return nil }
func (s stubState) GenerateNextState(int, Action) State { return s }
func (s stubState) IsWin() bool                         { return false }
func (s stubState) IsLose() bool                        { return false }
func (s stubState) PacmanPosition() Position            { return s.pacman }
func (s stubState) Food() []Position                    { return s.food }
func (s stubState) GhostStates() []GhostState           { return s.ghosts }
func (s stubState) Capsules() []Position                { return s.capsules }
func (s stubState) Score() float64                      { return s.score }
