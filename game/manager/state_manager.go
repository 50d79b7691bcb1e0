package manager

// StateManager keeps the score and the running flag of a session. Scores
// live only as long as the process.
type StateManager struct {
	score       int
	sessionHigh int
	rounds      int
	running     bool
}

func NewStateManager() *StateManager {
	return &StateManager{running: true}
}

// AddPoint increments the score and the session high when it is beaten.
func (sm *StateManager) AddPoint() int {
	sm.score++
	if sm.score > sm.sessionHigh {
		sm.sessionHigh = sm.score
	}
	return sm.score
}

// EndRound zeroes the score, pauses the game and returns the score the
// round finished with.
func (sm *StateManager) EndRound() int {
	final := sm.score
	sm.score = 0
	sm.rounds++
	sm.running = false
	return final
}

// Resume sets the game running again. It reports whether it was paused.
func (sm *StateManager) Resume() bool {
	if sm.running {
		return false
	}
	sm.running = true
	return true
}

func (sm *StateManager) Running() bool {
	return sm.running
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.sessionHigh
}

// Rounds is the number of rounds that ended in a collision.
func (sm *StateManager) Rounds() int {
	return sm.rounds
}
