package game

// AgentSet holds all six agents, indexed by agent id.
type AgentSet [Agents]Agent

// Rotate turns an agent clockwise by code quarter turns.
func (s *AgentSet) Rotate(id, code int) {
	s[id].Facing = (s[id].Facing + code) % 4
}

func (s *AgentSet) StepForward(id int) {
	s[id] = Advance(s[id])
}

// Teleport relocates an agent and resets its facing.
func (s *AgentSet) Teleport(id, face, row, col int) {
	s[id] = Agent{Face: face, Row: row, Col: col, Facing: 0}
}
