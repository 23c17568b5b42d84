package game

const (
	N          = 5 // Cells per face edge
	Faces      = 6
	Cells      = Faces * N * N
	Agents     = 6 // Two per team
	Teams      = 3
	TotalTurns = 294
	Unowned    = -1
)

// TeamOf returns the owning team of an agent. Agents 0,1,2 lead teams 0,1,2 and
// agents 3,4,5 back up teams 2,1,0.
func TeamOf(agent int) int {
	if agent < 3 {
		return agent
	}
	return 5 - agent
}

// Members returns the front and back agent of a team.
func Members(team int) (front, back int) {
	return team, 5 - team
}

func cellIndex(face, row, col int) int {
	return (face*N+row)*N + col
}
