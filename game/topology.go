package game

// Agent is the position and heading of one agent on the cube.
type Agent struct {
	Face   int
	Row    int
	Col    int
	Facing int
}

var dRow = [4]int{+1, 0, -1, 0}
var dCol = [4]int{0, +1, 0, -1}

// Face relabeling per crossed edge, indexed by the face being left.
var (
	rowOverflowFace  = [Faces]int{1, 2, 0, 4, 5, 3}
	rowUnderflowFace = [Faces]int{4, 3, 5, 1, 0, 2}
	colOverflowFace  = [Faces]int{2, 0, 1, 5, 3, 4}
	colUnderflowFace = [Faces]int{3, 5, 4, 0, 2, 1}
)

// Advance returns the agent moved one cell towards its facing, crossing onto
// the neighbouring face when it walks off an edge.
func Advance(a Agent) Agent {
	row := a.Row + dRow[a.Facing]
	col := a.Col + dCol[a.Facing]
	switch {
	case row >= N:
		return Agent{Face: rowOverflowFace[a.Face], Row: a.Col, Col: N - 1, Facing: 3}
	case row < 0:
		return Agent{Face: rowUnderflowFace[a.Face], Row: 0, Col: N - 1 - a.Col, Facing: 0}
	case col >= N:
		return Agent{Face: colOverflowFace[a.Face], Row: N - 1, Col: a.Row, Facing: 2}
	case col < 0:
		return Agent{Face: colUnderflowFace[a.Face], Row: N - 1 - a.Row, Col: 0, Facing: 1}
	default:
		return Agent{Face: a.Face, Row: row, Col: col, Facing: a.Facing}
	}
}

// FacePermute maps a locally indexed slot (0..5) to a global one as seen from
// teamIndex. It decodes both move batch positions and teleport target faces.
func FacePermute(teamIndex, local int) int {
	i0, i1 := teamIndex/3, teamIndex%3
	j0, j1 := local/3, local%3
	return ((j0+1)*i1+j1)%3 + (i0+j0)%2*3
}

// LocalFace is the inverse of FacePermute for a fixed teamIndex.
func LocalFace(teamIndex, face int) int {
	for local := 0; local < Faces; local++ {
		if FacePermute(teamIndex, local) == face {
			return local
		}
	}
	panic("face out of range")
}
