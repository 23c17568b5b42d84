package game

import "sort"

// GameState is the full simulation state of one match at a given turn.
type GameState struct {
	Turn    int
	Moves   [Agents]int // Move codes last applied, per agent
	Score   [Teams]int  // Cumulative score
	Special [Agents]int // Special charges left, per agent
	Field   Field
	Agents  AgentSet
}

// NewGameState returns a neutral field at turn 0. Agent a starts on face a,
// centred and facing 0, with specials charges each.
func NewGameState(specials int) *GameState {
	gs := &GameState{Field: NewField()}
	for a := 0; a < Agents; a++ {
		gs.Agents[a] = Agent{Face: a, Row: N / 2, Col: N / 2}
		gs.Moves[a] = NoMove
		gs.Special[a] = specials
	}
	return gs
}

// Copy returns an independent clone.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

func (gs *GameState) Finished() bool {
	return gs.Turn >= TotalTurns
}

// Progress resolves one turn per chunk of six move codes. Chunk positions are
// relative to teamIndex and decoded with FacePermute.
func (gs *GameState) Progress(teamIndex int, batch []int) {
	if len(batch)%Agents != 0 {
		panic("move batch length is not a multiple of 6")
	}

	var counter [Cells]uint8
	var fis [Agents]int
	for i := 0; i < len(batch); i += Agents {
		for a := 0; a < Agents; a++ {
			gs.Moves[a] = batch[i+FacePermute(teamIndex, a)]
		}

		gs.resolveNormal(&counter, &fis)
		gs.resolveSpecial(&counter)

		if gs.Turn >= TotalTurns/2 {
			for t := 0; t < Teams; t++ {
				gs.Score[t] += gs.Field.area[t]
			}
		}
		gs.Turn++
	}
}

func isNormal(code int) bool {
	return code >= 0 && code < DashBase
}

func (gs *GameState) resolveNormal(counter *[Cells]uint8, fis *[Agents]int) {
	for a := 0; a < Agents; a++ {
		if !isNormal(gs.Moves[a]) {
			continue
		}
		gs.Agents.Rotate(a, gs.Moves[a])
		gs.Agents.StepForward(a)
		ag := gs.Agents[a]
		fis[a] = cellIndex(ag.Face, ag.Row, ag.Col)
		counter[fis[a]] |= 1 << a
	}

	for a := 0; a < Agents; a++ {
		if !isNormal(gs.Moves[a]) {
			continue
		}
		team := TeamOf(a)
		if uncontested(counter[fis[a]], team, a) || gs.Field.cells[fis[a]].Owner == team {
			gs.Field.paint(team, fis[a])
		}
	}

	for a := 0; a < Agents; a++ {
		if isNormal(gs.Moves[a]) {
			counter[fis[a]] = 0
		}
	}
}

// uncontested reports whether the cell was stepped on by agent alone, or by
// agent together with the agent whose id equals team. For a back agent that is
// its front teammate; a front agent only passes alone, so a cell shared by both
// members of a team is painted exactly once, by the back agent.
func uncontested(mask uint8, team, agent int) bool {
	self := uint8(1) << agent
	return mask == self || mask == self|uint8(1)<<team
}

func (gs *GameState) resolveSpecial(counter *[Cells]uint8) {
	touched := map[int]struct{}{}
	mark := func(team int, ag Agent) {
		fi := cellIndex(ag.Face, ag.Row, ag.Col)
		touched[fi] = struct{}{}
		counter[fi] |= 1 << team
	}

	for a := 0; a < Agents; a++ {
		code := gs.Moves[a]
		if code < DashBase {
			continue
		}
		gs.Special[a]--
		team := TeamOf(a)
		if code < TeleportBase {
			gs.Agents.Rotate(a, code)
			for p := 0; p < N; p++ {
				gs.Agents.StepForward(a)
				mark(team, gs.Agents[a])
			}
			continue
		}

		m := code - TeleportBase
		dest := Agent{Face: FacePermute(team, m/(N*N)), Row: m / N % N, Col: m % N}
		mark(team, dest)
		for d := 0; d < 4; d++ {
			dest.Facing = d
			mark(team, Advance(dest))
		}
		gs.Agents.Teleport(a, dest.Face, dest.Row, dest.Col)
	}

	cells := make([]int, 0, len(touched))
	for fi := range touched {
		cells = append(cells, fi)
	}
	sort.Ints(cells)
	for _, fi := range cells {
		switch counter[fi] {
		case 1 << 0:
			gs.Field.forcePaint(0, fi)
		case 1 << 1:
			gs.Field.forcePaint(1, fi)
		case 1 << 2:
			gs.Field.forcePaint(2, fi)
		}
		counter[fi] = 0
	}
}
