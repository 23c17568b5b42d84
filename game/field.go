package game

// Cell is one painted square. Level 0 is neutral, 2 is fully held and 1 is a
// held cell half eroded by another team.
type Cell struct {
	Owner int
	Level int
}

// Field holds every cell of the cube plus a running area tally per team.
// It is a plain value, so assignment clones it.
type Field struct {
	cells [Cells]Cell
	area  [Teams]int
}

// NewField returns a field with every cell neutral.
func NewField() Field {
	var f Field
	for i := range f.cells {
		f.cells[i] = Cell{Owner: Unowned}
	}
	return f
}

func (f *Field) Get(face, row, col int) Cell {
	return f.cells[cellIndex(face, row, col)]
}

// Area returns the tracked number of cells owned by team.
func (f *Field) Area(team int) int {
	return f.area[team]
}

// Owned recounts the cells owned by team.
func (f *Field) Owned(team int) int {
	count := 0
	for _, c := range f.cells {
		if c.Owner == team {
			count++
		}
	}
	return count
}

// Set overwrites a cell, keeping the area tally consistent.
func (f *Field) Set(face, row, col int, c Cell) {
	fi := cellIndex(face, row, col)
	if old := f.cells[fi].Owner; old != Unowned {
		f.area[old]--
	}
	if c.Owner != Unowned {
		f.area[c.Owner]++
	}
	f.cells[fi] = c
}

// Paint applies a normal move claim by team.
func (f *Field) Paint(team, face, row, col int) {
	f.paint(team, cellIndex(face, row, col))
}

// ForcePaint applies a special move claim by team.
func (f *Field) ForcePaint(team, face, row, col int) {
	f.forcePaint(team, cellIndex(face, row, col))
}

func (f *Field) paint(team, fi int) {
	c := &f.cells[fi]
	switch {
	case c.Owner == Unowned:
		f.area[team]++
		c.Owner = team
		c.Level = 2
	case c.Owner == team:
		c.Level = 2
	case c.Level == 1:
		f.area[c.Owner]--
		c.Owner = Unowned
		c.Level = 0
	default:
		c.Level--
	}
}

func (f *Field) forcePaint(team, fi int) {
	c := &f.cells[fi]
	if c.Owner != team {
		f.area[team]++
		if c.Owner != Unowned {
			f.area[c.Owner]--
		}
	}
	c.Owner = team
	c.Level = 2
}
