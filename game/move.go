package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Move codes, one per agent per turn.
const (
	NoMove       = -1
	DashBase     = 4 // 4..7: rotate, then advance five cells
	TeleportBase = 8 // 8..: teleport to 8 + local*25 + row*5 + col, then splash
)

var ErrInvalidDecision = errors.New("invalid decision")

type Kind int

const (
	Basic Kind = iota
	Dash
	Teleport
)

// Decision is the move chosen for one agent, in the form the match server
// accepts it.
type Decision struct {
	Kind Kind
	Dir  int // Basic and Dash
	Face int // Teleport target
	Row  int
	Col  int
}

func BasicMove(dir int) Decision {
	return Decision{Kind: Basic, Dir: dir}
}

func DashMove(dir int) Decision {
	return Decision{Kind: Dash, Dir: dir}
}

func TeleportMove(face, row, col int) Decision {
	return Decision{Kind: Teleport, Face: face, Row: row, Col: col}
}

// String renders the decision as "d", "ds" or "f-r-c".
func (d Decision) String() string {
	switch d.Kind {
	case Dash:
		return strconv.Itoa(d.Dir) + "s"
	case Teleport:
		return fmt.Sprintf("%d-%d-%d", d.Face, d.Row, d.Col)
	default:
		return strconv.Itoa(d.Dir)
	}
}

// Code converts the decision into a move code for an agent of the given team.
// Teleport faces are encoded relative to the team, mirroring how they are
// decoded during resolution.
func (d Decision) Code(team int) int {
	switch d.Kind {
	case Dash:
		return DashBase + d.Dir
	case Teleport:
		return TeleportBase + LocalFace(team, d.Face)*N*N + d.Row*N + d.Col
	default:
		return d.Dir
	}
}

// ParseDecision parses the server representation of a decision.
func ParseDecision(s string) (Decision, error) {
	if parts := strings.Split(s, "-"); len(parts) == 3 {
		var v [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return Decision{}, fmt.Errorf("%w: %q: %v", ErrInvalidDecision, s, err)
			}
			v[i] = n
		}
		if v[0] < 0 || v[0] >= Faces || v[1] < 0 || v[1] >= N || v[2] < 0 || v[2] >= N {
			return Decision{}, fmt.Errorf("%w: teleport target %q out of range", ErrInvalidDecision, s)
		}
		return TeleportMove(v[0], v[1], v[2]), nil
	}

	kind := Basic
	if strings.HasSuffix(s, "s") {
		kind = Dash
		s = strings.TrimSuffix(s, "s")
	}
	dir, err := strconv.Atoi(s)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %q: %v", ErrInvalidDecision, s, err)
	}
	if dir < 0 || dir >= 4 {
		return Decision{}, fmt.Errorf("%w: direction %d out of range", ErrInvalidDecision, dir)
	}
	return Decision{Kind: kind, Dir: dir}, nil
}
