package rules

import "fmt"

// Coordinate is a signed grid coordinate. Boards never exceed a few dozen
// cells per side, so eight bits is plenty and keeps Point and Snake bodies
// small (original_source/include/battlesnake/rules/data_types.h uses the
// same signed-char width for the same reason).
type Coordinate int8

// Point is a single grid cell, origin at the bottom-left.
type Point struct {
	X Coordinate
	Y Coordinate
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Up, Down, Left and Right return the point one step away in that cardinal
// direction. They never wrap; wrapped-board arithmetic is applied by the
// caller (see StandardRuleset.moveSnakes and wrapPoint).
func (p Point) Up() Point    { return Point{p.X, p.Y + 1} }
func (p Point) Down() Point  { return Point{p.X, p.Y - 1} }
func (p Point) Left() Point  { return Point{p.X - 1, p.Y} }
func (p Point) Right() Point { return Point{p.X + 1, p.Y} }

// Moved returns the point reached by applying move. MoveUnknown returns p
// unchanged; callers that need to default an unknown move to a direction do
// so before calling Moved (see resolveMove).
func (p Point) Moved(move Move) Point {
	switch move {
	case MoveUp:
		return p.Up()
	case MoveDown:
		return p.Down()
	case MoveLeft:
		return p.Left()
	case MoveRight:
		return p.Right()
	default:
		return p
	}
}

// Move is a cardinal direction a snake can be asked to take on a turn.
type Move int8

const (
	// MoveUnknown means no move was reported for a snake this turn.
	MoveUnknown Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}

// SnakeMove pairs a snake identifier with the move requested for it on a
// given turn.
type SnakeMove struct {
	ID   ID
	Move Move
}

// EliminationKind tags how (or whether) a snake left the game.
type EliminationKind int8

const (
	NotEliminated EliminationKind = iota
	Collision
	SelfCollision
	OutOfHealth
	HeadToHeadCollision
	OutOfBounds
	BySquad
)

func (k EliminationKind) String() string {
	switch k {
	case NotEliminated:
		return "not-eliminated"
	case Collision:
		return "collision"
	case SelfCollision:
		return "self-collision"
	case OutOfHealth:
		return "out-of-health"
	case HeadToHeadCollision:
		return "head-to-head-collision"
	case OutOfBounds:
		return "out-of-bounds"
	case BySquad:
		return "by-squad"
	default:
		return "unknown"
	}
}

// EliminatedCause records how a snake was removed from play and, for
// Collision and HeadToHeadCollision, which other snake caused it.
type EliminatedCause struct {
	Kind EliminationKind
	By   ID
}

func (c EliminatedCause) String() string {
	switch c.Kind {
	case Collision, HeadToHeadCollision:
		return fmt.Sprintf("%s by %d", c.Kind, c.By)
	default:
		return c.Kind.String()
	}
}

// Eliminated reports whether the cause represents an actual elimination.
func (c EliminatedCause) Eliminated() bool {
	return c.Kind != NotEliminated
}

// Snake is a single agent's body, health and bookkeeping fields.
type Snake struct {
	ID              ID
	Body            []Point
	Health          int
	EliminatedCause EliminatedCause

	// Display-only fields; never consulted by collision/elimination logic
	// except Squad, which gates the squad overlay's sharing/resurrection
	// rules.
	Name    ID
	Latency ID
	Shout   ID
	Squad   ID
}

// Head returns the snake's head cell. Callers must not call Head on a
// zero-length body; CreateNextBoardState guards against this with
// ZeroLengthSnakeError before it would ever happen.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Length returns the number of body segments, including any doubled tail
// segments from growth.
func (s *Snake) Length() int {
	return len(s.Body)
}

// Eliminated reports whether the snake has left the game.
func (s *Snake) Eliminated() bool {
	return s.EliminatedCause.Eliminated()
}

// clone returns a deep copy of the snake, used when building the next
// BoardState from the previous one.
func (s *Snake) clone() Snake {
	return Snake{
		ID:              s.ID,
		Body:            append([]Point(nil), s.Body...),
		Health:          s.Health,
		EliminatedCause: s.EliminatedCause,
		Name:            s.Name,
		Latency:         s.Latency,
		Shout:           s.Shout,
		Squad:           s.Squad,
	}
}

// HazardBorder describes the royale hazard inset: the rectangle
// [DepthLeft, width-DepthRight) x [DepthBottom, height-DepthTop) is safe:
// cells outside it are hazardous.
type HazardBorder struct {
	DepthLeft   Coordinate
	DepthRight  Coordinate
	DepthTop    Coordinate
	DepthBottom Coordinate
}

// BoardState is an immutable-by-convention snapshot of the game grid.
// Every operation in this package takes a BoardState by pointer but returns
// a freshly allocated one rather than mutating its argument.
type BoardState struct {
	Width  Coordinate
	Height Coordinate

	Food    []Point
	Snakes  []Snake
	Hazards []Point

	// HazardBorder is populated and consulted only by RoyaleRuleset; other
	// variants leave it zero-valued.
	HazardBorder HazardBorder
}

// clone returns a deep copy of b, suitable as the mutable next-state scratch
// space for a pipeline phase.
func (b *BoardState) clone() *BoardState {
	next := &BoardState{
		Width:        b.Width,
		Height:       b.Height,
		Food:         append([]Point(nil), b.Food...),
		Hazards:      append([]Point(nil), b.Hazards...),
		Snakes:       make([]Snake, len(b.Snakes)),
		HazardBorder: b.HazardBorder,
	}
	for i := range b.Snakes {
		next.Snakes[i] = b.Snakes[i].clone()
	}
	return next
}

// snakeByID returns a pointer to the snake with the given id, or nil.
func (b *BoardState) snakeByID(id ID) *Snake {
	for i := range b.Snakes {
		if b.Snakes[i].ID == id {
			return &b.Snakes[i]
		}
	}
	return nil
}

// nonEliminatedCount returns how many snakes have not been eliminated.
func (b *BoardState) nonEliminatedCount() int {
	n := 0
	for i := range b.Snakes {
		if !b.Snakes[i].Eliminated() {
			n++
		}
	}
	return n
}
