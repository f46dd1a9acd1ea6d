package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointMoved(t *testing.T) {
	p := Point{3, 3}
	assert.Equal(t, Point{3, 4}, p.Moved(MoveUp))
	assert.Equal(t, Point{3, 2}, p.Moved(MoveDown))
	assert.Equal(t, Point{2, 3}, p.Moved(MoveLeft))
	assert.Equal(t, Point{4, 3}, p.Moved(MoveRight))
	assert.Equal(t, p, p.Moved(MoveUnknown))
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "up", MoveUp.String())
	assert.Equal(t, "down", MoveDown.String())
	assert.Equal(t, "left", MoveLeft.String())
	assert.Equal(t, "right", MoveRight.String())
	assert.Equal(t, "unknown", MoveUnknown.String())
}

func TestEliminatedCauseString(t *testing.T) {
	assert.Equal(t, "not-eliminated", EliminatedCause{}.String())

	c := EliminatedCause{Kind: Collision, By: ID(7)}
	assert.Equal(t, "collision by 7", c.String())

	oob := EliminatedCause{Kind: OutOfBounds}
	assert.Equal(t, "out-of-bounds", oob.String())
}

func TestEliminatedCauseEliminated(t *testing.T) {
	assert.False(t, EliminatedCause{}.Eliminated())
	assert.True(t, EliminatedCause{Kind: SelfCollision}.Eliminated())
}

func TestSnakeCloneIsIndependent(t *testing.T) {
	s := Snake{ID: 1, Body: []Point{{1, 1}, {1, 2}}, Health: 50}
	clone := s.clone()

	clone.Body[0] = Point{9, 9}
	clone.Health = 1

	assert.Equal(t, Point{1, 1}, s.Body[0])
	assert.Equal(t, 50, s.Health)
}

func TestBoardStateCloneIsIndependent(t *testing.T) {
	b := &BoardState{
		Width:  7,
		Height: 7,
		Food:   []Point{{1, 1}},
		Snakes: []Snake{{ID: 1, Body: []Point{{2, 2}}}},
	}
	clone := b.clone()
	clone.Food[0] = Point{5, 5}
	clone.Snakes[0].Body[0] = Point{6, 6}

	assert.Equal(t, Point{1, 1}, b.Food[0])
	assert.Equal(t, Point{2, 2}, b.Snakes[0].Body[0])
}

func TestBoardStateSnakeByID(t *testing.T) {
	b := &BoardState{Snakes: []Snake{{ID: 1}, {ID: 2}}}
	assert.NotNil(t, b.snakeByID(ID(2)))
	assert.Nil(t, b.snakeByID(ID(99)))
}

func TestBoardStateNonEliminatedCount(t *testing.T) {
	b := &BoardState{
		Snakes: []Snake{
			{ID: 1},
			{ID: 2, EliminatedCause: EliminatedCause{Kind: OutOfHealth}},
		},
	}
	assert.Equal(t, 1, b.nonEliminatedCount())
}
