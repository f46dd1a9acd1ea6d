package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSquadRuleset(settings SquadSettings) (*SquadRuleset, *Pool) {
	pool := NewPool()
	r := &SquadRuleset{StandardRuleset: StandardRuleset{
		Pool:     pool,
		Config:   DefaultConfig(),
		Settings: Settings{Squad: settings},
	}}
	return r, pool
}

func TestSquadNoCollisionUntagsVictim(t *testing.T) {
	r, pool := newSquadRuleset(SquadSettings{AllowBodyCollisions: true})
	one := pool.Intern("one")
	two := pool.Intern("two")
	squadA := pool.Intern("alpha")

	prev := &BoardState{
		Width:  10,
		Height: 10,
		Snakes: []Snake{
			{ID: one, Health: 100, Squad: squadA, Body: []Point{{3, 3}, {3, 2}, {3, 1}}},
			{ID: two, Health: 100, Squad: squadA, Body: []Point{{9, 9}, {3, 4}, {9, 8}}},
		},
	}

	// "one" moves its head onto (3,4), which stays in "two"'s body (as its
	// new tail) after the shift, a body-to-head collision.
	next, err := r.CreateNextBoardState(prev, []SnakeMove{
		{ID: one, Move: MoveUp},
		{ID: two, Move: MoveLeft},
	}, 1)
	require.NoError(t, err)

	v := next.snakeByID(one)
	require.NotNil(t, v)
	assert.False(t, v.Eliminated(), "same-squad body collisions are allowed and un-tagged")
}

func TestSquadCollisionAcrossSquadsStillEliminates(t *testing.T) {
	r, pool := newSquadRuleset(SquadSettings{AllowBodyCollisions: true})
	one := pool.Intern("one")
	two := pool.Intern("two")
	squadA := pool.Intern("alpha")
	squadB := pool.Intern("bravo")

	prev := &BoardState{
		Width:  10,
		Height: 10,
		Snakes: []Snake{
			{ID: one, Health: 100, Squad: squadA, Body: []Point{{3, 3}, {3, 2}, {3, 1}}},
			{ID: two, Health: 100, Squad: squadB, Body: []Point{{9, 9}, {3, 4}, {9, 8}}},
		},
	}

	next, err := r.CreateNextBoardState(prev, []SnakeMove{
		{ID: one, Move: MoveUp},
		{ID: two, Move: MoveLeft},
	}, 1)
	require.NoError(t, err)

	v := next.snakeByID(one)
	require.NotNil(t, v)
	assert.Equal(t, Collision, v.EliminatedCause.Kind)
}

func TestSquadSharedHealthAndLength(t *testing.T) {
	r, pool := newSquadRuleset(SquadSettings{SharedHealth: true, SharedLength: true})
	one := pool.Intern("one")
	two := pool.Intern("two")
	squadA := pool.Intern("alpha")

	prev := &BoardState{
		Width:  10,
		Height: 10,
		Snakes: []Snake{
			{ID: one, Health: 20, Squad: squadA, Body: []Point{{1, 1}, {1, 0}}},
			{ID: two, Health: 90, Squad: squadA, Body: []Point{{8, 8}, {8, 7}, {8, 6}, {8, 5}}},
		},
	}

	next, err := r.CreateNextBoardState(prev, []SnakeMove{
		{ID: one, Move: MoveUp},
		{ID: two, Move: MoveUp},
	}, 1)
	require.NoError(t, err)

	s1 := next.snakeByID(one)
	require.NotNil(t, s1)
	assert.Equal(t, 89, s1.Health)
	assert.GreaterOrEqual(t, s1.Length(), 4)
}

func TestSquadSharedEliminationTagsSquadmate(t *testing.T) {
	r, pool := newSquadRuleset(SquadSettings{SharedElimination: true})
	one := pool.Intern("one")
	two := pool.Intern("two")
	squadA := pool.Intern("alpha")

	prev := &BoardState{
		Width:  10,
		Height: 10,
		Snakes: []Snake{
			{ID: one, Health: 100, Squad: squadA, Body: []Point{{5, 5}, {5, 4}, {5, 3}}},
			{ID: two, Health: 1, Squad: squadA, Body: []Point{{1, 1}, {1, 0}}},
		},
	}

	next, err := r.CreateNextBoardState(prev, []SnakeMove{
		{ID: one, Move: MoveUp},
		{ID: two, Move: MoveUp},
	}, 1)
	require.NoError(t, err)

	s2 := next.snakeByID(two)
	require.NotNil(t, s2)
	assert.Equal(t, OutOfHealth, s2.EliminatedCause.Kind)

	s1 := next.snakeByID(one)
	require.NotNil(t, s1)
	assert.Equal(t, BySquad, s1.EliminatedCause.Kind)
}

func TestSquadIsGameOverCountsDistinctLabels(t *testing.T) {
	pool := NewPool()
	one := pool.Intern("one")
	two := pool.Intern("two")
	three := pool.Intern("three")
	squadA := pool.Intern("alpha")
	squadB := pool.Intern("bravo")

	r := &SquadRuleset{StandardRuleset: StandardRuleset{Pool: pool, Config: DefaultConfig()}}

	b := &BoardState{
		Snakes: []Snake{
			{ID: one, Squad: squadA},
			{ID: two, Squad: squadA},
			{ID: three, Squad: squadB},
		},
	}
	assert.False(t, r.IsGameOver(b))

	b.Snakes[2].EliminatedCause = EliminatedCause{Kind: OutOfBounds}
	assert.True(t, r.IsGameOver(b))
}
