package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCustomization(t *testing.T) {
	c := DefaultCustomization()
	assert.Equal(t, "1", c.APIVersion)
	assert.Equal(t, "#888888", c.Color)
	assert.Equal(t, "default", c.Head)
	assert.Equal(t, "default", c.Tail)
	assert.Empty(t, c.Author)
	assert.Empty(t, c.Version)
}

// stubAgent exercises the Agent interface shape; orchestration itself is
// out of scope for this package.
type stubAgent struct {
	moves []MoveResponse
}

func (s *stubAgent) GetCustomization() Customization { return DefaultCustomization() }
func (s *stubAgent) Start(ctx context.Context, state GameState) error { return nil }
func (s *stubAgent) End(ctx context.Context, state GameState) error   { return nil }
func (s *stubAgent) Move(ctx context.Context, state GameState) (MoveResponse, error) {
	if len(s.moves) == 0 {
		return MoveResponse{Move: MoveUp}, nil
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func TestStubAgentSatisfiesInterface(t *testing.T) {
	var a Agent = &stubAgent{moves: []MoveResponse{{Move: MoveLeft, Shout: "go"}}}

	resp, err := a.Move(context.Background(), GameState{})
	assert.NoError(t, err)
	assert.Equal(t, MoveLeft, resp.Move)
	assert.Equal(t, "go", resp.Shout)
}
