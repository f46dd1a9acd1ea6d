package rules

// WrappedRuleset runs the Standard pipeline with toroidal movement: heads
// that cross an edge reappear on the opposite side instead of triggering
// OutOfBounds. Its embedded StandardRuleset.Wrapped flag (set by
// NewRuleset/RulesetBuilder) is what moveSnakes consults for the modulo
// arithmetic; this type's own job is the explicit hazard-set damage a
// toroidal board uses in place of royale's inset rectangle.
type WrappedRuleset struct {
	StandardRuleset
}

// CreateNextBoardState runs the Standard pipeline, then damages
// non-eliminated snakes whose head sits on an explicit hazard cell.
func (r *WrappedRuleset) CreateNextBoardState(prev *BoardState, moves []SnakeMove, turn int) (*BoardState, error) {
	next, err := r.StandardRuleset.CreateNextBoardState(prev, moves, turn)
	if err != nil {
		return nil, err
	}

	for i := range next.Snakes {
		snake := &next.Snakes[i]
		if snake.Eliminated() || snake.Health == r.Config.SnakeMaxHealth {
			continue
		}
		if !containsPoint(next.Hazards, snake.Head()) {
			continue
		}

		snake.Health -= r.Settings.HazardDamagePerTurn
		if snake.Health <= 0 {
			snake.Health = 0
			snake.EliminatedCause = EliminatedCause{Kind: OutOfHealth}
		}
	}

	return next, nil
}
