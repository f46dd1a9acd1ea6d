package rules

// ConstrictorRuleset runs Standard, then clears all food and force-grows
// every non-eliminated snake so it never shrinks and never starves: snakes
// can only be removed by colliding with something.
type ConstrictorRuleset struct {
	StandardRuleset
}

// CreateInitialBoardState seeds snakes at full health like Standard, but
// places no food: constrictor boards never have any.
func (r *ConstrictorRuleset) CreateInitialBoardState(width, height Coordinate, snakeIDs []string) (*BoardState, error) {
	b, err := r.StandardRuleset.CreateInitialBoardState(width, height, snakeIDs)
	if err != nil {
		return nil, err
	}
	b.Food = nil
	return b, nil
}

func (r *ConstrictorRuleset) CreateNextBoardState(prev *BoardState, moves []SnakeMove, turn int) (*BoardState, error) {
	next, err := r.StandardRuleset.CreateNextBoardState(prev, moves, turn)
	if err != nil {
		return nil, err
	}

	next.Food = nil
	for i := range next.Snakes {
		snake := &next.Snakes[i]
		if snake.Eliminated() {
			continue
		}
		snake.Health = r.Config.SnakeMaxHealth

		switch {
		case snake.Length() < 2:
			r.growSnake(snake)
		case snake.Body[snake.Length()-1] != snake.Body[snake.Length()-2]:
			// Tail and penultimate cell differ, meaning the tail actually
			// advanced this turn. Grow by one to undo that, so length
			// never decreases.
			r.growSnake(snake)
		}
	}
	return next, nil
}
