package rules

// RoyaleRuleset runs Standard, then shrinks a safe inset rectangle over
// time and damages snakes caught outside it.
type RoyaleRuleset struct {
	StandardRuleset
}

// CreateNextBoardState runs the Standard pipeline, then applies hazard
// damage and the shrink schedule described in §4.5.
func (r *RoyaleRuleset) CreateNextBoardState(prev *BoardState, moves []SnakeMove, turn int) (*BoardState, error) {
	next, err := r.StandardRuleset.CreateNextBoardState(prev, moves, turn)
	if err != nil {
		return nil, err
	}

	r.damageOutOfBounds(next)

	if turn > 0 && r.Settings.Royale.ShrinkEveryNTurns > 0 && turn%r.Settings.Royale.ShrinkEveryNTurns == 0 {
		r.maybeShrink(next)
	}

	return next, nil
}

func (r *RoyaleRuleset) insetContains(b *BoardState, p Point) bool {
	hb := b.HazardBorder
	return p.X >= hb.DepthLeft && p.X < b.Width-hb.DepthRight &&
		p.Y >= hb.DepthBottom && p.Y < b.Height-hb.DepthTop
}

func (r *RoyaleRuleset) damageOutOfBounds(b *BoardState) {
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		if snake.Eliminated() {
			continue
		}
		// The exclusion on full health prevents double-counting the turn
		// food was eaten.
		if snake.Health == r.Config.SnakeMaxHealth {
			continue
		}
		if r.insetContains(b, snake.Head()) {
			continue
		}

		// The Standard pipeline already took the ordinary 1-point-per-turn
		// bite out of snake.Health before this overlay runs; hazard damage
		// replaces that decrement rather than stacking on top of it, so
		// add it back before applying ExtraDamagePerTurn.
		snake.Health++
		snake.Health -= r.Settings.Royale.ExtraDamagePerTurn
		if snake.Health <= 0 {
			snake.Health = 0
			snake.EliminatedCause = EliminatedCause{Kind: OutOfHealth}
			r.logger().Warn("royale hazard damage eliminated snake",
				"snake", r.pool().String(snake.ID), "turn_damage", r.Settings.Royale.ExtraDamagePerTurn)
		}
	}
}

func (r *RoyaleRuleset) insetEmpty(b *BoardState) bool {
	hb := b.HazardBorder
	return hb.DepthLeft+hb.DepthRight >= b.Width || hb.DepthBottom+hb.DepthTop >= b.Height
}

func (r *RoyaleRuleset) maybeShrink(b *BoardState) {
	if r.insetEmpty(b) {
		return
	}

	switch r.random().Intn(4) {
	case 0:
		b.HazardBorder.DepthLeft++
	case 1:
		b.HazardBorder.DepthRight++
	case 2:
		b.HazardBorder.DepthTop++
	case 3:
		b.HazardBorder.DepthBottom++
	}
	r.logger().Debug("royale border shrunk", "border", b.HazardBorder)
}
