package rules

// SquadRuleset runs Standard, then applies same-squad no-collision and
// attribute-sharing rules, and changes the termination predicate to count
// distinct squad labels rather than individual snakes.
type SquadRuleset struct {
	StandardRuleset
}

// CreateNextBoardState runs the Standard pipeline, then the squad overlay
// described in §4.5: un-tag same-squad collisions (when allowed), then
// propagate shared health/length/elimination across squadmates.
func (r *SquadRuleset) CreateNextBoardState(prev *BoardState, moves []SnakeMove, turn int) (*BoardState, error) {
	next, err := r.StandardRuleset.CreateNextBoardState(prev, moves, turn)
	if err != nil {
		return nil, err
	}

	settings := r.Settings.Squad

	if settings.AllowBodyCollisions {
		if err := r.allowSquadCollisions(next); err != nil {
			return nil, err
		}
	}

	if settings.SharedHealth || settings.SharedLength || settings.SharedElimination {
		r.shareSquadAttributes(next)
	}

	return next, nil
}

func (r *SquadRuleset) allowSquadCollisions(b *BoardState) error {
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		if snake.EliminatedCause.Kind != Collision {
			continue
		}

		other := b.snakeByID(snake.EliminatedCause.By)
		if other == nil {
			return &InvalidEliminatedByIDError{
				SnakeID:      r.pool().String(snake.ID),
				EliminatedBy: r.pool().String(snake.EliminatedCause.By),
			}
		}

		if other.Squad == snake.Squad {
			r.logger().Warn("squad overlay corrected collision",
				"snake", r.pool().String(snake.ID), "by", r.pool().String(other.ID))
			snake.EliminatedCause = EliminatedCause{}
		}
	}
	return nil
}

func (r *SquadRuleset) shareSquadAttributes(b *BoardState) {
	settings := r.Settings.Squad

	for i := range b.Snakes {
		self := &b.Snakes[i]

		for j := range b.Snakes {
			if i == j {
				continue
			}
			other := &b.Snakes[j]
			if other.Squad != self.Squad {
				continue
			}

			if settings.SharedHealth && other.Health > self.Health {
				self.Health = other.Health
			}
			if settings.SharedLength {
				for self.Length() < other.Length() {
					r.growSnake(self)
				}
			}
			if settings.SharedElimination && !self.Eliminated() && other.Eliminated() {
				r.logger().Warn("squad overlay forced elimination",
					"snake", r.pool().String(self.ID), "squadmate", r.pool().String(other.ID))
				self.EliminatedCause = EliminatedCause{Kind: BySquad}
			}
		}
	}
}

// IsGameOver reports true once at most one distinct squad label remains
// represented among non-eliminated snakes. Unsquadded snakes all share the
// same (empty) label, so squad mode is only meaningful once every snake has
// actually been assigned a squad.
func (r *SquadRuleset) IsGameOver(b *BoardState) bool {
	seen := map[ID]bool{}
	for i := range b.Snakes {
		if !b.Snakes[i].Eliminated() {
			seen[b.Snakes[i].Squad] = true
		}
	}
	return len(seen) <= 1
}
