package rules

import (
	"log/slog"
	"sort"
)

// StandardRuleset implements the base pipeline every other variant embeds
// and specializes: placement, move, health/feed/food-spawn, and
// elimination.
type StandardRuleset struct {
	Pool     *Pool
	Config   Config
	Settings Settings
	Random   RandomSource

	// Logger receives phase-boundary Debug records and, from the variant
	// overlays, Warn records when an overlay corrects a collision or forces
	// an elimination the Standard pipeline didn't. Defaults to
	// slog.Default() when unset.
	Logger *slog.Logger

	// Wrapped is set by WrappedRuleset so the move phase it inherits
	// (moveSnakes) applies toroidal arithmetic instead of leaving
	// out-of-bounds heads to Sub-phase A. NewRuleset and RulesetBuilder set
	// it for GameTypeWrapped; as an exported field it can also be set on a
	// hand-built StandardRuleset.
	Wrapped bool
}

func (r *StandardRuleset) pool() *Pool {
	r.Pool = poolOrDefault(r.Pool)
	return r.Pool
}

func (r *StandardRuleset) random() RandomSource {
	r.Random = randomOrDefault(r.Random)
	return r.Random
}

func (r *StandardRuleset) logger() *slog.Logger {
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	return r.Logger
}

// CreateInitialBoardState builds a turn-0 BoardState: snakes seeded at
// starting positions with Config.SnakeStartSize overlapping body cells and
// full health, plus food placed per §4.1.
func (r *StandardRuleset) CreateInitialBoardState(width, height Coordinate, snakeIDs []string) (*BoardState, error) {
	pool := r.pool()
	b := &BoardState{
		Width:  width,
		Height: height,
		Snakes: make([]Snake, len(snakeIDs)),
	}

	for i, id := range snakeIDs {
		b.Snakes[i] = Snake{
			ID:     pool.Intern(id),
			Health: r.Config.SnakeMaxHealth,
		}
	}

	r.logger().Debug("placing snakes", "count", len(snakeIDs), "width", width, "height", height)
	if err := r.placeSnakes(b); err != nil {
		return nil, err
	}

	r.logger().Debug("placing food")
	if err := r.placeFood(b); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *StandardRuleset) isKnownBoardSize(b *BoardState) bool {
	if b.Width != b.Height {
		return false
	}
	switch b.Width {
	case BoardSizeSmall, BoardSizeMedium, BoardSizeLarge:
		return true
	default:
		return false
	}
}

func (r *StandardRuleset) placeSnakes(b *BoardState) error {
	if r.isKnownBoardSize(b) {
		return r.placeSnakesFixed(b)
	}
	return r.placeSnakesRandomly(b)
}

func (r *StandardRuleset) placeSnakesFixed(b *BoardState) error {
	mn, md, mx := Coordinate(1), (b.Width-1)/2, b.Width-2
	anchors := []Point{
		{mn, mn}, {mn, md}, {mn, mx},
		{md, mn}, {md, mx},
		{mx, mn}, {mx, md}, {mx, mx},
	}

	if len(b.Snakes) > len(anchors) {
		return &TooManySnakesError{N: len(b.Snakes)}
	}

	rnd := r.random()
	for i := len(anchors) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		anchors[i], anchors[j] = anchors[j], anchors[i]
	}

	for i := range b.Snakes {
		for j := 0; j < r.Config.SnakeStartSize; j++ {
			b.Snakes[i].Body = append(b.Snakes[i].Body, anchors[i])
		}
	}
	return nil
}

func (r *StandardRuleset) placeSnakesRandomly(b *BoardState) error {
	rnd := r.random()
	for i := range b.Snakes {
		candidates := r.getEvenUnoccupiedPoints(b)
		if len(candidates) == 0 {
			return &NoRoomForSnakeError{}
		}
		p := candidates[rnd.Intn(len(candidates))]
		for j := 0; j < r.Config.SnakeStartSize; j++ {
			b.Snakes[i].Body = append(b.Snakes[i].Body, p)
		}
	}
	return nil
}

func (r *StandardRuleset) placeFood(b *BoardState) error {
	if r.isKnownBoardSize(b) {
		return r.placeFoodFixed(b)
	}
	return r.placeFoodRandomly(b)
}

func (r *StandardRuleset) placeFoodFixed(b *BoardState) error {
	rnd := r.random()
	for i := range b.Snakes {
		head := b.Snakes[i].Head()
		candidates := []Point{
			{head.X - 1, head.Y - 1},
			{head.X - 1, head.Y + 1},
			{head.X + 1, head.Y - 1},
			{head.X + 1, head.Y + 1},
		}

		var available []Point
		for _, p := range candidates {
			if !containsPoint(b.Food, p) {
				available = append(available, p)
			}
		}
		if len(available) == 0 {
			return &NoRoomForFoodError{}
		}
		b.Food = append(b.Food, available[rnd.Intn(len(available))])
	}

	center := Point{(b.Width - 1) / 2, (b.Height - 1) / 2}
	if containsPoint(b.Food, center) || occupiedBySnake(b, center) {
		return &NoRoomForFoodError{}
	}
	b.Food = append(b.Food, center)
	return nil
}

func (r *StandardRuleset) placeFoodRandomly(b *BoardState) error {
	return r.spawnFood(b, len(b.Snakes))
}

// CreateNextBoardState advances prev by one turn, applying moves, then the
// shared phases: move, decrement health, feed, maybe spawn food, eliminate.
// turn is the turn number being produced (1-based; royale consults it for
// its shrink schedule).
func (r *StandardRuleset) CreateNextBoardState(prev *BoardState, moves []SnakeMove, turn int) (*BoardState, error) {
	next := prev.clone()

	r.logger().Debug("moving snakes", "turn", turn)
	if err := r.moveSnakes(next, moves); err != nil {
		return nil, err
	}

	r.logger().Debug("reducing health", "turn", turn)
	r.reduceSnakeHealth(next)

	// Feeding happens before elimination so a snake that eats on its final
	// turn still survives, and so head-to-head collisions on food still
	// consume it. This does mean an equal-length head-to-head both show
	// length+1/full health, as if both had eaten.
	r.logger().Debug("feeding snakes", "turn", turn)
	r.maybeFeedSnakes(next)

	r.logger().Debug("maybe spawning food", "turn", turn)
	if err := r.maybeSpawnFood(next); err != nil {
		return nil, err
	}

	r.logger().Debug("eliminating snakes", "turn", turn)
	if err := r.maybeEliminateSnakes(next); err != nil {
		return nil, err
	}

	return next, nil
}

// resolveMove returns the direction a MoveUnknown snake should be treated
// as having taken: the direction implied by head/neck if one exists,
// otherwise Up.
func resolveMove(snake *Snake, move Move) Move {
	if move != MoveUnknown {
		return move
	}
	if len(snake.Body) < 2 {
		return MoveUp
	}
	head, neck := snake.Body[0], snake.Body[1]
	switch {
	case head == neck.Up():
		return MoveUp
	case head == neck.Down():
		return MoveDown
	case head == neck.Left():
		return MoveLeft
	case head == neck.Right():
		return MoveRight
	default:
		return MoveUp
	}
}

func (r *StandardRuleset) moveSnakes(b *BoardState, moves []SnakeMove) error {
	moveByID := make(map[ID]Move, len(moves))
	for _, m := range moves {
		moveByID[m.ID] = m.Move
	}

	for i := range b.Snakes {
		snake := &b.Snakes[i]
		if snake.Eliminated() {
			continue
		}
		if len(snake.Body) == 0 {
			return &ZeroLengthSnakeError{SnakeID: r.pool().String(snake.ID)}
		}
		move, ok := moveByID[snake.ID]
		if !ok {
			return &NoMoveFoundError{SnakeID: r.pool().String(snake.ID)}
		}

		move = resolveMove(snake, move)
		newHead := snake.Body[0].Moved(move)
		if r.Wrapped {
			newHead = wrapPoint(newHead, b.Width, b.Height)
		}

		copy(snake.Body[1:], snake.Body[:len(snake.Body)-1])
		snake.Body[0] = newHead
	}
	return nil
}

func wrapPoint(p Point, width, height Coordinate) Point {
	x, y := int(p.X), int(p.Y)
	w, h := int(width), int(height)
	x = ((x % w) + w) % w
	y = ((y % h) + h) % h
	return Point{Coordinate(x), Coordinate(y)}
}

func (r *StandardRuleset) reduceSnakeHealth(b *BoardState) {
	for i := range b.Snakes {
		if !b.Snakes[i].Eliminated() {
			b.Snakes[i].Health--
		}
	}
}

func (r *StandardRuleset) maybeFeedSnakes(b *BoardState) {
	remaining := b.Food[:0]
	for _, food := range b.Food {
		eaten := false
		for i := range b.Snakes {
			snake := &b.Snakes[i]
			if snake.Eliminated() || len(snake.Body) == 0 {
				continue
			}
			if snake.Head() == food {
				r.feedSnake(snake)
				eaten = true
			}
		}
		if !eaten {
			remaining = append(remaining, food)
		}
	}
	b.Food = remaining
}

func (r *StandardRuleset) feedSnake(snake *Snake) {
	r.growSnake(snake)
	snake.Health = r.Config.SnakeMaxHealth
}

func (r *StandardRuleset) growSnake(snake *Snake) {
	if len(snake.Body) > 0 {
		snake.Body = append(snake.Body, snake.Body[len(snake.Body)-1])
	}
}

func (r *StandardRuleset) maybeSpawnFood(b *BoardState) error {
	if len(b.Food) < r.Settings.MinimumFood {
		return r.spawnFood(b, r.Settings.MinimumFood-len(b.Food))
	}
	if r.random().Float64()*100 < float64(r.Settings.FoodSpawnChance) {
		return r.spawnFood(b, 1)
	}
	return nil
}

func (r *StandardRuleset) spawnFood(b *BoardState, n int) error {
	rnd := r.random()
	for i := 0; i < n; i++ {
		candidates := r.getUnoccupiedPoints(b)
		if len(candidates) == 0 {
			return nil
		}
		b.Food = append(b.Food, candidates[rnd.Intn(len(candidates))])
	}
	return nil
}

func occupiedBySnake(b *BoardState, p Point) bool {
	for i := range b.Snakes {
		if b.Snakes[i].Eliminated() {
			continue
		}
		if containsPoint(b.Snakes[i].Body, p) {
			return true
		}
	}
	return false
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func (r *StandardRuleset) getUnoccupiedPoints(b *BoardState) []Point {
	occupied := make(map[Point]bool, len(b.Food))
	for _, p := range b.Food {
		occupied[p] = true
	}
	for i := range b.Snakes {
		if b.Snakes[i].Eliminated() {
			continue
		}
		for _, p := range b.Snakes[i].Body {
			occupied[p] = true
		}
	}

	var unoccupied []Point
	for x := Coordinate(0); x < b.Width; x++ {
		for y := Coordinate(0); y < b.Height; y++ {
			p := Point{x, y}
			if !occupied[p] {
				unoccupied = append(unoccupied, p)
			}
		}
	}
	return unoccupied
}

func (r *StandardRuleset) getEvenUnoccupiedPoints(b *BoardState) []Point {
	unoccupied := r.getUnoccupiedPoints(b)
	var even []Point
	for _, p := range unoccupied {
		if (p.X+p.Y)%2 == 0 {
			even = append(even, p)
		}
	}
	return even
}

// maybeEliminateSnakes runs the two elimination sub-phases described in
// §4.4: sub-phase A mutates self-only causes immediately, sub-phase B
// collects collision causes into a side table and applies them atomically,
// so an OutOfHealth/OutOfBounds snake this turn cannot cause or suffer a
// collision elimination.
func (r *StandardRuleset) maybeEliminateSnakes(b *BoardState) error {
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		if snake.Eliminated() {
			continue
		}
		if len(snake.Body) == 0 {
			return &ZeroLengthSnakeError{SnakeID: r.pool().String(snake.ID)}
		}
		if snake.Health <= 0 {
			snake.EliminatedCause = EliminatedCause{Kind: OutOfHealth}
		} else if r.snakeIsOutOfBounds(snake, b.Width, b.Height) {
			snake.EliminatedCause = EliminatedCause{Kind: OutOfBounds}
		}
	}

	byLength := make([]int, len(b.Snakes))
	for i := range byLength {
		byLength[i] = i
	}
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(b.Snakes[byLength[i]].Body) > len(b.Snakes[byLength[j]].Body)
	})

	tags := make([]EliminatedCause, len(b.Snakes))
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		if snake.Eliminated() {
			continue
		}

		if r.snakeHasBodyCollided(snake, snake) {
			tags[i] = EliminatedCause{Kind: SelfCollision, By: snake.ID}
			continue
		}

		collided := false
		for _, oi := range byLength {
			other := &b.Snakes[oi]
			if other.ID == snake.ID || other.Eliminated() {
				continue
			}
			if r.snakeHasBodyCollided(snake, other) {
				tags[i] = EliminatedCause{Kind: Collision, By: other.ID}
				collided = true
				break
			}
		}
		if collided {
			continue
		}

		for _, oi := range byLength {
			other := &b.Snakes[oi]
			if other.ID == snake.ID || other.Eliminated() {
				continue
			}
			if r.snakeHasLostHeadToHead(snake, other) {
				tags[i] = EliminatedCause{Kind: HeadToHeadCollision, By: other.ID}
				break
			}
		}
	}

	for i := range b.Snakes {
		if tags[i].Eliminated() {
			b.Snakes[i].EliminatedCause = tags[i]
		}
	}
	return nil
}

func (r *StandardRuleset) snakeIsOutOfBounds(s *Snake, width, height Coordinate) bool {
	for _, p := range s.Body {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return true
		}
	}
	return false
}

func (r *StandardRuleset) snakeHasBodyCollided(s, other *Snake) bool {
	head := s.Head()
	for i, p := range other.Body {
		if i == 0 {
			continue
		}
		if p == head {
			return true
		}
	}
	return false
}

func (r *StandardRuleset) snakeHasLostHeadToHead(s, other *Snake) bool {
	return s.Head() == other.Head() && s.Length() <= other.Length()
}

// IsGameOver reports true once at most one snake remains non-eliminated.
func (r *StandardRuleset) IsGameOver(b *BoardState) bool {
	return b.nonEliminatedCount() <= 1
}
