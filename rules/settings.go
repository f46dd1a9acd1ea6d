package rules

import "log/slog"

// GameType selects which Ruleset variant NewRuleset (or RulesetBuilder)
// produces. The string values match the ruleset names used throughout the
// wider Battlesnake ecosystem (game server settings, replay files).
type GameType string

const (
	GameTypeStandard    GameType = "standard"
	GameTypeSolo        GameType = "solo"
	GameTypeConstrictor GameType = "constrictor"
	GameTypeRoyale      GameType = "royale"
	GameTypeSquad       GameType = "squad"
	GameTypeWrapped     GameType = "wrapped"
)

// Board sizes that trigger the deterministic fixed-position placement
// algorithm; any other size uses randomized even-parity placement.
const (
	BoardSizeSmall  Coordinate = 7
	BoardSizeMedium Coordinate = 11
	BoardSizeLarge  Coordinate = 19
)

// Config holds the fixed per-snake constants that apply regardless of game
// type.
type Config struct {
	// SnakeMaxHealth is both a snake's starting health and what feeding
	// resets it to.
	SnakeMaxHealth int
	// SnakeStartSize is the number of overlapping body segments a snake is
	// placed with at turn 0.
	SnakeStartSize int
}

// DefaultConfig returns the constants the teacher package hardcoded
// (SnakeMaxHealth = 100, SnakeStartSize = 3).
func DefaultConfig() Config {
	return Config{
		SnakeMaxHealth: 100,
		SnakeStartSize: 3,
	}
}

// RoyaleSettings configures the RoyaleRuleset hazard border.
type RoyaleSettings struct {
	// ShrinkEveryNTurns is how often (in turns) the safe inset shrinks by
	// one cell on a random side.
	ShrinkEveryNTurns int
	// ExtraDamagePerTurn is subtracted from a snake's health, in place of
	// (not on top of) the normal per-turn decrement, when its head is
	// outside the safe inset.
	ExtraDamagePerTurn int
}

// DefaultRoyaleSettings returns the values the original ruleset ships with.
func DefaultRoyaleSettings() RoyaleSettings {
	return RoyaleSettings{
		ShrinkEveryNTurns:  25,
		ExtraDamagePerTurn: 15,
	}
}

// SquadSettings configures the SquadRuleset overlay.
type SquadSettings struct {
	// Squads maps a snake's ID to its squad label ID. Snakes without an
	// entry map to ID(0), the interned empty string. SquadRuleset does not
	// consult this map: it groups snakes by each Snake's own Squad field.
	Squads map[ID]ID

	AllowBodyCollisions bool
	SharedElimination   bool
	SharedHealth        bool
	SharedLength        bool
}

func (s SquadSettings) squadOf(id ID) ID {
	return s.Squads[id]
}

// Settings bundles the per-turn tunables shared by every variant plus the
// variant-specific nested settings. The zero Settings{} is not the same as
// DefaultSettings(): with FoodSpawnChance and MinimumFood both zero the
// standard pipeline never spawns food, so callers are expected to start
// from DefaultSettings and override.
type Settings struct {
	// FoodSpawnChance is a percentage in [0, 100]: the chance, each turn,
	// that a single food is spawned once the minimum is already met.
	FoodSpawnChance int
	// MinimumFood is the food count maybeSpawnFood tops the board up to
	// before consulting FoodSpawnChance.
	MinimumFood int
	// HazardDamagePerTurn is consulted by WrappedRuleset for its explicit
	// hazard set; RoyaleRuleset uses RoyaleSettings.ExtraDamagePerTurn
	// instead, since its hazard region is computed, not stored per-cell.
	HazardDamagePerTurn int

	Royale RoyaleSettings
	Squad  SquadSettings
}

// DefaultSettings returns the values teacher hardcoded as package consts
// (FoodSpawnChance = 15, MinimumFood = 1) plus the variant defaults.
func DefaultSettings() Settings {
	return Settings{
		FoodSpawnChance:     15,
		MinimumFood:         1,
		HazardDamagePerTurn: 14,
		Royale:              DefaultRoyaleSettings(),
		Squad:               SquadSettings{},
	}
}

// Ruleset is the variant-selectable contract spec.md §6 describes: build an
// initial board, advance it one turn, and decide whether the game is over.
type Ruleset interface {
	CreateInitialBoardState(width, height Coordinate, snakeIDs []string) (*BoardState, error)
	CreateNextBoardState(prev *BoardState, moves []SnakeMove, turn int) (*BoardState, error)
	IsGameOver(b *BoardState) bool
}

// NewRuleset is the variant selector: it builds the concrete Ruleset value
// for gameType, sharing pool and settings across every variant so callers
// don't need a type switch of their own.
func NewRuleset(gameType GameType, pool *Pool, config Config, settings Settings) (Ruleset, error) {
	base := StandardRuleset{
		Pool:     poolOrDefault(pool),
		Config:   config,
		Settings: settings,
		Random:   defaultRandomSource(),
	}

	switch gameType {
	case GameTypeStandard, "":
		return &base, nil
	case GameTypeSolo:
		return &SoloRuleset{StandardRuleset: base}, nil
	case GameTypeConstrictor:
		return &ConstrictorRuleset{StandardRuleset: base}, nil
	case GameTypeRoyale:
		return &RoyaleRuleset{StandardRuleset: base}, nil
	case GameTypeWrapped:
		base.Wrapped = true
		return &WrappedRuleset{StandardRuleset: base}, nil
	case GameTypeSquad:
		return &SquadRuleset{StandardRuleset: base}, nil
	default:
		return nil, &UnknownGameTypeError{GameType: gameType}
	}
}

// UnknownGameTypeError is returned by NewRuleset/RulesetBuilder.Ruleset for
// a GameType with no matching variant.
type UnknownGameTypeError struct {
	GameType GameType
}

func (e *UnknownGameTypeError) Error() string {
	return "unknown game type: " + string(e.GameType)
}

// RulesetBuilder assembles a Ruleset from a fluent sequence of calls,
// mirroring the upstream CLI's rules.NewRulesetBuilder().WithSeed(...)
// .WithParams(...).WithSolo(...).Ruleset() shape.
type RulesetBuilder struct {
	gameType GameType
	pool     *Pool
	config   Config
	settings Settings
	random   RandomSource
	logger   *slog.Logger
}

// NewRulesetBuilder returns a builder pre-populated with DefaultConfig and
// DefaultSettings.
func NewRulesetBuilder() *RulesetBuilder {
	return &RulesetBuilder{
		gameType: GameTypeStandard,
		config:   DefaultConfig(),
		settings: DefaultSettings(),
	}
}

func (b *RulesetBuilder) WithGameType(gameType GameType) *RulesetBuilder {
	b.gameType = gameType
	return b
}

// WithSolo is a convenience matching the upstream builder: it switches the
// game type to solo when given true, and leaves it untouched otherwise (so
// WithSolo(len(urls) < 2) reads naturally at the call site).
func (b *RulesetBuilder) WithSolo(solo bool) *RulesetBuilder {
	if solo {
		b.gameType = GameTypeSolo
	}
	return b
}

func (b *RulesetBuilder) WithPool(pool *Pool) *RulesetBuilder {
	b.pool = pool
	return b
}

func (b *RulesetBuilder) WithConfig(config Config) *RulesetBuilder {
	b.config = config
	return b
}

func (b *RulesetBuilder) WithSettings(settings Settings) *RulesetBuilder {
	b.settings = settings
	return b
}

// WithRandom injects a deterministic RandomSource, almost always used from
// tests.
func (b *RulesetBuilder) WithRandom(random RandomSource) *RulesetBuilder {
	b.random = random
	return b
}

// WithLogger overrides the Ruleset's log/slog.Logger. Left unset, the
// Ruleset falls back to slog.Default() the first time it logs.
func (b *RulesetBuilder) WithLogger(logger *slog.Logger) *RulesetBuilder {
	b.logger = logger
	return b
}

// Ruleset builds the configured variant.
func (b *RulesetBuilder) Ruleset() (Ruleset, error) {
	rs, err := NewRuleset(b.gameType, b.pool, b.config, b.settings)
	if err != nil {
		return nil, err
	}
	if b.random != nil {
		setRandom(rs, b.random)
	}
	if b.logger != nil {
		setLogger(rs, b.logger)
	}
	return rs, nil
}

// setRandom reaches into whichever concrete variant rs is to override its
// embedded StandardRuleset's RandomSource.
func setRandom(rs Ruleset, random RandomSource) {
	switch v := rs.(type) {
	case *StandardRuleset:
		v.Random = random
	case *SoloRuleset:
		v.Random = random
	case *ConstrictorRuleset:
		v.Random = random
	case *RoyaleRuleset:
		v.Random = random
	case *WrappedRuleset:
		v.Random = random
	case *SquadRuleset:
		v.Random = random
	}
}

// setLogger reaches into whichever concrete variant rs is to override its
// embedded StandardRuleset's Logger.
func setLogger(rs Ruleset, logger *slog.Logger) {
	switch v := rs.(type) {
	case *StandardRuleset:
		v.Logger = logger
	case *SoloRuleset:
		v.Logger = logger
	case *ConstrictorRuleset:
		v.Logger = logger
	case *RoyaleRuleset:
		v.Logger = logger
	case *WrappedRuleset:
		v.Logger = logger
	case *SquadRuleset:
		v.Logger = logger
	}
}
