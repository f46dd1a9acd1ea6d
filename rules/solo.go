package rules

// SoloRuleset is the Standard pipeline with the termination predicate
// loosened: a solo game only ends once every snake is gone, not once one
// remains.
type SoloRuleset struct {
	StandardRuleset
}

// IsGameOver reports true once no snakes remain non-eliminated.
func (r *SoloRuleset) IsGameOver(b *BoardState) bool {
	return b.nonEliminatedCount() == 0
}
