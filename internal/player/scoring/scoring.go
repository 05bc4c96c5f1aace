// Package scoring ranks players for auto-pick fallback selection.
package scoring

import (
	"sort"

	"github.com/rsheln/combine-draft/internal/player/model"
)

// Provider resolves a comparable score for a player. Players without an
// evaluated composite score rank below every scored player.
type Provider interface {
	CompositeScore(player model.Player) float64
}

// CompositeProvider scores players by their stored composite score.
type CompositeProvider struct{}

// NewCompositeProvider creates the default score provider.
func NewCompositeProvider() *CompositeProvider {
	return &CompositeProvider{}
}

// CompositeScore returns the player's composite score, or -1 when the
// player was never evaluated so unscored players sort last.
func (CompositeProvider) CompositeScore(player model.Player) float64 {
	if player.CompositeScore == nil {
		return -1
	}
	return *player.CompositeScore
}

// Rank returns players ordered best-first: descending score, with ties
// broken by ascending player ID for deterministic results.
func Rank(players []model.Player, provider Provider) []model.Player {
	ranked := make([]model.Player, len(players))
	copy(ranked, players)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := provider.CompositeScore(ranked[i]), provider.CompositeScore(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
