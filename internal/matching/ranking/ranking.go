// internal/matching/ranking/ranking.go

// Package ranking aggregates criterion scores into overall scores and
// produces the final ordered, truncated result list.
package ranking

import (
	"sort"

	"evea-matching/internal/models"
)

// DefaultMaxResults caps the ranked output when no explicit limit is
// configured.
const DefaultMaxResults = 20

// ScoredCandidate pairs one vendor's criterion scores with the vendor's
// declared weights and its stable tie-break rank from the candidate
// filter.
type ScoredCandidate struct {
	VendorID     string
	Scores       models.CriterionScores
	Weights      models.AlgorithmWeights
	MatchReasons []string
	CorpusRank   int
}

// OverallScore is the weighted sum of the six criterion scores using
// the vendor's own declared weights. Weights are relative contributions
// and are never normalized, so overall scores are only rank-comparable
// within a single recommendation run.
func OverallScore(scores models.CriterionScores, weights models.AlgorithmWeights) float64 {
	return scores.Budget*weights.Price +
		scores.Location*weights.Location +
		scores.Rating*weights.Rating +
		scores.Availability*weights.Availability +
		scores.Experience*weights.Experience +
		scores.Style*weights.Style
}

// Rank sorts candidates by overall score descending and truncates to
// maxResults. Ties keep candidate-filter order, so repeated calls over
// the same snapshot return byte-identical output.
func Rank(candidates []ScoredCandidate, maxResults int) []models.RecommendationResult {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	ordered := make([]ScoredCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		si := OverallScore(ordered[i].Scores, ordered[i].Weights)
		sj := OverallScore(ordered[j].Scores, ordered[j].Weights)
		if si != sj {
			return si > sj
		}
		return ordered[i].CorpusRank < ordered[j].CorpusRank
	})

	if len(ordered) > maxResults {
		ordered = ordered[:maxResults]
	}

	results := make([]models.RecommendationResult, 0, len(ordered))
	for _, c := range ordered {
		results = append(results, models.RecommendationResult{
			VendorID:        c.VendorID,
			OverallScore:    OverallScore(c.Scores, c.Weights),
			CriterionScores: c.Scores.ToMap(),
			MatchReasons:    c.MatchReasons,
		})
	}
	return results
}
