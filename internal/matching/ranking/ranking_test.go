// internal/matching/ranking/ranking_test.go
package ranking

import (
	"fmt"
	"testing"

	"evea-matching/internal/models"

	"github.com/stretchr/testify/assert"
)

func uniformWeights(w float64) models.AlgorithmWeights {
	return models.AlgorithmWeights{
		Price:        w,
		Location:     w,
		Rating:       w,
		Availability: w,
		Experience:   w,
		Style:        w,
	}
}

func TestOverallScore(t *testing.T) {
	scores := models.CriterionScores{
		Budget:       10,
		Location:     10,
		Rating:       4.5,
		Availability: 7,
		Experience:   8,
		Style:        5,
	}
	weights := models.AlgorithmWeights{
		Price:        0.25,
		Location:     0.20,
		Rating:       0.20,
		Availability: 0.15,
		Experience:   0.10,
		Style:        0.10,
	}

	// 10*0.25 + 10*0.20 + 4.5*0.20 + 7*0.15 + 8*0.10 + 5*0.10 = 7.75
	assert.InDelta(t, 7.75, OverallScore(scores, weights), 1e-9)
}

func TestOverallScore_WeightsNotNormalized(t *testing.T) {
	scores := models.CriterionScores{Budget: 10, Location: 10, Rating: 5, Availability: 7, Experience: 5, Style: 5}

	small := OverallScore(scores, uniformWeights(0.1))
	large := OverallScore(scores, uniformWeights(1.0))

	// Same relative weights at a different magnitude change the score.
	assert.InDelta(t, small*10, large, 1e-9)
}

func TestRank_OrdersByOverallScoreDescending(t *testing.T) {
	candidates := []ScoredCandidate{
		{VendorID: "low", Scores: models.CriterionScores{Budget: 5}, Weights: uniformWeights(1), CorpusRank: 0},
		{VendorID: "high", Scores: models.CriterionScores{Budget: 10}, Weights: uniformWeights(1), CorpusRank: 1},
		{VendorID: "mid", Scores: models.CriterionScores{Budget: 8}, Weights: uniformWeights(1), CorpusRank: 2},
	}

	results := Rank(candidates, 0)

	assert.Len(t, results, 3)
	assert.Equal(t, "high", results[0].VendorID)
	assert.Equal(t, "mid", results[1].VendorID)
	assert.Equal(t, "low", results[2].VendorID)
}

func TestRank_TiesKeepCandidateOrder(t *testing.T) {
	same := models.CriterionScores{Budget: 10, Rating: 4}
	candidates := []ScoredCandidate{
		{VendorID: "first", Scores: same, Weights: uniformWeights(1), CorpusRank: 3},
		{VendorID: "second", Scores: same, Weights: uniformWeights(1), CorpusRank: 7},
		{VendorID: "third", Scores: same, Weights: uniformWeights(1), CorpusRank: 9},
	}

	for i := 0; i < 10; i++ {
		results := Rank(candidates, 0)
		assert.Equal(t, "first", results[0].VendorID)
		assert.Equal(t, "second", results[1].VendorID)
		assert.Equal(t, "third", results[2].VendorID)
	}
}

func TestRank_TruncatesToMaxResults(t *testing.T) {
	var candidates []ScoredCandidate
	for i := 0; i < 30; i++ {
		candidates = append(candidates, ScoredCandidate{
			VendorID:   fmt.Sprintf("v%02d", i),
			Scores:     models.CriterionScores{Budget: float64(30 - i)},
			Weights:    uniformWeights(1),
			CorpusRank: i,
		})
	}

	assert.Len(t, Rank(candidates, 5), 5)
	assert.Len(t, Rank(candidates, 0), DefaultMaxResults)
	assert.Len(t, Rank(candidates, 100), 30)

	top := Rank(candidates, 3)
	assert.Equal(t, "v00", top[0].VendorID)
	assert.Equal(t, "v01", top[1].VendorID)
	assert.Equal(t, "v02", top[2].VendorID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	candidates := []ScoredCandidate{
		{VendorID: "a", Scores: models.CriterionScores{Budget: 1}, Weights: uniformWeights(1), CorpusRank: 0},
		{VendorID: "b", Scores: models.CriterionScores{Budget: 9}, Weights: uniformWeights(1), CorpusRank: 1},
	}

	Rank(candidates, 10)

	assert.Equal(t, "a", candidates[0].VendorID)
	assert.Equal(t, "b", candidates[1].VendorID)
}

func TestRank_ResultCarriesScoreBreakdown(t *testing.T) {
	scores := models.CriterionScores{Budget: 10, Location: 6, Rating: 4.5, Availability: 7, Experience: 5, Style: 5}
	candidates := []ScoredCandidate{
		{
			VendorID:     "v1",
			Scores:       scores,
			Weights:      uniformWeights(0.5),
			MatchReasons: []string{"Perfect budget match for your event"},
			CorpusRank:   0,
		},
	}

	results := Rank(candidates, 10)

	assert.Len(t, results, 1)
	assert.Equal(t, "v1", results[0].VendorID)
	assert.InDelta(t, OverallScore(scores, uniformWeights(0.5)), results[0].OverallScore, 1e-9)
	assert.Equal(t, scores.ToMap(), results[0].CriterionScores)
	assert.Equal(t, []string{"Perfect budget match for your event"}, results[0].MatchReasons)
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 10))
	assert.Empty(t, Rank([]ScoredCandidate{}, 10))
}
