// internal/recommender/service.go

// Package recommender is the public entry point of the matching engine:
// one Recommend call runs filtering, scoring, ranking and explanation
// over a snapshot of the vendor stores.
package recommender

import (
	"context"
	"fmt"
	"time"

	"evea-matching/internal/common/errors"
	"evea-matching/internal/common/logger"
	"evea-matching/internal/common/metrics"
	"evea-matching/internal/common/observability"
	"evea-matching/internal/common/validation"
	"evea-matching/internal/matching/explain"
	"evea-matching/internal/matching/filter"
	"evea-matching/internal/matching/ranking"
	"evea-matching/internal/matching/scoring"
	"evea-matching/internal/models"
	"evea-matching/internal/store"

	"github.com/google/uuid"
)

type Service struct {
	config    *Config
	profiles  store.ProfileStore
	catalogue store.CatalogueStore
	obs       *observability.Observability
	logger    logger.Logger
}

func NewService(config *Config, profiles store.ProfileStore, catalogue store.CatalogueStore, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		config:    config,
		profiles:  profiles,
		catalogue: catalogue,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"component": "recommender"}),
	}
}

// Recommend produces the ranked vendor shortlist for one event request.
// The call is all-or-nothing: a failed store read surfaces as a
// retryable error and no partial ranking is ever returned. Zero
// candidates is a successful, empty response.
func (s *Service) Recommend(ctx context.Context, request *models.EventRequest) (*models.Recommendation, error) {
	requestID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{"requestId": requestID})
	start := time.Now()

	if missing := ValidateRequest(request); len(missing) > 0 {
		log.Warn("invalid event request", map[string]interface{}{
			"missingFields": missing,
		})
		s.record(ctx, start, request, "invalid_request")
		return nil, errors.NewInvalidRequestError(missing)
	}

	log.Info("processing recommendation request", map[string]interface{}{
		"eventType":  request.EventType,
		"location":   request.Location,
		"guestCount": request.GuestCount,
	})

	corpus, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		log.Error("profile store read failed", map[string]interface{}{
			"error": err.Error(),
		})
		s.record(ctx, start, request, "dependency_unavailable")
		return nil, errors.NewProfileStoreUnavailableError(err)
	}

	candidates := filter.SelectCandidates(request, corpus)
	if len(candidates) == 0 {
		log.Info("no candidates after filtering", map[string]interface{}{
			"corpusSize": len(corpus),
		})
		s.record(ctx, start, request, "success")
		return &models.Recommendation{
			CandidateCount: 0,
			Results:        []models.RecommendationResult{},
		}, nil
	}

	vendorIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		vendorIDs = append(vendorIDs, c.Profile.VendorID)
	}

	listings, err := s.catalogue.ListingsByVendorIDs(ctx, vendorIDs, request.ServiceCategories)
	if err != nil {
		log.Error("catalogue store read failed", map[string]interface{}{
			"error": err.Error(),
		})
		s.record(ctx, start, request, "dependency_unavailable")
		return nil, errors.NewCatalogueStoreUnavailableError(err)
	}

	scored := s.scoreCandidates(request, candidates, listings, log)

	if err := ctx.Err(); err != nil {
		s.record(ctx, start, request, "cancelled")
		return nil, err
	}

	results := ranking.Rank(scored, s.config.MaxResults)

	log.Info("recommendation computed", map[string]interface{}{
		"candidateCount": len(scored),
		"resultCount":    len(results),
		"durationMs":     time.Since(start).Milliseconds(),
	})
	s.record(ctx, start, request, "success")

	return &models.Recommendation{
		CandidateCount: len(scored),
		Results:        results,
	}, nil
}

// scoreCandidates fans candidates out over a bounded worker pool.
// Scorers are pure, so concurrent and sequential execution produce
// identical output; results land in an index-addressed slice to keep
// the stable candidate order. A malformed profile is logged and skipped
// and never fails the run.
func (s *Service) scoreCandidates(request *models.EventRequest, candidates []filter.Candidate, listings map[string][]models.VendorServiceListing, log logger.Logger) []ranking.ScoredCandidate {
	slots := make([]*ranking.ScoredCandidate, len(candidates))

	concurrency := s.config.ScoringConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	done := make(chan int, len(candidates))

	for i := range candidates {
		sem <- struct{}{}
		go func(idx int) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("candidate scoring panicked, vendor excluded", map[string]interface{}{
						"vendorId": candidates[idx].Profile.VendorID,
						"panic":    fmt.Sprint(r),
					})
					metrics.CandidatesSkipped.WithLabelValues("scoring_panic").Inc()
				}
				<-sem
				done <- idx
			}()
			slots[idx] = s.scoreOne(request, &candidates[idx], listings, log)
		}(i)
	}
	for range candidates {
		<-done
	}

	scored := make([]ranking.ScoredCandidate, 0, len(candidates))
	for _, slot := range slots {
		if slot != nil {
			scored = append(scored, *slot)
		}
	}
	return scored
}

// scoreOne validates and scores a single candidate. A nil return means
// the candidate was excluded.
func (s *Service) scoreOne(request *models.EventRequest, candidate *filter.Candidate, listings map[string][]models.VendorServiceListing, log logger.Logger) *ranking.ScoredCandidate {
	profile := &candidate.Profile

	result, err := validation.ValidateProfile(profile)
	if err != nil {
		log.Error("profile validation errored, vendor excluded", map[string]interface{}{
			"vendorId": profile.VendorID,
			"error":    err.Error(),
		})
		metrics.CandidatesSkipped.WithLabelValues("validation_error").Inc()
		return nil
	}
	if !result.Valid {
		malformed := errors.NewMalformedProfileError(profile.VendorID, result.Describe())
		log.Warn("malformed vendor profile excluded", map[string]interface{}{
			"vendorId": profile.VendorID,
			"details":  malformed.Details,
		})
		metrics.CandidatesSkipped.WithLabelValues("malformed_profile").Inc()
		return nil
	}

	scores := scoring.ScoreCandidate(request, profile, candidate.ExactCity, listings[profile.VendorID])
	metrics.CandidatesScored.WithLabelValues(string(request.EventType)).Inc()

	return &ranking.ScoredCandidate{
		VendorID:     profile.VendorID,
		Scores:       scores,
		Weights:      profile.Weights,
		MatchReasons: explain.MatchReasons(request, profile, scores),
		CorpusRank:   candidate.CorpusRank,
	}
}

func (s *Service) record(ctx context.Context, start time.Time, request *models.EventRequest, outcome string) {
	metrics.RecommendationRequests.WithLabelValues(outcome).Inc()
	metrics.RecommendationDuration.WithLabelValues(string(request.EventType)).Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordRequest(ctx, outcome)
		s.obs.RecordDuration(ctx, time.Since(start), outcome)
	}
}
