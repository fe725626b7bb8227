// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"evea-matching/internal/common/logger"
	"evea-matching/internal/models"

	"github.com/lib/pq"
)

// PostgresProfileStore reads vendor expertise profiles from PostgreSQL.
// Expertise sub-documents are stored as JSONB and unmarshalled
// per column; a broken sub-document leaves the field zero-valued so the
// schema validation downstream can reject the single vendor instead of
// the whole read.
type PostgresProfileStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresProfileStore(db *sql.DB, log logger.Logger) *PostgresProfileStore {
	return &PostgresProfileStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": "postgres-profiles"}),
	}
}

func (s *PostgresProfileStore) ListProfiles(ctx context.Context) ([]models.VendorExpertiseProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT vendor_id, primary_event_types, event_size_expertise, budget_expertise,
		       service_areas, aesthetic_styles, years_of_experience, algorithm_weights
		FROM vendor_expertise_profiles
		WHERE status = 'active'
		ORDER BY created_at, vendor_id`)
	if err != nil {
		return nil, fmt.Errorf("query vendor profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.VendorExpertiseProfile
	for rows.Next() {
		var p models.VendorExpertiseProfile
		var eventTypes, sizeBands, budgetSegments, areas, styles, weights []byte

		err := rows.Scan(&p.VendorID, &eventTypes, &sizeBands, &budgetSegments,
			&areas, &styles, &p.YearsOfExperience, &weights)
		if err != nil {
			return nil, fmt.Errorf("scan vendor profile: %w", err)
		}

		if err := json.Unmarshal(eventTypes, &p.PrimaryEventTypes); err != nil {
			p.PrimaryEventTypes = nil
		}
		if err := json.Unmarshal(sizeBands, &p.SizeBands); err != nil {
			p.SizeBands = [models.SizeBandCount]models.ExpertiseRange{}
		}
		if err := json.Unmarshal(budgetSegments, &p.BudgetSegments); err != nil {
			p.BudgetSegments = [models.BudgetSegmentCount]models.ExpertiseRange{}
		}
		if err := json.Unmarshal(areas, &p.ServiceAreas); err != nil {
			p.ServiceAreas = nil
		}
		if err := json.Unmarshal(styles, &p.AestheticStyles); err != nil {
			p.AestheticStyles = nil
		}
		if err := json.Unmarshal(weights, &p.Weights); err != nil {
			s.logger.Warn("unparseable algorithm weights, vendor will score zero", map[string]interface{}{
				"vendorId": p.VendorID,
			})
			p.Weights = models.AlgorithmWeights{}
		}

		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendor profiles: %w", err)
	}

	return profiles, nil
}

// PostgresCatalogueStore reads vendor service listings from PostgreSQL
// with one batched query per recommendation call.
type PostgresCatalogueStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresCatalogueStore(db *sql.DB, log logger.Logger) *PostgresCatalogueStore {
	return &PostgresCatalogueStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": "postgres-catalogue"}),
	}
}

func (s *PostgresCatalogueStore) ListingsByVendorIDs(ctx context.Context, vendorIDs []string, categories []string) (map[string][]models.VendorServiceListing, error) {
	if len(vendorIDs) == 0 {
		return map[string][]models.VendorServiceListing{}, nil
	}

	query := `
		SELECT vendor_id, category, price, rating, review_count, response_time_hours
		FROM vendor_service_listings
		WHERE vendor_id = ANY($1)`
	args := []interface{}{pq.Array(vendorIDs)}

	if len(categories) > 0 {
		query += ` AND category = ANY($2)`
		args = append(args, pq.Array(categories))
	}
	query += ` ORDER BY vendor_id, category`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vendor listings: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.VendorServiceListing)
	for rows.Next() {
		var l models.VendorServiceListing
		err := rows.Scan(&l.VendorID, &l.Category, &l.Price,
			&l.Metrics.Rating, &l.Metrics.ReviewCount, &l.Metrics.ResponseTimeHours)
		if err != nil {
			return nil, fmt.Errorf("scan vendor listing: %w", err)
		}
		out[l.VendorID] = append(out[l.VendorID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendor listings: %w", err)
	}

	return out, nil
}
