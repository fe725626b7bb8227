// internal/store/store.go

// Package store provides read access to the vendor directory and the
// service catalogue. The engine treats both as bulk-readable snapshot
// sources; only approved/active vendors are ever exposed here, enforced
// upstream by the onboarding flow.
package store

import (
	"context"

	"evea-matching/internal/models"
)

// ProfileStore supplies the full corpus of active vendor expertise
// profiles in stable order.
type ProfileStore interface {
	ListProfiles(ctx context.Context) ([]models.VendorExpertiseProfile, error)
}

// CatalogueStore supplies service listings keyed by vendorId. One
// batched read per recommendation call; the engine joins client-side.
type CatalogueStore interface {
	ListingsByVendorIDs(ctx context.Context, vendorIDs []string, categories []string) (map[string][]models.VendorServiceListing, error)
}

// MemoryStore is an in-memory ProfileStore and CatalogueStore used in
// tests and local development.
type MemoryStore struct {
	Profiles []models.VendorExpertiseProfile
	Listings []models.VendorServiceListing
}

func NewMemoryStore(profiles []models.VendorExpertiseProfile, listings []models.VendorServiceListing) *MemoryStore {
	return &MemoryStore{Profiles: profiles, Listings: listings}
}

func (s *MemoryStore) ListProfiles(_ context.Context) ([]models.VendorExpertiseProfile, error) {
	out := make([]models.VendorExpertiseProfile, len(s.Profiles))
	copy(out, s.Profiles)
	return out, nil
}

func (s *MemoryStore) ListingsByVendorIDs(_ context.Context, vendorIDs []string, categories []string) (map[string][]models.VendorServiceListing, error) {
	wanted := make(map[string]bool, len(vendorIDs))
	for _, id := range vendorIDs {
		wanted[id] = true
	}

	out := make(map[string][]models.VendorServiceListing)
	for i := range s.Listings {
		l := s.Listings[i]
		if !wanted[l.VendorID] {
			continue
		}
		if !l.MatchesCategories(categories) {
			continue
		}
		out[l.VendorID] = append(out[l.VendorID], l)
	}
	return out, nil
}
