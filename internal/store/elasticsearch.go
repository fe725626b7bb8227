// internal/store/elasticsearch.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"evea-matching/internal/common/logger"
	"evea-matching/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ElasticCatalogueStore reads vendor service listings from an
// Elasticsearch index. It is an alternative CatalogueStore for
// deployments where the catalogue is already indexed for search.
type ElasticCatalogueStore struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewElasticCatalogueStore(client *elasticsearch.Client, index string, log logger.Logger) *ElasticCatalogueStore {
	return &ElasticCatalogueStore{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"store": "elasticsearch-catalogue"}),
	}
}

func (s *ElasticCatalogueStore) ListingsByVendorIDs(ctx context.Context, vendorIDs []string, categories []string) (map[string][]models.VendorServiceListing, error) {
	if len(vendorIDs) == 0 {
		return map[string][]models.VendorServiceListing{}, nil
	}

	queryBody := buildListingsQuery(vendorIDs, categories)
	body, _ := json.Marshal(queryBody)

	size := len(vendorIDs) * 20 // generous upper bound on listings per vendor
	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  strings.NewReader(string(body)),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("search vendor listings: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search vendor listings: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.VendorServiceListing `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode listings response: %w", err)
	}

	out := make(map[string][]models.VendorServiceListing)
	for _, hit := range parsed.Hits.Hits {
		l := hit.Source
		out[l.VendorID] = append(out[l.VendorID], l)
	}
	return out, nil
}

// buildListingsQuery builds the bool query: vendorIds terms filter plus
// an optional category terms filter.
func buildListingsQuery(vendorIDs, categories []string) map[string]interface{} {
	filterClauses := []interface{}{
		map[string]interface{}{
			"terms": map[string]interface{}{"vendorId": vendorIDs},
		},
	}

	if len(categories) > 0 {
		filterClauses = append(filterClauses, map[string]interface{}{
			"terms": map[string]interface{}{"category": categories},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": filterClauses,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"vendorId": map[string]interface{}{"order": "asc"}},
		},
	}
}
