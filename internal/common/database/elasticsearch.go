// internal/common/database/elasticsearch.go
package database

import (
	"context"
	"fmt"
	"time"

	"evea-matching/internal/common/config"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchClient wraps the Elasticsearch client together with the
// listings index the engine reads from.
type ElasticsearchClient struct {
	Client        *elasticsearch.Client
	ListingsIndex string
}

// NewElasticsearch creates a client for the catalogue cluster.
func NewElasticsearch(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
	}
	if cfg.Username != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &ElasticsearchClient{
		Client:        es,
		ListingsIndex: cfg.ListingsIndex,
	}, nil
}

// Ping tests cluster reachability.
func (c *ElasticsearchClient) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := c.Client.Ping(c.Client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}
	return nil
}

// CheckListingsIndex verifies the configured listings index exists, so a
// misconfigured deployment fails at boot instead of serving empty
// catalogues.
func (c *ElasticsearchClient) CheckListingsIndex(ctx context.Context) error {
	res, err := c.Client.Indices.Exists(
		[]string{c.ListingsIndex},
		c.Client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("check listings index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return fmt.Errorf("listings index %q does not exist", c.ListingsIndex)
	}
	if res.IsError() {
		return fmt.Errorf("check listings index: %s", res.Status())
	}
	return nil
}
