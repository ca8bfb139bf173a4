// Package catalog fetches the product catalog at startup. The source is a
// JSON document — an http(s) URL or a local file path — with the shape
// [{"id": ..., "name": ..., "price": ...}] in display order.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderboard/orderboard/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Loader struct {
	source  string
	client  *http.Client
	timeout time.Duration
	logger  zerolog.Logger
}

// NewLoader builds a Loader for the given source. A default timeout is
// applied when none is provided.
func NewLoader(source string, timeout time.Duration, logger zerolog.Logger) *Loader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Loader{
		source:  source,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}
}

// Load fetches and parses the catalog. On any fetch or parse failure it logs
// the cause and returns an empty catalog so the caller can serve a degraded
// no-products state instead of failing startup.
func (l *Loader) Load(ctx context.Context) domain.Catalog {
	raw, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error().Err(err).Str("source", l.source).Msg("catalog load failed, serving empty catalog")
		return domain.Catalog{}
	}

	var products domain.Catalog
	if err := json.Unmarshal(raw, &products); err != nil {
		l.logger.Error().Err(err).Str("source", l.source).Msg("catalog parse failed, serving empty catalog")
		return domain.Catalog{}
	}

	l.logger.Info().Int("products", len(products)).Str("source", l.source).Msg("catalog loaded")
	return products
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetchHTTP(ctx)
	}
	return os.ReadFile(l.source)
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
