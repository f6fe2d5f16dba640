package storeclient

import (
	"context"
	"strings"
	"sync"
	"time"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// SearchResult is delivered to the Searcher callback once a query
// resolves.
type SearchResult struct {
	Query    string
	Products []model.Product
	Err      error
}

// Searcher debounces product search input. Each keystroke passes the
// whole query; only the last one within the debounce window reaches
// the server. Every request carries a generation number, and a
// response whose generation is no longer current is discarded, so a
// slow early response can never overwrite a newer one.
type Searcher struct {
	client   *Client
	debounce time.Duration
	deliver  func(SearchResult)
	logger   zerolog.Logger

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
}

// NewSearcher creates a searcher delivering results to the given
// callback. The callback runs on a background goroutine.
func NewSearcher(client *Client, debounce time.Duration, deliver func(SearchResult), logger zerolog.Logger) *Searcher {
	return &Searcher{
		client:   client,
		debounce: debounce,
		deliver:  deliver,
		logger:   logger.With().Str("component", "searcher").Logger(),
	}
}

// Update registers the latest query text. A blank query cancels any
// scheduled request and delivers an empty result immediately.
func (s *Searcher) Update(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.generation++
	generation := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}

	if query == "" {
		s.timer = nil
		s.mu.Unlock()
		s.deliver(SearchResult{Query: ""})
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, generation, query)
	})
	s.mu.Unlock()
}

// Flush fires any scheduled request immediately. Used when the caller
// submits the query explicitly instead of waiting out the debounce.
func (s *Searcher) Flush() {
	s.mu.Lock()
	if s.timer != nil && s.timer.Stop() {
		timer := s.timer
		s.timer = nil
		s.mu.Unlock()
		timer.Reset(0)
		return
	}
	s.mu.Unlock()
}

func (s *Searcher) run(ctx context.Context, generation uint64, query string) {
	products, err := s.client.Products(ctx, ProductQuery{Query: query})

	s.mu.Lock()
	current := s.generation == generation
	s.mu.Unlock()
	if !current {
		// A newer query superseded this one while it was in flight.
		s.logger.Debug().Str("query", query).Msg("discarding superseded search response")
		return
	}

	s.deliver(SearchResult{Query: query, Products: products, Err: err})
}
