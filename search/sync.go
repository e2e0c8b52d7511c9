package search

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/distropop"
)

// Syncer refreshes the catalog from the DistroWatch home page.
type Syncer struct {
	Fetcher    distropop.Fetcher
	Parser     distropop.CatalogParser
	Candidates distropop.CandidateService
	BaseURL    string
}

// SyncResult holds the outcome of a catalog sync.
type SyncResult struct {
	Count     int
	Checksum  string
	Unchanged bool
}

// Sync fetches the home page and replaces the catalog when its content
// changed since the last sync.
func (s *Syncer) Sync(ctx context.Context) (*SyncResult, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = distropop.DefaultBaseURL
	}

	html, err := s.Fetcher.Fetch(ctx, distropop.HomeURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("fetch home page: %w", err)
	}

	candidates, err := s.Parser.ParseCatalog(html)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(candidates) == 0 {
		return nil, distropop.Errorf(distropop.ESTRUCTURE, "home page lists no distributions")
	}

	sum := Checksum(candidates)
	result := &SyncResult{Count: len(candidates), Checksum: sum}

	current, err := s.Candidates.CatalogChecksum(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog checksum: %w", err)
	}
	if current == sum {
		result.Unchanged = true
		return result, nil
	}

	if err := s.Candidates.ReplaceCandidates(ctx, candidates, sum); err != nil {
		return nil, fmt.Errorf("replace catalog: %w", err)
	}

	return result, nil
}

// Checksum computes an order-sensitive hash of the catalog using xxhash.
func Checksum(candidates []distropop.Candidate) string {
	h := xxhash.New()
	for _, c := range candidates {
		_, _ = h.WriteString(c.LookupKey)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(c.DisplayName)
		_, _ = h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", h.Sum64())
}
