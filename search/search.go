// Package search answers distribution queries. It matches the query against
// the catalog, fetches and extracts every matching detail page concurrently,
// and ranks the results by their 6-month popularity.
package search

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/fwojciec/distropop"
	"golang.org/x/sync/errgroup"
)

// MaxCandidates caps the number of catalog matches looked up per query.
const MaxCandidates = 10

// DefaultConcurrency is the number of pipelines run at once. It equals
// MaxCandidates, so a full batch runs without waiting for free slots.
const DefaultConcurrency = MaxCandidates

// Searcher runs the fetch and extract pipeline for query candidates.
type Searcher struct {
	Candidates  distropop.CandidateService
	Fetcher     distropop.Fetcher
	Extractor   distropop.Extractor
	RateLimiter distropop.HostLimiter // optional
	BaseURL     string
	Concurrency int
}

// Search returns ranked results for catalog entries whose name contains term.
// A term without matches yields no results and no error.
// Returns EINVALID for an empty term.
func (s *Searcher) Search(ctx context.Context, term string) ([]distropop.QueryResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, distropop.Errorf(distropop.EINVALID, "search term required")
	}

	matches, err := s.Candidates.FindCandidates(ctx, distropop.CandidateFilter{
		NameContains: &term,
		Limit:        MaxCandidates,
	})
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	if len(matches) > MaxCandidates {
		matches = matches[:MaxCandidates]
	}

	candidates := make([]distropop.Candidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, *m)
	}

	results := s.Lookup(ctx, candidates)
	Rank(results)
	return results, nil
}

// Lookup runs one pipeline per candidate and waits for all of them.
// The i-th result always belongs to the i-th candidate. Failures of a single
// pipeline never fail the batch: they produce an absent result instead.
func (s *Searcher) Lookup(ctx context.Context, candidates []distropop.Candidate) []distropop.QueryResult {
	results := make([]distropop.QueryResult, len(candidates))

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			results[i] = s.lookupOne(ctx, candidate)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// lookupOne fetches and extracts a single candidate's detail page.
func (s *Searcher) lookupOne(ctx context.Context, candidate distropop.Candidate) distropop.QueryResult {
	result := distropop.QueryResult{Candidate: candidate}

	if err := candidate.Validate(); err != nil {
		result.Err = err
		return result
	}

	detailURL := distropop.DetailURL(s.baseURL(), candidate.LookupKey)

	if s.RateLimiter != nil {
		u, err := url.Parse(detailURL)
		if err != nil {
			result.Err = distropop.Errorf(distropop.ETRANSPORT, "invalid detail URL %q: %v", detailURL, err)
			return result
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.Err = distropop.Errorf(distropop.ETRANSPORT, "rate limit wait: %v", err)
			return result
		}
	}

	html, err := s.Fetcher.Fetch(ctx, detailURL)
	if err != nil {
		result.Err = err
		return result
	}

	record, err := s.Extractor.Extract(html)
	if err != nil {
		result.Err = err
		return result
	}

	result.Popularity = record
	return result
}

func (s *Searcher) baseURL() string {
	if s.BaseURL == "" {
		return distropop.DefaultBaseURL
	}
	return s.BaseURL
}

// Rank sorts results by 6-month rank, best first. Absent results and ranks
// that are not numbers go last, keeping their relative order.
func Rank(results []distropop.QueryResult) {
	slices.SortStableFunc(results, func(a, b distropop.QueryResult) int {
		ra, okA := sixMonthRank(a)
		rb, okB := sixMonthRank(b)
		switch {
		case okA && okB:
			return cmp.Compare(ra, rb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

// sixMonthRank returns the numeric 6-month rank of a populated result.
func sixMonthRank(r distropop.QueryResult) (int, bool) {
	if r.Absent() {
		return 0, false
	}
	raw := r.Popularity.Metric(distropop.Window6Months).Rank
	n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}
