package mock

import (
	"context"

	"github.com/fwojciec/distropop"
)

var _ distropop.CandidateService = (*CandidateService)(nil)

// CandidateService is a mock implementation of distropop.CandidateService.
type CandidateService struct {
	FindCandidatesFn     func(ctx context.Context, filter distropop.CandidateFilter) ([]*distropop.Candidate, error)
	FindCandidateByKeyFn func(ctx context.Context, key string) (*distropop.Candidate, error)
	ReplaceCandidatesFn  func(ctx context.Context, candidates []distropop.Candidate, checksum string) error
	CatalogChecksumFn    func(ctx context.Context) (string, error)
}

func (s *CandidateService) FindCandidates(ctx context.Context, filter distropop.CandidateFilter) ([]*distropop.Candidate, error) {
	return s.FindCandidatesFn(ctx, filter)
}

func (s *CandidateService) FindCandidateByKey(ctx context.Context, key string) (*distropop.Candidate, error) {
	return s.FindCandidateByKeyFn(ctx, key)
}

func (s *CandidateService) ReplaceCandidates(ctx context.Context, candidates []distropop.Candidate, checksum string) error {
	return s.ReplaceCandidatesFn(ctx, candidates, checksum)
}

func (s *CandidateService) CatalogChecksum(ctx context.Context) (string, error) {
	return s.CatalogChecksumFn(ctx)
}

var _ distropop.CatalogParser = (*CatalogParser)(nil)

// CatalogParser is a mock implementation of distropop.CatalogParser.
type CatalogParser struct {
	ParseCatalogFn func(html string) ([]distropop.Candidate, error)
}

func (p *CatalogParser) ParseCatalog(html string) ([]distropop.Candidate, error) {
	return p.ParseCatalogFn(html)
}
