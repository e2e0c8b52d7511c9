package distropop

import "context"

// Candidate identifies one distribution being queried.
type Candidate struct {
	DisplayName string `json:"displayName"`
	LookupKey   string `json:"lookupKey"`
}

// Validate returns an error if the candidate contains invalid fields.
func (c *Candidate) Validate() error {
	if c.DisplayName == "" {
		return Errorf(EINVALID, "candidate display name required")
	}
	if c.LookupKey == "" {
		return Errorf(EINVALID, "candidate lookup key required")
	}
	return nil
}

// CandidateService represents the catalog of known distributions.
type CandidateService interface {
	// FindCandidates retrieves candidates matching the filter in catalog order.
	FindCandidates(ctx context.Context, filter CandidateFilter) ([]*Candidate, error)

	// FindCandidateByKey retrieves a candidate by its lookup key.
	// Returns ENOTFOUND if the candidate does not exist.
	FindCandidateByKey(ctx context.Context, key string) (*Candidate, error)

	// ReplaceCandidates atomically replaces the whole catalog.
	// The slice order becomes the catalog order.
	ReplaceCandidates(ctx context.Context, candidates []Candidate, checksum string) error

	// CatalogChecksum returns the checksum stored by the last ReplaceCandidates.
	// Returns an empty string for a catalog that was never synced.
	CatalogChecksum(ctx context.Context) (string, error)
}

// CandidateFilter represents a filter for FindCandidates.
type CandidateFilter struct {
	// NameContains matches display names case-insensitively.
	NameContains *string `json:"nameContains"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CatalogParser reads the list of known distributions from a page.
type CatalogParser interface {
	// ParseCatalog returns candidates in page order without duplicates.
	ParseCatalog(html string) ([]Candidate, error)
}
