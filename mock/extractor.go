package mock

import "github.com/fwojciec/distropop"

var _ distropop.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of distropop.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*distropop.PopularityRecord, error)
}

func (e *Extractor) Extract(html string) (*distropop.PopularityRecord, error) {
	return e.ExtractFn(html)
}
