// Package goquery implements distropop page parsers on top of goquery
// CSS selection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distropop"
)

// TitleMarker selects the title cell of the DistroWatch statistics table.
// It is the only stable anchor on the detail page.
const TitleMarker = ".TablesTitle"

// Ensure Extractor implements distropop.Extractor at compile time.
var _ distropop.Extractor = (*Extractor)(nil)

// Extractor reads popularity records from DistroWatch detail pages.
type Extractor struct {
	marker string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMarker overrides the selector of the statistics table title.
func WithMarker(selector string) ExtractorOption {
	return func(e *Extractor) {
		e.marker = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{marker: TitleMarker}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the detail page and returns its popularity record.
func (e *Extractor) Extract(html string) (*distropop.PopularityRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, distropop.Errorf(distropop.ESTRUCTURE, "failed to parse HTML: %v", err)
	}

	text, err := StatsText(doc, e.marker)
	if err != nil {
		return nil, err
	}

	return distropop.ParseStats(text)
}

// StatsText flattens the statistics table into one string: the text
// content of every element that contains a marker element.
// Returns ESTRUCTURE if the marker is not present.
func StatsText(doc *goquery.Document, marker string) (string, error) {
	sel := doc.Find(marker)
	if sel.Length() == 0 {
		return "", distropop.Errorf(distropop.ESTRUCTURE, "no %q element in page", marker)
	}
	return sel.Parent().Text(), nil
}
