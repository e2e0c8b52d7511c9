package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distropop"
)

// CatalogSelector selects the distribution options on the DistroWatch home page.
const CatalogSelector = `select[name="distribution"] option`

// catalogPlaceholder is the label of the select box's empty choice.
const catalogPlaceholder = "Select Distribution"

// Ensure CatalogParser implements distropop.CatalogParser at compile time.
var _ distropop.CatalogParser = (*CatalogParser)(nil)

// CatalogParser reads the list of distributions from the home page's
// distribution select box.
type CatalogParser struct{}

// NewCatalogParser creates a new CatalogParser.
func NewCatalogParser() *CatalogParser {
	return &CatalogParser{}
}

// ParseCatalog returns one candidate per option, in page order.
// The placeholder option and repeated lookup keys are skipped.
func (p *CatalogParser) ParseCatalog(html string) ([]distropop.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, distropop.Errorf(distropop.EINVALID, "failed to parse HTML: %v", err)
	}

	options := doc.Find(CatalogSelector)
	if options.Length() == 0 {
		return nil, distropop.Errorf(distropop.ESTRUCTURE, "no distribution select box in page")
	}

	seen := make(map[string]bool)
	var candidates []distropop.Candidate
	options.Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())
		key, _ := sel.Attr("value")
		key = strings.TrimSpace(key)

		if name == "" || name == catalogPlaceholder || key == "" {
			return
		}
		if seen[key] {
			return
		}
		seen[key] = true

		candidates = append(candidates, distropop.Candidate{
			DisplayName: name,
			LookupKey:   key,
		})
	})

	return candidates, nil
}
