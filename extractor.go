package distropop

// Extractor derives a popularity record from a detail page.
type Extractor interface {
	// Extract parses the page and returns a record with all five windows.
	// Returns ESTRUCTURE when the statistics block cannot be located and
	// EPARSE when any window is malformed. It never returns a partial record.
	Extract(html string) (*PopularityRecord, error)
}
