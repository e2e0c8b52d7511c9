package distropop

// Window is one of the fixed rolling time ranges DistroWatch reports.
type Window int

// Windows in page order.
const (
	Window12Months Window = iota
	Window6Months
	Window3Months
	Window4Weeks
	Window1Week
)

// NumWindows is the number of windows in a PopularityRecord.
const NumWindows = 5

// Windows lists every window in page order.
var Windows = [NumWindows]Window{
	Window12Months,
	Window6Months,
	Window3Months,
	Window4Weeks,
	Window1Week,
}

var windowLabels = [NumWindows]string{
	"12 months:",
	"6 months:",
	"3 months:",
	"4 weeks:",
	"1 week:",
}

var windowKeys = [NumWindows]string{
	"12months",
	"6months",
	"3months",
	"4weeks",
	"1week",
}

// Label returns the text that introduces the window on the detail page.
func (w Window) Label() string {
	if w < 0 || int(w) >= NumWindows {
		return ""
	}
	return windowLabels[w]
}

// Key returns a stable identifier for the window.
func (w Window) Key() string {
	if w < 0 || int(w) >= NumWindows {
		return ""
	}
	return windowKeys[w]
}

// String returns the window key.
func (w Window) String() string {
	return w.Key()
}

// Metric is the rank and hits-per-day pair for one window.
// Both are kept verbatim as they appear on the page (e.g. "3,029").
type Metric struct {
	Rank string `json:"rank"`
	Hits string `json:"hits"`
}

// PopularityRecord holds the metrics of all five windows.
// The zero value is not meaningful; use NewPopularityRecord.
type PopularityRecord struct {
	metrics [NumWindows]Metric
}

// NewPopularityRecord returns a record with metrics in window order.
func NewPopularityRecord(metrics [NumWindows]Metric) *PopularityRecord {
	return &PopularityRecord{metrics: metrics}
}

// Metric returns the metric for the window.
func (r *PopularityRecord) Metric(w Window) Metric {
	if w < 0 || int(w) >= NumWindows {
		return Metric{}
	}
	return r.metrics[w]
}

// Metrics returns a copy of all metrics in window order.
func (r *PopularityRecord) Metrics() [NumWindows]Metric {
	return r.metrics
}

// QueryResult pairs a candidate with its popularity record.
// A nil Popularity means no usable data could be obtained; Err records why.
type QueryResult struct {
	Candidate  Candidate
	Popularity *PopularityRecord
	Err        error
}

// Absent reports whether the result carries no popularity data.
func (r QueryResult) Absent() bool {
	return r.Popularity == nil
}
