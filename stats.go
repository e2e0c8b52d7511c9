package distropop

import "strings"

// Boundary tokens around the statistics block in the flattened page text.
const (
	StatsStartToken = "Popularity"

	// The trailing section label differs between page variants.
	StatsEndToken         = "Average"
	StatsFallbackEndToken = "Visitor"
)

// ParseStats parses the flattened text of the statistics table into a
// popularity record. It runs the text stages in order and fails on the
// first stage that does not find what it expects.
func ParseStats(text string) (*PopularityRecord, error) {
	section, err := SliceStatsSection(text)
	if err != nil {
		return nil, err
	}

	section, err = TrimToFirstWindow(section)
	if err != nil {
		return nil, err
	}

	segments, err := SplitWindows(section)
	if err != nil {
		return nil, err
	}

	var metrics [NumWindows]Metric
	for _, w := range Windows {
		m, err := ParseMetric(segments[w])
		if err != nil {
			return nil, Errorf(EPARSE, "%s window: %s", w.Key(), ErrorMessage(err))
		}
		metrics[w] = m
	}

	return NewPopularityRecord(metrics), nil
}

// SliceStatsSection returns the text between the last "Popularity" and the
// last end boundary. "Average" is preferred when it occurs anywhere in the
// text, otherwise "Visitor" is used. Any other layout is ESTRUCTURE.
func SliceStatsSection(text string) (string, error) {
	end := StatsEndToken
	if !strings.Contains(text, end) {
		end = StatsFallbackEndToken
	}

	endIdx := strings.LastIndex(text, end)
	if endIdx == -1 {
		return "", Errorf(ESTRUCTURE, "no %q or %q boundary in statistics text", StatsEndToken, StatsFallbackEndToken)
	}

	startIdx := strings.LastIndex(text, StatsStartToken)
	if startIdx == -1 {
		return "", Errorf(ESTRUCTURE, "no %q boundary in statistics text", StatsStartToken)
	}
	if endIdx < startIdx {
		return "", Errorf(ESTRUCTURE, "%q boundary precedes %q", end, StatsStartToken)
	}

	return text[startIdx:endIdx], nil
}

// TrimToFirstWindow drops everything before the first window label.
func TrimToFirstWindow(section string) (string, error) {
	label := Window12Months.Label()
	idx := strings.Index(section, label)
	if idx == -1 {
		return "", Errorf(ESTRUCTURE, "no %q label in statistics section", label)
	}
	return section[idx:], nil
}

// SplitWindows returns the raw text following each window label, in window
// order. Each segment stops at the next window's label; the last one runs to
// the end of the section.
func SplitWindows(section string) ([NumWindows]string, error) {
	var segments [NumWindows]string

	rest := section
	for i, w := range Windows {
		label := w.Label()
		idx := strings.Index(rest, label)
		if idx == -1 {
			return segments, Errorf(EPARSE, "no %q label", label)
		}
		rest = rest[idx+len(label):]

		if i == NumWindows-1 {
			segments[w] = rest
			break
		}

		next := Windows[i+1].Label()
		end := strings.Index(rest, next)
		if end == -1 {
			return segments, Errorf(EPARSE, "no %q label", next)
		}
		segments[w] = rest[:end]
		rest = rest[end:]
	}

	return segments, nil
}

// ParseMetric parses one window segment of the form "<rank> (<hits>)".
// Anything after the last closing parenthesis is ignored.
func ParseMetric(segment string) (Metric, error) {
	s := strings.TrimSpace(segment)

	closeIdx := strings.LastIndex(s, ")")
	if closeIdx == -1 {
		return Metric{}, Errorf(EPARSE, "no closing parenthesis in %q", s)
	}
	s = strings.TrimSpace(s[:closeIdx+1])

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Metric{}, Errorf(EPARSE, "want rank and hits, got %d tokens in %q", len(fields), s)
	}

	hitsToken := fields[1]
	open := strings.Index(hitsToken, "(")
	if open == -1 {
		return Metric{}, Errorf(EPARSE, "no opening parenthesis in %q", hitsToken)
	}
	end := strings.Index(hitsToken[open:], ")")
	if end == -1 {
		return Metric{}, Errorf(EPARSE, "unbalanced parentheses in %q", hitsToken)
	}
	hits := hitsToken[open+1 : open+end]
	if hits == "" {
		return Metric{}, Errorf(EPARSE, "empty hits in %q", hitsToken)
	}

	return Metric{Rank: fields[0], Hits: hits}, nil
}
