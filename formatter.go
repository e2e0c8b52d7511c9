package distropop

import (
	"strings"
	"unicode/utf8"
)

// FormatDescription returns the short two-line summary of the 6-month window.
// A nil record yields the "no data" line.
func FormatDescription(lang string, rec *PopularityRecord) string {
	if rec == nil {
		return Translate(lang, MsgNoData)
	}

	m := rec.Metric(Window6Months)
	return Translate(lang, MsgPopularity) + ": " + m.Rank + "\n" +
		Translate(lang, MsgHits) + ": " + m.Hits
}

// FormatMessage returns a Markdown message listing every window, followed by
// a link to the detail page when detailURL is not empty.
func FormatMessage(lang string, c Candidate, rec *PopularityRecord, detailURL string) string {
	var b strings.Builder
	b.WriteString("*" + c.DisplayName + "*\n\n")

	if rec == nil {
		b.WriteString(Translate(lang, MsgNoData) + "\n\n")
	} else {
		for _, w := range Windows {
			m := rec.Metric(w)
			b.WriteString("_" + WindowName(lang, w) + ":_\n")
			b.WriteString(Translate(lang, MsgPopularity) + ": *" + m.Rank + "* - ")
			b.WriteString(Translate(lang, MsgHits) + ": *" + m.Hits + "*\n\n")
		}
	}

	if detailURL != "" {
		b.WriteString("[" + Translate(lang, MsgMore) + "](" + detailURL + ")\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatTable returns a fixed-width ASCII table of the record with the
// candidate name as its title. Column widths fit the widest cell.
func FormatTable(lang string, c Candidate, rec *PopularityRecord) string {
	header := []string{"", Translate(lang, MsgPopularityShort), Translate(lang, MsgHitsShort)}
	rows := [][]string{header}
	if rec != nil {
		for _, w := range Windows {
			m := rec.Metric(w)
			rows = append(rows, []string{WindowName(lang, w), m.Rank, m.Hits})
		}
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell)+2)
		}
	}

	// Inner width spans the cells and the separators between them.
	inner := len(widths) - 1
	for _, w := range widths {
		inner += w
	}

	title := c.DisplayName
	if rec == nil {
		title = c.DisplayName + ": " + Translate(lang, MsgNoData)
	}
	if n := utf8.RuneCountInString(title) + 2; n > inner {
		widths[0] += n - inner
		inner = n
	}

	outer := "+" + strings.Repeat("-", inner) + "+"
	divider := "+"
	for _, w := range widths {
		divider += strings.Repeat("-", w) + "+"
	}

	var b strings.Builder
	b.WriteString(outer + "\n")
	b.WriteString("|" + center(title, inner) + "|\n")
	if rec == nil {
		b.WriteString(outer)
		return b.String()
	}

	b.WriteString(divider + "\n")
	for i, row := range rows {
		b.WriteString("|")
		for j, cell := range row {
			b.WriteString(" " + cell + strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)-1) + "|")
		}
		b.WriteString("\n")
		if i < len(rows)-1 {
			b.WriteString(divider + "\n")
		}
	}
	b.WriteString(divider)

	return b.String()
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
