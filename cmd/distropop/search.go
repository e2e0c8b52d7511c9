package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/distropop"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Term)
	if distropop.ErrorCode(err) == distropop.EINVALID {
		fmt.Fprintln(deps.Stderr, distropop.Translate(deps.Lang, distropop.MsgStartTyping))
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distropop.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, distropop.Translate(deps.Lang, distropop.MsgNoResult))
		return nil
	}

	printResults(deps.Stdout, deps, results, c.Table, c.Markdown)
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	candidate, err := deps.Candidates.FindCandidateByKey(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distropop.ErrorMessage(err))
		return err
	}

	results := deps.Searcher.Lookup(deps.Ctx, []distropop.Candidate{*candidate})
	printResults(deps.Stdout, deps, results, c.Table, c.Markdown)
	return nil
}

func printResults(w io.Writer, deps *Dependencies, results []distropop.QueryResult, table, markdown bool) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		switch {
		case table:
			fmt.Fprintln(w, distropop.FormatTable(deps.Lang, r.Candidate, r.Popularity))
		case markdown:
			url := distropop.DetailURL(baseURL(deps), r.Candidate.LookupKey)
			fmt.Fprintln(w, distropop.FormatMessage(deps.Lang, r.Candidate, r.Popularity, url))
		default:
			fmt.Fprintf(w, "%s (%s)\n", r.Candidate.DisplayName, r.Candidate.LookupKey)
			fmt.Fprintln(w, distropop.FormatDescription(deps.Lang, r.Popularity))
		}
	}
}

func baseURL(deps *Dependencies) string {
	if deps.BaseURL == "" {
		return distropop.DefaultBaseURL
	}
	return deps.BaseURL
}
