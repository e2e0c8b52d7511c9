package main

import (
	"fmt"

	"github.com/fwojciec/distropop"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := distropop.CandidateFilter{}
	if c.Filter != "" {
		filter.NameContains = &c.Filter
	}

	candidates, err := deps.Candidates.FindCandidates(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distropop.ErrorMessage(err))
		return err
	}

	if len(candidates) == 0 {
		fmt.Fprintln(deps.Stdout, "No distributions found. Use 'distropop sync' to fetch the catalog.")
		return nil
	}

	for _, c := range candidates {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", c.LookupKey, c.DisplayName)
	}

	return nil
}
