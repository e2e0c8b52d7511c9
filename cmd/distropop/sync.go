package main

import (
	"fmt"

	"github.com/fwojciec/distropop"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	result, err := deps.Syncer.Sync(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distropop.ErrorMessage(err))
		return err
	}

	if result.Unchanged {
		fmt.Fprintf(deps.Stdout, "Catalog unchanged (%d distributions).\n", result.Count)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Synced %d distributions.\n", result.Count)
	return nil
}
