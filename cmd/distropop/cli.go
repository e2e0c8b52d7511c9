package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/distropop"
	"github.com/fwojciec/distropop/search"
	"github.com/fwojciec/distropop/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Candidates distropop.CandidateService
	Searcher   *search.Searcher
	Syncer     *search.Syncer
	Lang       string
	BaseURL    string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string        `name:"db" type:"path" env:"DISTROPOP_DB" default:"~/.distropop/distropop.db" help:"Catalog database path"`
	BaseURL     string        `name:"base-url" env:"DISTROPOP_BASE_URL" default:"https://distrowatch.com" help:"DistroWatch base URL"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
	Lang        string        `default:"en" env:"DISTROPOP_LANG" help:"Output language (en, tr)"`
	Verbose     bool          `short:"v" help:"Log fetch and extract steps to stderr"`
	RPS         float64       `name:"rps" default:"0" help:"Requests per second per host (0 disables limiting)"`
	Burst       int           `default:"1" help:"Requests per host admitted without waiting when --rps is set"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent lookup limit"`

	Sync   SyncCmd   `cmd:"" help:"Refresh the distribution catalog from DistroWatch"`
	List   ListCmd   `cmd:"" help:"List catalog entries"`
	Search SearchCmd `cmd:"" help:"Search distributions and show their popularity"`
	Stats  StatsCmd  `cmd:"" help:"Show popularity of one distribution by lookup key"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Filter string `short:"f" help:"Only show names containing this text"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term     string `arg:"" help:"Part of the distribution name"`
	Table    bool   `short:"t" help:"Print results as tables"`
	Markdown bool   `short:"m" help:"Print results as Markdown messages"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Key      string `arg:"" help:"Distribution lookup key (see 'distropop list')"`
	Table    bool   `short:"t" help:"Print result as a table"`
	Markdown bool   `short:"m" help:"Print result as a Markdown message"`
}
