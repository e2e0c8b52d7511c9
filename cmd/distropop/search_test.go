package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/distropop"
	main "github.com/fwojciec/distropop/cmd/distropop"
	"github.com/fwojciec/distropop/mock"
	"github.com/fwojciec/distropop/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []*distropop.Candidate{
	{DisplayName: "Debian", LookupKey: "debian"},
	{DisplayName: "Devuan", LookupKey: "devuan"},
}

// record returns a record whose 6-month rank is rank.
func record(rank string) *distropop.PopularityRecord {
	return distropop.NewPopularityRecord([distropop.NumWindows]distropop.Metric{
		{Rank: "1", Hits: "100"},
		{Rank: rank, Hits: "90"},
		{Rank: "3", Hits: "80"},
		{Rank: "4", Hits: "70"},
		{Rank: "5", Hits: "60"},
	})
}

// newTestDeps wires a Searcher whose extractor returns the record keyed by
// the fetched page body. A missing key yields an absent result.
func newTestDeps(records map[string]*distropop.PopularityRecord) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	candidates := &mock.CandidateService{
		FindCandidatesFn: func(_ context.Context, filter distropop.CandidateFilter) ([]*distropop.Candidate, error) {
			var out []*distropop.Candidate
			for _, c := range catalog {
				if strings.Contains(strings.ToLower(c.DisplayName), strings.ToLower(*filter.NameContains)) {
					out = append(out, c)
				}
			}
			return out, nil
		},
		FindCandidateByKeyFn: func(_ context.Context, key string) (*distropop.Candidate, error) {
			for _, c := range catalog {
				if c.LookupKey == key {
					return c, nil
				}
			}
			return nil, distropop.Errorf(distropop.ENOTFOUND, "distribution %q not found", key)
		},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     stdout,
		Stderr:     stderr,
		Candidates: candidates,
		Lang:       "en",
		Searcher: &search.Searcher{
			Candidates: candidates,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return url[strings.LastIndex(url, "=")+1:], nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*distropop.PopularityRecord, error) {
					if rec, ok := records[html]; ok {
						return rec, nil
					}
					return nil, distropop.Errorf(distropop.ESTRUCTURE, "no statistics")
				},
			},
		},
	}
	return deps, stdout, stderr
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked descriptions", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]*distropop.PopularityRecord{
			"debian": record("6"),
			"devuan": record("2"),
		})

		err := (&main.SearchCmd{Term: "de"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Devuan (devuan)\nPopularity: 2\nHits per day: 90\n\nDebian (debian)\nPopularity: 6\nHits per day: 90\n", stdout.String())
	})

	t.Run("prints no data line for absent result", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]*distropop.PopularityRecord{
			"debian": record("6"),
		})

		err := (&main.SearchCmd{Term: "de"}).Run(deps)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stdout.String(), "Devuan (devuan)\nNo popularity data available.\n"))
	})

	t.Run("prints tables", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]*distropop.PopularityRecord{
			"debian": record("6"),
		})

		err := (&main.SearchCmd{Term: "debian", Table: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "| 6 months  | 6    | 90   |")
	})

	t.Run("prints markdown with detail link", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]*distropop.PopularityRecord{
			"debian": record("6"),
		})

		err := (&main.SearchCmd{Term: "debian", Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "*Debian*")
		assert.Contains(t, stdout.String(), "(https://distrowatch.com/table.php?distribution=debian)")
	})

	t.Run("prints no result message", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(nil)
		deps.Lang = "tr"

		err := (&main.SearchCmd{Term: "plan9"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Aradığınız dağıtımı bulamadım!\n", stdout.String())
	})

	t.Run("prints hint for blank term", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps(nil)

		err := (&main.SearchCmd{Term: "  "}).Run(deps)

		assert.Equal(t, distropop.EINVALID, distropop.ErrorCode(err))
		assert.Equal(t, "Start typing the distro name...\n", stderr.String())
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints record for key", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]*distropop.PopularityRecord{
			"devuan": record("2"),
		})

		err := (&main.StatsCmd{Key: "devuan"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Devuan (devuan)\nPopularity: 2\nHits per day: 90\n", stdout.String())
	})

	t.Run("returns not found for unknown key", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps(nil)

		err := (&main.StatsCmd{Key: "plan9"}).Run(deps)

		assert.Equal(t, distropop.ENOTFOUND, distropop.ErrorCode(err))
		assert.Equal(t, "error: distribution \"plan9\" not found\n", stderr.String())
	})
}
