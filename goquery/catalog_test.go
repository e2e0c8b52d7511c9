package goquery_test

import (
	"testing"

	"github.com/fwojciec/distropop"
	dpgoquery "github.com/fwojciec/distropop/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogParser_ParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("reads options in page order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form action="search.php"><input name="q"></form>
<form action="table.php">
<select name="distribution">
<option value="">Select Distribution</option>
<option value="arch">Arch</option>
<option value="debian">Debian</option>
<option value="mint"> Linux Mint </option>
</select>
</form>
</body></html>`

		candidates, err := dpgoquery.NewCatalogParser().ParseCatalog(html)

		require.NoError(t, err)
		assert.Equal(t, []distropop.Candidate{
			{DisplayName: "Arch", LookupKey: "arch"},
			{DisplayName: "Debian", LookupKey: "debian"},
			{DisplayName: "Linux Mint", LookupKey: "mint"},
		}, candidates)
	})

	t.Run("skips repeated lookup keys", func(t *testing.T) {
		t.Parallel()

		html := `<select name="distribution">
<option value="ubuntu">Ubuntu</option>
<option value="ubuntu">Ubuntu (again)</option>
</select>`

		candidates, err := dpgoquery.NewCatalogParser().ParseCatalog(html)

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Ubuntu", candidates[0].DisplayName)
	})

	t.Run("returns structure error without select box", func(t *testing.T) {
		t.Parallel()

		_, err := dpgoquery.NewCatalogParser().ParseCatalog(`<html><body><p>maintenance</p></body></html>`)

		assert.Equal(t, distropop.ESTRUCTURE, distropop.ErrorCode(err))
	})
}
