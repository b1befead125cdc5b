package goquery_test

import (
	"testing"

	"github.com/fwojciec/boxoffice"
	"github.com/fwojciec/boxoffice/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailExtractor_ExtractDetails(t *testing.T) {
	t.Parallel()

	t.Run("extracts all infobox fields", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<table class="infobox vevent">
	<tr><th colspan="2" class="infobox-above summary">Test Film</th></tr>
	<tr><th class="infobox-label">Directed by</th><td class="infobox-data"><a href="/wiki/Jane_Doe">Jane Doe</a></td></tr>
	<tr><th class="infobox-label"><div>Release date</div></th><td class="infobox-data">1999-01-01</td></tr>
	<tr><th class="infobox-label">Country</th><td class="infobox-data">United States</td></tr>
	<tr><th class="infobox-label">Box office</th><td class="infobox-data">$100 million<sup class="reference">[2]</sup></td></tr>
</table>
</body>
</html>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		require.NotNil(t, details.Director)
		require.NotNil(t, details.ReleaseYear)
		require.NotNil(t, details.Country)
		require.NotNil(t, details.BoxOffice)
		assert.Equal(t, "Jane Doe", *details.Director)
		assert.Equal(t, 1999, *details.ReleaseYear)
		assert.Equal(t, "United States", *details.Country)
		assert.Equal(t, "$100 million", *details.BoxOffice)
	})

	t.Run("returns empty details without infobox", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table class="wikitable"><tr><th>Directed by</th><td>Someone</td></tr></table></body></html>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		assert.Equal(t, &boxoffice.FilmDetails{}, details)
	})

	t.Run("leaves missing rows nil", func(t *testing.T) {
		t.Parallel()

		html := `<table class="infobox"><tr><th>Directed by</th><td>Jane Doe</td></tr></table>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		require.NotNil(t, details.Director)
		assert.Equal(t, "Jane Doe", *details.Director)
		assert.Nil(t, details.ReleaseYear)
		assert.Nil(t, details.Country)
		assert.Nil(t, details.BoxOffice)
	})

	t.Run("first matching row wins", func(t *testing.T) {
		t.Parallel()

		html := `<table class="infobox">
	<tr><th>Directed by</th><td>Jane Doe</td></tr>
	<tr><th>Directed by</th><td>John Roe</td></tr>
	<tr><th>Release dates</th><td>TBA</td></tr>
	<tr><th>Release date</th><td>2001</td></tr>
</table>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		require.NotNil(t, details.Director)
		assert.Equal(t, "Jane Doe", *details.Director)
		assert.Nil(t, details.ReleaseYear, "later release row must not override the first")
	})

	t.Run("uses only the first infobox", func(t *testing.T) {
		t.Parallel()

		html := `<table class="infobox"><tr><th>Country</th><td>France</td></tr></table>
<table class="infobox"><tr><th>Directed by</th><td>John Roe</td></tr></table>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		require.NotNil(t, details.Country)
		assert.Equal(t, "France", *details.Country)
		assert.Nil(t, details.Director)
	})

	t.Run("matches country labels exactly", func(t *testing.T) {
		t.Parallel()

		for _, label := range []string{"Country", "Countries", "Country of origin"} {
			html := `<table class="infobox"><tr><th>` + label + `</th><td>Japan</td></tr></table>`

			details, err := goquery.NewDetailExtractor().ExtractDetails(html)

			require.NoError(t, err)
			require.NotNil(t, details.Country, label)
			assert.Equal(t, "Japan", *details.Country, label)
		}

		html := `<table class="infobox"><tr><th>Production country</th><td>Japan</td></tr></table>`
		details, err := goquery.NewDetailExtractor().ExtractDetails(html)
		require.NoError(t, err)
		assert.Nil(t, details.Country)
	})

	t.Run("skips rows without both header and data cells", func(t *testing.T) {
		t.Parallel()

		html := `<table class="infobox">
	<tr><th colspan="2">Box office</th></tr>
	<tr><td colspan="2">$5 billion</td></tr>
	<tr><th>Box office</th><td>$1.2 billion</td></tr>
</table>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		require.NotNil(t, details.BoxOffice)
		assert.Equal(t, "$1.2 billion", *details.BoxOffice)
	})

	t.Run("keeps empty value for present but blank cell", func(t *testing.T) {
		t.Parallel()

		html := `<table class="infobox"><tr><th>Directed by</th><td> </td></tr></table>`

		details, err := goquery.NewDetailExtractor().ExtractDetails(html)

		require.NoError(t, err)
		require.NotNil(t, details.Director)
		assert.Empty(t, *details.Director)
	})
}
