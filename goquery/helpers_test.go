package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// cell parses inner as the content of a single table cell.
func cell(t *testing.T, inner string) *gq.Selection {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader("<table><tr><td>" + inner + "</td></tr></table>"))
	require.NoError(t, err)

	td := doc.Find("td").First()
	require.Equal(t, 1, td.Length())
	return td
}
