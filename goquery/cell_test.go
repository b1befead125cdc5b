package goquery_test

import (
	"testing"

	"github.com/fwojciec/boxoffice/goquery"
	"github.com/stretchr/testify/assert"
)

func TestFirstValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "returns first line of line-separated values",
			html: "United States<br>United Kingdom",
			want: "United States",
		},
		{
			name: "skips whitespace and empty elements",
			html: "<span></span> <b>France</b>",
			want: "France",
		},
		{
			name: "skips style and script children",
			html: "<style>.plainlist{margin:0}</style><script>var x = 1;</script>Japan",
			want: "Japan",
		},
		{
			name: "skips comments",
			html: "<!-- hidden -->Italy",
			want: "Italy",
		},
		{
			name: "strips footnote markers before choosing",
			html: `<sup class="reference"><a href="#cite_note-1">[1]</a></sup>Canada`,
			want: "Canada",
		},
		{
			name: "joins descendant text of an element with spaces",
			html: "<div>Lee <i>Unkrich</i></div>",
			want: "Lee Unkrich",
		},
		{
			name: "ignores style text nested inside the chosen element",
			html: "<div><style>.x{}</style>New Zealand</div>",
			want: "New Zealand",
		},
		{
			name: "cleans inline footnote text",
			html: "Germany[3]",
			want: "Germany",
		},
		{
			name: "returns empty string for empty cell",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.FirstValue(cell(t, tt.html)))
		})
	}
}
