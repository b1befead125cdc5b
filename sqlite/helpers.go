package sqlite

import "strings"

// Path strips the "sqlite:" scheme from a database URI.
// "sqlite:films.db" and "sqlite://films.db" both yield "films.db".
func Path(uri string) string {
	path := strings.TrimPrefix(uri, "sqlite:")
	return strings.TrimPrefix(path, "//")
}

// IsURI reports whether uri addresses a SQLite database.
func IsURI(uri string) bool {
	return strings.HasPrefix(uri, "sqlite:")
}
