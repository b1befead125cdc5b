// Package boxoffice scrapes the list of highest-grossing films, follows each
// film's article, extracts a handful of structured fields from its infobox,
// and reloads the results into a document store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, mongo/, sqlite/).
package boxoffice
