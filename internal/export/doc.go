// Package export serializes normalized meetings into the two CSV dialects the
// tool produces: a generic dialect for spreadsheet use and the Invintus
// broadcast-scheduling dialect.
//
// Both dialects quote every field unconditionally, which encoding/csv cannot
// be configured to do, so rows are written by a small quote-all writer
// instead. Row content comes entirely from the pure functions in
// internal/meeting; this package only selects, orders, and quotes.
package export
