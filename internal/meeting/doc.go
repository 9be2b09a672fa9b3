// Package meeting normalizes raw BASIS meeting records into display and
// export-ready fields.
//
// Every function in this package is a pure transformation over an
// already-materialized Record: no I/O, no shared state, no caching. The web
// view layer and the CSV exporters both consume these functions, so the same
// record always normalizes the same way on every path.
//
// Malformed input degrades rather than erroring: unparseable dates and times
// pass through unchanged, unknown chamber codes yield an empty chamber name,
// and a record missing its date or time gets the "unknown" identifier.
package meeting
