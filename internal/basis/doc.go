// Package basis fetches meeting records from the Alaska Legislature's BASIS
// public service API.
//
// The client is the only I/O boundary in front of the normalization core:
// it issues one GET per calendar day, decodes the loosely-shaped response
// envelope into []meeting.Record, and surfaces failures as structured errors
// tagged with the sentinel markers in errors.go. Range fetches run
// sequentially in calendar order and record per-day failures without
// aborting the remaining days.
package basis
