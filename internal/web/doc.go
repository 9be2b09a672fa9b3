// Package web serves the meeting browser and the CSV download endpoints.
//
// Handlers are thin: every displayed or exported value comes from
// internal/meeting and internal/export, so the HTML view and the CSV files
// always agree about titles, identifiers, and descriptions.
package web
