// Package logging constructs the application's slog loggers: a single-line
// console handler for interactive use and a JSON handler for machine
// consumption, optionally teed to a log file.
package logging
