package basis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUpstream tags failures talking to the BASIS API: transport errors
	// and non-success status codes.
	ErrUpstream = errors.New("upstream error")

	// ErrBadInput tags caller mistakes rejected before any fetch: malformed
	// dates and oversized ranges.
	ErrBadInput = errors.New("bad input")

	// ErrUnexpectedPayload tags responses that arrived but did not carry the
	// expected envelope shape.
	ErrUnexpectedPayload = errors.New("unexpected payload")
)

// Wrap builds an error that carries operation context while remaining
// matchable against the sentinel markers above via errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrUpstream
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "basis failure"
	}
	return strings.Join(parts, ": ")
}
