package framework

import (
	"fmt"
	"strings"
)

// AggregatedError collects errors from fan-out paths, like a registrar
// mux publishing one event to several transports.
type AggregatedError struct {
	Errors []error
}

// Error implements error. The message is a single line so it doesn't
// splinter log output.
func (e *AggregatedError) Error() string {
	switch len(e.Errors) {
	case 0:
		return ""
	case 1:
		return e.Errors[0].Error()
	}
	msg := make([]string, len(e.Errors))
	for n, err := range e.Errors {
		msg[n] = "[" + err.Error() + "]"
	}
	return fmt.Sprintf("%d errors: %s", len(e.Errors), strings.Join(msg, " "))
}

// Add adds errors to be aggregated. nil is skipped.
func (e *AggregatedError) Add(errs ...error) *AggregatedError {
	for _, err := range errs {
		if err != nil {
			e.Errors = append(e.Errors, err)
		}
	}
	return e
}

// Aggregate returns nil when no error happened, the error itself when
// exactly one did, and the aggregate otherwise.
func (e *AggregatedError) Aggregate() error {
	switch len(e.Errors) {
	case 0:
		return nil
	case 1:
		return e.Errors[0]
	}
	return e
}
