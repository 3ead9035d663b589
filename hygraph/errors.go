package hygraph

import (
	"errors"
	"fmt"
	"strings"
)

// Kind splits content-API failures into the two classes callers act on:
// configuration errors (schema/table not provisioned upstream, non-retryable)
// and transient errors (network or server trouble, retryable).
type Kind string

const (
	KindConfig    Kind = "config"
	KindTransient Kind = "transient"
)

type APIError struct {
	Op      string
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IsConfig reports whether err is a non-retryable configuration error.
// Callers surface these as "feature not yet configured" instead of a retry.
func IsConfig(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == KindConfig
}

// Error codes Hygraph attaches under extensions.code when the schema rejects
// an operation. Preferred over substring matching when present.
var configCodes = map[string]bool{
	"GRAPHQL_VALIDATION_FAILED": true,
	"BAD_USER_INPUT":            true,
	"FIELD_NOT_FOUND":           true,
}

func classifyGraphQL(op string, status int, errs []gqlError) *APIError {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
		if configCodes[e.Extensions.Code] {
			return &APIError{Op: op, Kind: KindConfig, Status: status, Message: e.Message}
		}
	}
	joined := strings.Join(msgs, "; ")
	// Fallback heuristic carried over from the original client: a 400 that
	// names the operation means the backing table was never provisioned.
	if status == 400 || (strings.Contains(joined, op) && strings.Contains(joined, "400")) {
		return &APIError{Op: op, Kind: KindConfig, Status: status, Message: joined}
	}
	return &APIError{Op: op, Kind: KindTransient, Status: status, Message: joined}
}

func classifyHTTP(op string, status int, body string) *APIError {
	if status == 400 || status == 404 {
		return &APIError{Op: op, Kind: KindConfig, Status: status, Message: fmt.Sprintf("content API error (%d): %s", status, body)}
	}
	return &APIError{Op: op, Kind: KindTransient, Status: status, Message: fmt.Sprintf("content API error (%d): %s", status, body)}
}
