package appmeta

import "github.com/appmeta/appmeta/internal/domain"

// ArgumentError reports a request precondition violation detected
// before any extraction work starts. Retrieve it with errors.As; when
// several preconditions fail at once the returned error aggregates
// one ArgumentError per violation.
type ArgumentError = domain.ArgumentError

// ParseError reports a failure while reading the package itself. It
// wraps the underlying cause, reachable through errors.Unwrap.
type ParseError = domain.ParseError
