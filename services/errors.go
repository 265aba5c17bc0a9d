package services

import "fmt"

// ErrorKind names one branch of the closed DomainError taxonomy.
type ErrorKind string

const (
	KindUnauthorized    ErrorKind = "unauthorized"
	KindNotFound        ErrorKind = "not_found"
	KindInvalidJoinCode ErrorKind = "invalid_join_code"
	KindAlreadyMember   ErrorKind = "already_member"
	KindInvalidArgument ErrorKind = "invalid_argument"
)

// DomainError is the hard-failure type returned by every service operation.
// Entity and ID identify what the operation was acting on; Reason carries
// the rule that failed for KindInvalidArgument.
type DomainError struct {
	Kind   ErrorKind
	Entity string
	ID     string
	Reason string
}

func (e *DomainError) Error() string {
	msg := string(e.Kind)
	if e.Entity != "" {
		msg += ": " + e.Entity
		if e.ID != "" {
			msg += " " + e.ID
		}
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches any DomainError of the same kind, so the Err* sentinels work
// with errors.Is regardless of Entity and ID.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Outcome labels the error in operation metrics.
func (e *DomainError) Outcome() string {
	return string(e.Kind)
}

var (
	ErrUnauthorized    = &DomainError{Kind: KindUnauthorized}
	ErrNotFound        = &DomainError{Kind: KindNotFound}
	ErrInvalidJoinCode = &DomainError{Kind: KindInvalidJoinCode}
	ErrAlreadyMember   = &DomainError{Kind: KindAlreadyMember}
	ErrInvalidArgument = &DomainError{Kind: KindInvalidArgument}
)

func unauthorized(entity, id string) error {
	return &DomainError{Kind: KindUnauthorized, Entity: entity, ID: id}
}

func notFound(entity, id string) error {
	return &DomainError{Kind: KindNotFound, Entity: entity, ID: id}
}

func invalidArgument(entity, format string, args ...any) error {
	return &DomainError{Kind: KindInvalidArgument, Entity: entity, Reason: fmt.Sprintf(format, args...)}
}
