package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taskline-go/taskline/uuid"
)

// RefKind discriminates the forms a task reference can take on a command line.
type RefKind int

const (
	// RefWorkingSet is a small decimal index into the user's working set.
	RefWorkingSet RefKind = iota
	// RefPartialUUID is an unambiguous prefix of a task UUID.
	RefPartialUUID
	// RefUUID is a full canonical UUID.
	RefUUID
)

// Ref is a reference to a task as written by the user: a working-set index,
// a UUID prefix, or a full UUID.
type Ref struct {
	Kind       RefKind
	WorkingSet int
	Partial    string
	UUID       uuid.UUID
}

// ErrInvalidRef is returned by ParseRef for text that is none of the
// supported reference forms.
var ErrInvalidRef = errors.New("invalid task reference")

// ParseRef parses a task reference. All-decimal text is a working-set index
// (this takes precedence over reading it as a hex prefix). Text of exactly
// uuid.StringLen characters must be a full canonical UUID. Anything shorter
// is a partial UUID: hex digits with hyphens only at the canonical
// positions, normalized to lowercase.
func ParseRef(s string) (Ref, error) {
	if s == "" {
		return Ref{}, fmt.Errorf("%w: empty", ErrInvalidRef)
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return Ref{Kind: RefWorkingSet, WorkingSet: n}, nil
	}
	if len(s) == uuid.StringLen {
		u, err := uuid.Parse(s)
		if err != nil {
			return Ref{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, s, err)
		}
		return Ref{Kind: RefUUID, UUID: u}, nil
	}
	if len(s) > uuid.StringLen {
		return Ref{}, fmt.Errorf("%w: %q is too long", ErrInvalidRef, s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			if i != 8 && i != 13 && i != 18 && i != 23 {
				return Ref{}, fmt.Errorf("%w: %q has a hyphen at position %d", ErrInvalidRef, s, i)
			}
			continue
		}
		if !isHex(c) {
			return Ref{}, fmt.Errorf("%w: %q contains %q", ErrInvalidRef, s, c)
		}
	}
	return Ref{Kind: RefPartialUUID, Partial: strings.ToLower(s)}, nil
}

// String returns the textual form of the reference, suitable for display
// and for keying dependency entries.
func (r Ref) String() string {
	switch r.Kind {
	case RefWorkingSet:
		return strconv.Itoa(r.WorkingSet)
	case RefPartialUUID:
		return r.Partial
	default:
		return r.UUID.String()
	}
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
