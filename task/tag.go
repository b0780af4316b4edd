package task

import (
	"errors"
	"fmt"
)

// Tag is a user-assigned task tag. A valid tag starts with an ASCII letter
// followed by ASCII letters, digits, '_' or '-'.
type Tag string

// ErrInvalidTag is returned by NewTag for names that do not satisfy the
// tag syntax.
var ErrInvalidTag = errors.New("invalid tag")

// NewTag validates s and returns it as a Tag.
func NewTag(s string) (Tag, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidTag)
	}
	if !isLetter(s[0]) {
		return "", fmt.Errorf("%w: %q must start with a letter", ErrInvalidTag, s)
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !isDigit(c) && c != '_' && c != '-' {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidTag, s, c)
		}
	}
	return Tag(s), nil
}

func (t Tag) String() string {
	return string(t)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
