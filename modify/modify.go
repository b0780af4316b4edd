// Package modify implements the modification grammar of the command line:
// the arguments following a task reference that describe how to change a
// task, such as `+next`, `wait:2d`, `depends:13,94500c95` or free words that
// become the description.
package modify

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskline-go/taskline/task"
)

// ErrArg is returned (wrapped with the offending argument) by Parse when an
// argument that names a property carries a value that cannot be parsed.
var ErrArg = errors.New("invalid modification argument")

// Modification is an accumulated change to a task. The zero value changes
// nothing.
type Modification struct {
	// Description is the new description, assembled from the free words of
	// the argument list in order. SetDescription distinguishes "replace the
	// description" from "no change".
	Description    string
	SetDescription bool

	// Status, when non-nil, sets the task's status.
	Status *task.Status

	// WaitChanged marks the wait timestamp as modified; Wait is the new
	// value, or nil to clear it.
	WaitChanged bool
	Wait        *time.Time

	// Active, when non-nil, starts (true) or stops (false) the task.
	// It is set by callers such as a start/stop command, not by Parse.
	Active *bool

	AddTags    map[task.Tag]struct{}
	RemoveTags map[task.Tag]struct{}

	// Dependencies are keyed by the textual form of the reference.
	AddDeps    map[string]task.Ref
	RemoveDeps map[string]task.Ref

	// Annotation, when non-empty, adds an annotation. Like Active it is set
	// by callers, not by Parse.
	Annotation string
}

// IsEmpty reports whether the modification changes nothing.
func (m Modification) IsEmpty() bool {
	return !m.SetDescription &&
		m.Status == nil &&
		!m.WaitChanged &&
		m.Active == nil &&
		len(m.AddTags) == 0 &&
		len(m.RemoveTags) == 0 &&
		len(m.AddDeps) == 0 &&
		len(m.RemoveDeps) == 0 &&
		m.Annotation == ""
}

// Parse folds the argument list into a Modification. Arguments that look
// like a tag change but do not carry a valid tag name fall through to the
// description, matching what users expect from words such as "+1" or "-".
// A recognized property argument with an unparseable value is an error, not
// a description word; `wait:tomorow` silently becoming part of the
// description is exactly the surprise this avoids. Relative timestamps are
// evaluated against now.
func Parse(args []string, now time.Time) (Modification, error) {
	var m Modification
	var words []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "+"):
			if tag, err := task.NewTag(arg[1:]); err == nil {
				m.addTag(tag)
				continue
			}
		case strings.HasPrefix(arg, "-"):
			if tag, err := task.NewTag(arg[1:]); err == nil {
				m.removeTag(tag)
				continue
			}
		case strings.HasPrefix(arg, "wait:"):
			if err := m.parseWait(arg[len("wait:"):], now); err != nil {
				return Modification{}, err
			}
			continue
		case strings.HasPrefix(arg, "status:"):
			st, err := task.ParseStatus(arg[len("status:"):])
			if err != nil {
				return Modification{}, fmt.Errorf("%w: %q: %v", ErrArg, arg, err)
			}
			m.Status = &st
			continue
		case strings.HasPrefix(arg, "depends:"):
			if err := m.parseDepends(arg[len("depends:"):]); err != nil {
				return Modification{}, fmt.Errorf("%w: %q: %v", ErrArg, arg, err)
			}
			continue
		}
		words = append(words, arg)
	}
	if len(words) > 0 {
		m.Description = strings.Join(words, " ")
		m.SetDescription = true
	}
	return m, nil
}

func (m *Modification) addTag(tag task.Tag) {
	if m.AddTags == nil {
		m.AddTags = make(map[task.Tag]struct{})
	}
	m.AddTags[tag] = struct{}{}
}

func (m *Modification) removeTag(tag task.Tag) {
	if m.RemoveTags == nil {
		m.RemoveTags = make(map[task.Tag]struct{})
	}
	m.RemoveTags[tag] = struct{}{}
}

// parseWait handles `wait:<timestamp>`; an empty value clears the wait.
func (m *Modification) parseWait(value string, now time.Time) error {
	m.WaitChanged = true
	if value == "" {
		m.Wait = nil
		return nil
	}
	ts, err := parseTimestamp(value, now)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrArg, "wait:"+value, err)
	}
	m.Wait = &ts
	return nil
}

// parseDepends handles `depends:<ref>,...`, or `depends:-<ref>,...` to
// remove dependencies.
func (m *Modification) parseDepends(value string) error {
	remove := strings.HasPrefix(value, "-")
	if remove {
		value = value[1:]
	}
	if value == "" {
		return errors.New("empty task list")
	}
	for _, part := range strings.Split(value, ",") {
		ref, err := task.ParseRef(part)
		if err != nil {
			return err
		}
		if remove {
			if m.RemoveDeps == nil {
				m.RemoveDeps = make(map[string]task.Ref)
			}
			m.RemoveDeps[ref.String()] = ref
		} else {
			if m.AddDeps == nil {
				m.AddDeps = make(map[string]task.Ref)
			}
			m.AddDeps[ref.String()] = ref
		}
	}
	return nil
}
