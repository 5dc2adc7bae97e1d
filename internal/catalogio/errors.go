package catalogio

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when the catalog source file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog not found: %s", e.Path)
}

// EmptyError is returned when the catalog source parses to null/empty.
type EmptyError struct {
	Path string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("catalog is empty: %s", e.Path)
}

// ParseFailureError is returned when the YAML parser rejects the source. Line
// is the 1-indexed line hint when the parser supplies one, else 0.
type ParseFailureError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseFailureError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog parse failure at %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("catalog parse failure at %s: %v", e.Path, e.Err)
}

func (e *ParseFailureError) Unwrap() error { return e.Err }

// MissingSectionError is returned when the required `skills` section is absent.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("catalog missing required section %q", e.Section)
}

// Offender names one unresolved cross-reference found during validation.
type Offender struct {
	// Kind is one of "task_skill", "skill_dependency", "category_task", "category_skill".
	Kind string
	// Owner is the task/skill/category that holds the bad reference.
	Owner string
	// Reference is the name that could not be resolved.
	Reference string
}

func (o Offender) String() string {
	return fmt.Sprintf("%s %q references unknown name %q", o.Kind, o.Owner, o.Reference)
}

// ValidationFailureError carries the complete list of unresolved references.
// Validation never fail-fasts: every offender in the catalog is reported in
// one error, never just the first.
type ValidationFailureError struct {
	Offenders []Offender
}

func (e *ValidationFailureError) Error() string {
	msgs := make([]string, 0, len(e.Offenders))
	for _, o := range e.Offenders {
		msgs = append(msgs, o.String())
	}
	return fmt.Sprintf("catalog validation failed with %d unresolved reference(s): %s",
		len(e.Offenders), errors.Join(stringsToErrors(msgs)...))
}

func stringsToErrors(msgs []string) []error {
	errs := make([]error, len(msgs))
	for i, m := range msgs {
		errs[i] = errors.New(m)
	}
	return errs
}
