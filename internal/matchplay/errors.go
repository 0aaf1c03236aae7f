package matchplay

import "fmt"

// MissingJoinKeyError reports a required cross-feed lookup with no
// match (group id, hole-status join). Fatal for the run: every
// downstream field depends on the joined value.
type MissingJoinKeyError struct {
	Kind string // "group", "hole-status"
	Key  string
}

func (e *MissingJoinKeyError) Error() string {
	return fmt.Sprintf("missing %s mapping for key %q", e.Kind, e.Key)
}

// MissingFieldError reports an expected feed field that is absent from
// a payload. The feeds do not degrade gracefully, so this is fatal.
type MissingFieldError struct {
	Field   string
	Context string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q in %s", e.Field, e.Context)
}
