package chart

import "fmt"

// #region validation-error

// ValidationError names the first birth-input field that failed its
// range check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// #endregion validation-error

// #region validate

// Validate runs the ordered range checks on the birth input and
// reports the first violation.
func (in BirthInput) Validate() error {
	checks := []struct {
		field  string
		reason string
		bad    bool
	}{
		{"month", "must be between 1 and 12", in.Month < 1 || in.Month > 12},
		{"day", "must be between 1 and 31", in.Day < 1 || in.Day > 31},
		{"hour", "must be between 0 and 23", in.Hour < 0 || in.Hour > 23},
		{"minute", "must be between 0 and 59", in.Minute < 0 || in.Minute > 59},
		{"second", "must be between 0 and 59", in.Second < 0 || in.Second > 59},
	}
	for _, c := range checks {
		if c.bad {
			return &ValidationError{Field: c.field, Reason: c.reason}
		}
	}
	return nil
}

// #endregion validate
