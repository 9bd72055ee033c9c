package flags

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure or diagnostic.
type Kind int

const (
	// MalformedToken marks input that matches no recognized syntax.
	MalformedToken Kind = iota
	// UnknownOption marks a well-formed option the registry does not know.
	UnknownOption
	// ExpiredOption marks an option removed in an earlier release.
	ExpiredOption
	// DeprecatedOption marks an option scheduled for removal (warning only).
	DeprecatedOption
	// ObsoleteOption marks an option that is accepted but has no effect.
	ObsoleteOption
	// RangeError marks a value outside its flag's permitted range.
	RangeError
	// ConflictingSelection marks mutually exclusive choices set together.
	ConflictingSelection
	// UnreconcilableBound marks explicit heap bounds that contradict.
	UnreconcilableBound
	// ExpansionCycle marks a self-referential options file.
	ExpansionCycle
	// ExpansionDepthExceeded marks options files nested past the bound.
	ExpansionDepthExceeded
)

func (k Kind) String() string {
	switch k {
	case MalformedToken:
		return "malformed token"
	case UnknownOption:
		return "unknown option"
	case ExpiredOption:
		return "expired option"
	case DeprecatedOption:
		return "deprecated option"
	case ObsoleteOption:
		return "obsolete option"
	case RangeError:
		return "range error"
	case ConflictingSelection:
		return "conflicting selection"
	case UnreconcilableBound:
		return "unreconcilable bound"
	case ExpansionCycle:
		return "expansion cycle"
	case ExpansionDepthExceeded:
		return "expansion depth exceeded"
	default:
		return "unclassified"
	}
}

// Error is one classified fatal outcome, tied to the offending token when
// there is one. The pipeline stops at the first Error it produces.
type Error struct {
	Kind   Kind
	Token  string
	Reason string
}

func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %q: %s", e.Kind, e.Token, e.Reason)
}

// Errorf builds a classified error for a token.
func Errorf(kind Kind, token, format string, args ...any) *Error {
	return &Error{Kind: kind, Token: token, Reason: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification from err. The second result is false
// when err carries no classification.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Warning is one non-fatal classified diagnostic. Warnings accumulate;
// they never stop resolution.
type Warning struct {
	Kind    Kind
	Token   string
	Message string
}

func (w Warning) String() string {
	if w.Token == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %q: %s", w.Kind, w.Token, w.Message)
}
