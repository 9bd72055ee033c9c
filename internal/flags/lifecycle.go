package flags

// aliasEntry maps a historical flag name to its canonical replacement. A
// deprecated alias still works with a warning; an expired alias is rejected
// with no fallback.
type aliasEntry struct {
	canonical  string
	deprecated Version
	expired    Version
}

var aliases = map[string]aliasEntry{
	"DefaultMaxRAMFraction": {canonical: "MaxRAMFraction", deprecated: Version{Major: 8}},
	"CreateMinidumpOnCrash": {canonical: "CreateCoredumpOnCrash", deprecated: Version{Major: 9}},
	"CMSMarkStackSizeMax":   {canonical: "MarkStackSizeMax", deprecated: Version{Major: 9}, expired: Version{Major: 10}},
}

// lifecycleEntry records when a canonical flag is scheduled out of service.
// The stages escalate: deprecated flags still take effect, obsolete flags
// are accepted but ignored, expired flags are rejected.
type lifecycleEntry struct {
	deprecated Version
	obsolete   Version
	expired    Version
}

var lifecycle = map[string]lifecycleEntry{
	"MaxGCMinorPauseMillis": {deprecated: Version{Major: 8}},
	"UseOldInlining":        {deprecated: Version{Major: 8}, obsolete: Version{Major: 9}},
	"ConvertSleepToYield":   {deprecated: Version{Major: 9}, obsolete: Version{Major: 10}},
	"UseBoundThreads":       {obsolete: Version{Major: 9}, expired: Version{Major: 10}},
}

// CheckLifecycle resolves aliasing and lifecycle state for a flag name from
// the input stream. token is the full option text for diagnostics. The
// returned canonical name is empty with a nil error when the flag is
// obsolete: the token is accepted but must be ignored.
func CheckLifecycle(name, token string) (string, []Warning, error) {
	var warns []Warning
	if a, ok := aliases[name]; ok {
		if !a.expired.IsZero() && a.expired.AtMost(Current) {
			return "", nil, Errorf(ExpiredOption, token,
				"option %s expired in %s; use %s", name, a.expired, a.canonical)
		}
		if !a.deprecated.IsZero() && a.deprecated.AtMost(Current) {
			warns = append(warns, Warning{
				Kind:    DeprecatedOption,
				Token:   token,
				Message: "option " + name + " was deprecated in " + a.deprecated.String() + "; use " + a.canonical + " instead",
			})
		}
		name = a.canonical
	}
	if lc, ok := lifecycle[name]; ok {
		switch {
		case !lc.expired.IsZero() && lc.expired.AtMost(Current):
			return "", nil, Errorf(ExpiredOption, token,
				"option %s was removed in %s", name, lc.expired)
		case !lc.obsolete.IsZero() && lc.obsolete.AtMost(Current):
			warns = append(warns, Warning{
				Kind:    ObsoleteOption,
				Token:   token,
				Message: "ignoring option " + name + "; support was removed in " + lc.obsolete.String(),
			})
			return "", warns, nil
		case !lc.deprecated.IsZero() && lc.deprecated.AtMost(Current):
			warns = append(warns, Warning{
				Kind:    DeprecatedOption,
				Token:   token,
				Message: "option " + name + " was deprecated in " + lc.deprecated.String() + " and will likely be removed in a future release",
			})
		}
	}
	return name, warns, nil
}
