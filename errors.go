package chronos

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRange          = "range"           // numeric value outside its domain
	CodeArgument       = "argument"        // missing/incompatible argument
	CodeInvalidDate    = "invalid_date"    // calendar rejected a year/month/day combination
	CodeInvalidFormat  = "invalid_format"  // text could not be parsed (used by codec)
	CodeSourceContract = "source_contract" // a zone source violated its documented contract (used by tz)
	CodeZoneNotFound   = "zone_not_found"  // zone id did not resolve (used by tz)
)

// Issue is a single coded failure. It implements error so call sites can
// return it directly; AsIssue recovers the code and params downstream.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":-64800, "max":64800, "got":65000})
	// for diagnostics and observability.
	Params map[string]any
}

// Error renders "code: message" plus sorted params when present.
func (is Issue) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s", is.Code, is.Message)
	if len(is.Params) > 0 {
		keys := make([]string, 0, len(is.Params))
		for k := range is.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", k, is.Params[k])
		}
		b.WriteString(")")
	}
	return b.String()
}

func (is Issue) Unwrap() error { return is.Cause }

// NewIssue constructs an Issue with the given code and message.
func NewIssue(code, message string) Issue {
	return Issue{Code: code, Message: message}
}

// Issuef constructs an Issue with a formatted message.
func Issuef(code, format string, args ...any) Issue {
	return Issue{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var is Issue
	if errors.As(err, &is) {
		return is, true
	}
	return Issue{}, false
}

// IsCode reports whether err is (or wraps) an Issue with the given code.
func IsCode(err error, code string) bool {
	is, ok := AsIssue(err)
	return ok && is.Code == code
}
