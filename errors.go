package namedtuple

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/namedtuple/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicateKey  = "duplicate_key"
	CodeInvalidKey    = "invalid_key"
	CodeUnknownKey    = "unknown_key"
	CodeInvalidType   = "invalid_type"
	CodeSizeMismatch  = "size_mismatch"
	CodeUnorderable   = "unorderable"
	CodeSchemaExists  = "schema_exists"
	CodeUnboundSchema = "unbound_schema"
)

// Issue describes one rejected declaration, construction or comparison.
type Issue struct {
	Code    string // One of the codes listed above.
	Key     string // Offending key, when there is one.
	Index   int    // Offending position (-1 when not positional).
	Message string
	// Params carries the structured values used to render Message.
	Params map[string]string
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_key at "age": duplicate key age at position 2 ...
		if it.Key != "" {
			fmt.Fprintf(b, "%s at %q: %s", it.Code, it.Key, it.Message)
		} else {
			fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// newIssue builds an Issue whose message is rendered by the i18n translator.
func newIssue(code, key string, index int, params map[string]string) Issue {
	if params == nil {
		params = map[string]string{}
	}
	if key != "" {
		params["key"] = key
	}
	if index >= 0 {
		params["index"] = strconv.Itoa(index)
	}
	return Issue{Code: code, Key: key, Index: index, Message: i18n.T(code, params), Params: params}
}
