package fix

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ssargent/fixhub/pkg/dictionary"
)

// ErrEmptyMessage indicates the parsed message contained no valid fields.
var ErrEmptyMessage = errors.New("empty or invalid message format")

// ErrMissingMsgType indicates tag 35 (MsgType) was absent.
var ErrMissingMsgType = errors.New("missing required tag 35 (MsgType)")

// UnknownMsgTypeError indicates tag 35 carried a code the catalog does not
// know. The message is otherwise fully parsed.
type UnknownMsgTypeError struct {
	Code string
}

func (e *UnknownMsgTypeError) Error() string {
	return fmt.Sprintf("unknown message type: %s", e.Code)
}

// MissingTagsError indicates a known message type was missing tags from its
// required set. Missing is always sorted ascending.
type MissingTagsError struct {
	MsgType  string
	TypeName string
	Missing  []int
}

func (e *MissingTagsError) Error() string {
	tags := make([]string, len(e.Missing))
	for i, t := range e.Missing {
		tags[i] = strconv.Itoa(t)
	}
	return fmt.Sprintf("missing required tags for %s: %s", e.TypeName, strings.Join(tags, ", "))
}

// Result is the outcome of validating a parsed message. When Valid is false,
// Err carries the reason and Fields carries whatever was recoverable: nil
// when parsing yielded nothing usable, the full mapping when the only
// problem is an unrecognized or incomplete message type.
type Result struct {
	Valid  bool
	Err    error
	Fields ParsedMessage
}

// Validator checks parsed messages against a message-type catalog.
type Validator struct {
	catalog dictionary.Catalog
}

// NewValidator creates a validator backed by the given catalog. A nil
// catalog falls back to the built-in default.
func NewValidator(catalog dictionary.Catalog) *Validator {
	if catalog == nil {
		catalog = dictionary.Default()
	}
	return &Validator{catalog: catalog}
}

// Validate checks a parsed message, short-circuiting on the first problem:
// empty mapping, missing MsgType, unknown MsgType, then missing required
// tags. Message types without a registered required set pass once their code
// is known to the catalog.
func (v *Validator) Validate(fields ParsedMessage) Result {
	if len(fields) == 0 {
		return Result{Err: ErrEmptyMessage}
	}

	code, ok := fields.MsgType()
	if !ok {
		return Result{Err: ErrMissingMsgType}
	}

	name, known := v.catalog.TypeName(code)
	if !known {
		return Result{Err: &UnknownMsgTypeError{Code: code}, Fields: fields}
	}

	if required, ok := v.catalog.RequiredTags(code); ok {
		if missing := missingTags(required, fields); len(missing) > 0 {
			return Result{
				Err:    &MissingTagsError{MsgType: code, TypeName: name, Missing: missing},
				Fields: fields,
			}
		}
	}

	return Result{Valid: true, Fields: fields}
}

// TypeName resolves a message-type code to its human-readable name via the
// validator's catalog.
func (v *Validator) TypeName(code string) (string, bool) {
	return v.catalog.TypeName(code)
}

// missingTags computes required minus present, sorted ascending so the
// report is stable regardless of input field order.
func missingTags(required []int, fields ParsedMessage) []int {
	var missing []int
	for _, tag := range required {
		if _, ok := fields[tag]; !ok {
			missing = append(missing, tag)
		}
	}
	sort.Ints(missing)
	return missing
}
