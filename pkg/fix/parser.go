package fix

import (
	"log"
	"strconv"
	"strings"
)

// ParsedMessage maps integer tags to their string values. Absence of a key
// means the tag was not present or its field failed to parse as tag=value.
type ParsedMessage map[int]string

// MsgType returns the value of tag 35, if present.
func (m ParsedMessage) MsgType() (string, bool) {
	v, ok := m[TagMsgType]
	return v, ok
}

// DiagnosticSink receives non-fatal parse warnings. The parser reports
// malformed fields through it instead of failing the whole parse.
type DiagnosticSink interface {
	Warnf(format string, args ...interface{})
}

// logSink is the default sink, writing warnings to the standard logger.
type logSink struct{}

func (logSink) Warnf(format string, args ...interface{}) {
	log.Printf("WARN: "+format, args...)
}

// Parser splits canonicalized FIX messages into tag-value mappings.
type Parser struct {
	diag DiagnosticSink
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithDiagnostics routes malformed-field warnings to the given sink.
func WithDiagnostics(sink DiagnosticSink) ParserOption {
	return func(p *Parser) {
		p.diag = sink
	}
}

// NewParser creates a parser. Without options, diagnostics go to the
// standard logger.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{diag: logSink{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits a canonical (SOH-delimited) message into a ParsedMessage.
// Parse never fails: empty fragments are discarded, and fields without an
// equals sign or without a positive integer tag are skipped with a
// diagnostic. Duplicate tags keep the last value seen. The result is empty
// if and only if the input contained no valid field.
func (p *Parser) Parse(message string) ParsedMessage {
	fields := ParsedMessage{}
	for _, raw := range strings.Split(message, string(SOH)) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		// Values may legitimately contain '=', so split on the first one only.
		tagStr, value, ok := strings.Cut(raw, "=")
		if !ok {
			p.diag.Warnf("invalid tag-value pair: %q", raw)
			continue
		}
		tag, err := strconv.Atoi(tagStr)
		if err != nil || tag <= 0 {
			p.diag.Warnf("invalid tag (not a positive integer): %q", tagStr)
			continue
		}
		fields[tag] = value
	}
	return fields
}
