package fix

import (
	"fmt"
	"reflect"
	"testing"
)

// captureSink collects parse diagnostics for assertions.
type captureSink struct {
	warnings []string
}

func (s *captureSink) Warnf(format string, args ...interface{}) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		message      string
		want         ParsedMessage
		wantWarnings int
	}{
		{
			name:    "normalized order header",
			message: "8=FIX.4.2\x019=123\x0135=D\x01",
			want:    ParsedMessage{8: "FIX.4.2", 9: "123", 35: "D"},
		},
		{
			name:    "empty input",
			message: "",
			want:    ParsedMessage{},
		},
		{
			name:    "whitespace-only fragments are discarded",
			message: "  \x0135=D\x01 \x01",
			want:    ParsedMessage{35: "D"},
		},
		{
			name:    "value containing equals is split on first equals only",
			message: "35=D\x0158=a=b=c\x01",
			want:    ParsedMessage{35: "D", 58: "a=b=c"},
		},
		{
			name:    "duplicate tag keeps last value",
			message: "55=AAPL\x0155=MSFT\x01",
			want:    ParsedMessage{55: "MSFT"},
		},
		{
			name:         "field without equals is skipped",
			message:      "35=D\x01notafield\x0155=AAPL\x01",
			want:         ParsedMessage{35: "D", 55: "AAPL"},
			wantWarnings: 1,
		},
		{
			name:         "non-integer tag is skipped",
			message:      "abc=1\x0135=D\x01",
			want:         ParsedMessage{35: "D"},
			wantWarnings: 1,
		},
		{
			name:         "non-positive tags are skipped",
			message:      "0=x\x01-5=y\x0135=D\x01",
			want:         ParsedMessage{35: "D"},
			wantWarnings: 2,
		},
		{
			name:         "nothing valid yields empty mapping",
			message:      "junk\x01more junk\x01",
			want:         ParsedMessage{},
			wantWarnings: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &captureSink{}
			parser := NewParser(WithDiagnostics(sink))

			got := parser.Parse(tc.message)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse = %v, want %v", got, tc.want)
			}
			if len(sink.warnings) != tc.wantWarnings {
				t.Errorf("got %d warnings %v, want %d", len(sink.warnings), sink.warnings, tc.wantWarnings)
			}
		})
	}
}

func TestParse_KeysArePositive(t *testing.T) {
	sink := &captureSink{}
	parser := NewParser(WithDiagnostics(sink))

	fields := parser.Parse("8=FIX.4.2\x010=zero\x01-1=neg\x0155=AAPL\x01")
	for tag := range fields {
		if tag <= 0 {
			t.Errorf("parsed mapping contains non-positive tag %d", tag)
		}
	}
}

func TestParsedMessage_MsgType(t *testing.T) {
	fields := ParsedMessage{35: "D", 55: "AAPL"}
	code, ok := fields.MsgType()
	if !ok || code != "D" {
		t.Errorf("MsgType = %q, %v; want \"D\", true", code, ok)
	}

	_, ok = ParsedMessage{55: "AAPL"}.MsgType()
	if ok {
		t.Error("MsgType reported present on a message without tag 35")
	}
}
