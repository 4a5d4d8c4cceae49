//go:build fuzz
// +build fuzz

package fix

import (
	"strings"
	"testing"
)

type silentSink struct{}

func (silentSink) Warnf(format string, args ...interface{}) {}

// FuzzParse_NeverPanics checks that arbitrary input never crashes the parser
// and that every surviving key is a positive integer.
func FuzzParse_NeverPanics(f *testing.F) {
	f.Add("8=FIX.4.2\x019=123\x0135=D\x01")
	f.Add("")
	f.Add("===\x01\x01\x01")
	f.Add("0=zero\x01-1=neg\x01abc")
	f.Add("35=D\x0158=a=b=c")

	parser := NewParser(WithDiagnostics(silentSink{}))

	f.Fuzz(func(t *testing.T, message string) {
		fields := parser.Parse(message)
		for tag := range fields {
			if tag <= 0 {
				t.Errorf("parsed mapping contains non-positive tag %d", tag)
			}
		}
	})
}

// FuzzNormalize_Idempotent checks that re-normalizing canonical output is a
// no-op.
func FuzzNormalize_Idempotent(f *testing.F) {
	f.Add("8=FIX.4.2|9=123|35=D|")
	f.Add("8=FIX.4.4^9=65^35=8^")
	f.Add("8=FIX.4.2\x019=1\x01")

	f.Fuzz(func(t *testing.T, message string) {
		once, err := Normalize(message, 0)
		if err != nil {
			return // undetectable input is fine
		}
		twice, err := Normalize(once, SOH)
		if err != nil {
			t.Fatalf("re-normalize failed: %v", err)
		}
		if twice != once {
			t.Errorf("normalize is not idempotent: %q != %q", twice, once)
		}
	})
}

// FuzzBuild_RoundTrip checks the builder/parser round-trip property for
// arbitrary delimiter-free values.
func FuzzBuild_RoundTrip(f *testing.F) {
	f.Add("AAPL", "1", "ORD1")
	f.Add("", "", "")
	f.Add("a=b", "x y", "unicode ✓")

	builder, err := NewBuilder("FIX.4.4")
	if err != nil {
		f.Fatalf("NewBuilder failed: %v", err)
	}
	parser := NewParser(WithDiagnostics(silentSink{}))

	f.Fuzz(func(t *testing.T, symbol, side, clOrdID string) {
		for _, v := range []string{symbol, side, clOrdID} {
			if strings.IndexByte(v, SOH) >= 0 {
				t.Skip("SOH in values is a documented precondition violation")
			}
		}

		in := map[int]string{
			TagSymbol:  symbol,
			TagSide:    side,
			TagClOrdID: clOrdID,
		}
		msg := builder.Build("D", in)

		if err := VerifyBodyLength(msg); err != nil {
			t.Errorf("VerifyBodyLength: %v", err)
		}
		if err := VerifyChecksum(msg); err != nil {
			t.Errorf("VerifyChecksum: %v", err)
		}

		fields := parser.Parse(msg)
		for tag, want := range in {
			// Values that parse-split ambiguously (leading '=' etc) still
			// come back verbatim because only the first '=' of a field is
			// significant.
			if got := fields[tag]; got != want {
				t.Errorf("tag %d = %q after round trip, want %q", tag, got, want)
			}
		}
	})
}
