package fix

import (
	"strings"
	"testing"
)

func builtOrder(t *testing.T) string {
	t.Helper()
	builder := newTestBuilder(t, "FIX.4.2")
	return builder.Build("D", map[int]string{
		TagClOrdID: "ORD1",
		TagSymbol:  "AAPL",
		TagSide:    "1",
	})
}

func TestVerifyChecksum(t *testing.T) {
	msg := builtOrder(t)

	if err := VerifyChecksum(msg); err != nil {
		t.Errorf("valid message failed checksum verification: %v", err)
	}

	// Flip one payload byte: AAPL -> AAPM.
	tampered := strings.Replace(msg, "55=AAPL", "55=AAPM", 1)
	if err := VerifyChecksum(tampered); err == nil {
		t.Error("tampered message passed checksum verification")
	}

	if err := VerifyChecksum("35=D\x0155=AAPL\x01"); err == nil {
		t.Error("message without a checksum field passed verification")
	}

	if err := VerifyChecksum("35=D\x0110=abc"); err == nil {
		t.Error("malformed checksum value passed verification")
	}
}

func TestVerifyBodyLength(t *testing.T) {
	msg := builtOrder(t)

	if err := VerifyBodyLength(msg); err != nil {
		t.Errorf("valid message failed body length verification: %v", err)
	}

	// Growing a value invalidates the declared length.
	tampered := strings.Replace(msg, "55=AAPL", "55=AAPLCORP", 1)
	if err := VerifyBodyLength(tampered); err == nil {
		t.Error("tampered message passed body length verification")
	}

	if err := VerifyBodyLength("35=D\x0155=AAPL\x01"); err == nil {
		t.Error("message without a body length field passed verification")
	}
}
