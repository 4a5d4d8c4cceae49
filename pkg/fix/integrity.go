package fix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// VerifyChecksum recomputes the checksum of a canonical message and compares
// it against the embedded CheckSum (10) field. The checksum covers every
// byte before the "10=" field, including the delimiter that precedes it.
func VerifyChecksum(message string) error {
	marker := string(SOH) + strconv.Itoa(TagCheckSum) + "="
	idx := strings.LastIndex(message, marker)
	if idx < 0 {
		return errors.New("message has no checksum field")
	}

	declared := strings.TrimSuffix(message[idx+len(marker):], string(SOH))
	want, err := strconv.Atoi(declared)
	if err != nil {
		return fmt.Errorf("malformed checksum value %q", declared)
	}

	if got := Checksum(message[:idx+1]); got != want {
		return fmt.Errorf("checksum mismatch: message declares %03d, computed %03d", want, got)
	}
	return nil
}

// VerifyBodyLength recomputes the body length of a canonical message and
// compares it against the embedded BodyLength (9) field. The body spans
// everything after BodyLength's own trailing delimiter up to but not
// including the checksum field.
func VerifyBodyLength(message string) error {
	marker := string(SOH) + strconv.Itoa(TagBodyLength) + "="
	start := strings.Index(message, marker)
	if start < 0 {
		return errors.New("message has no body length field")
	}

	rest := message[start+len(marker):]
	end := strings.IndexByte(rest, SOH)
	if end < 0 {
		return errors.New("body length field is unterminated")
	}
	want, err := strconv.Atoi(rest[:end])
	if err != nil {
		return fmt.Errorf("malformed body length value %q", rest[:end])
	}

	body := rest[end+1:]
	checksumMarker := string(SOH) + strconv.Itoa(TagCheckSum) + "="
	if idx := strings.LastIndex(body, checksumMarker); idx >= 0 {
		body = body[:idx+1]
	}

	if len(body) != want {
		return fmt.Errorf("body length mismatch: message declares %d, computed %d", want, len(body))
	}
	return nil
}
