package fix

import (
	"errors"
	"regexp"
	"strings"
)

// SOH is the canonical FIX field delimiter (ASCII 0x01).
const SOH = byte(0x01)

// ErrDelimiterUnknown is returned when no delimiter was declared, none of the
// substitute delimiters matched the message's header signature, and the
// message does not already contain SOH.
var ErrDelimiterUnknown = errors.New("unable to detect the delimiter used in the FIX message")

// delimiterPriority lists the substitute delimiters people use in place of
// SOH, in detection order. The order is fixed so that a message which could
// ambiguously match more than one candidate always resolves the same way.
var delimiterPriority = []byte{'|', '^', '~', ',', ';', '\t'}

type delimiterSignature struct {
	delim byte
	re    *regexp.Regexp
}

var signatures []delimiterSignature

func init() {
	signatures = make([]delimiterSignature, 0, len(delimiterPriority))
	for _, d := range delimiterPriority {
		// Header signature: BeginString, the candidate delimiter, BodyLength.
		pattern := `8=FIX\.\d\.\d` + regexp.QuoteMeta(string(d)) + `9=\d+`
		signatures = append(signatures, delimiterSignature{
			delim: d,
			re:    regexp.MustCompile(pattern),
		})
	}
}

// Detect infers the field delimiter of a message by scanning for the
// structural header signature "8=FIX.x.y<delim>9=<digits>" with each
// substitute delimiter in priority order. If no candidate matches but the
// message already contains SOH, SOH is returned.
func Detect(message string) (byte, error) {
	for _, sig := range signatures {
		if sig.re.MatchString(message) {
			return sig.delim, nil
		}
	}
	if strings.IndexByte(message, SOH) >= 0 {
		return SOH, nil
	}
	return 0, ErrDelimiterUnknown
}

// Normalize rewrites a message to use the canonical SOH delimiter. When
// declared is zero the delimiter is detected via Detect. The input is never
// mutated; a new string is returned when rewriting is needed.
func Normalize(message string, declared byte) (string, error) {
	if declared == 0 {
		detected, err := Detect(message)
		if err != nil {
			return "", err
		}
		declared = detected
	}
	if declared == SOH {
		return message, nil
	}
	return strings.ReplaceAll(message, string(declared), string(SOH)), nil
}

// Display rewrites a canonical message with a printable delimiter for
// human-readable output. A zero delim defaults to the pipe character.
func Display(message string, delim byte) string {
	if delim == 0 {
		delim = '|'
	}
	return strings.ReplaceAll(message, string(SOH), string(delim))
}
