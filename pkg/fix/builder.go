package fix

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SendingTimeLayout is the FIX timestamp format for tag 52: UTC with
// millisecond precision. time.Format truncates the fraction, matching the
// protocol's truncate-not-round requirement.
const SendingTimeLayout = "20060102-15:04:05.000"

// DefaultVersion is the protocol version used when none is configured.
const DefaultVersion = "FIX.4.4"

// beginStrings maps supported protocol version identifiers to the
// BeginString value that goes on the wire. FIX 5.0 sessions carry the
// FIXT.1.1 transport BeginString.
var beginStrings = map[string]string{
	"FIX.4.2": "FIX.4.2",
	"FIX.4.4": "FIX.4.4",
	"FIX.5.0": "FIXT.1.1",
}

// Versions returns the supported protocol version identifiers, sorted.
func Versions() []string {
	versions := make([]string, 0, len(beginStrings))
	for v := range beginStrings {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// Builder assembles wire-correct FIX messages: it fills in standard header
// fields, orders fields canonically, and computes BodyLength and CheckSum.
type Builder struct {
	beginString string
	now         func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock replaces the builder's time source. SendingTime (52) is the one
// place wall-clock time enters a message, so tests inject a fixed clock.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a builder for the given protocol version. An empty
// version selects DefaultVersion; an unsupported one is an error.
func NewBuilder(version string, opts ...BuilderOption) (*Builder, error) {
	if version == "" {
		version = DefaultVersion
	}
	beginString, ok := beginStrings[version]
	if !ok {
		return nil, fmt.Errorf("unsupported FIX version: %s (supported: %s)",
			version, strings.Join(Versions(), ", "))
	}
	b := &Builder{beginString: beginString, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build produces a complete canonical (SOH-delimited) message. MsgType (35),
// BeginString (8) and SendingTime (52) are inserted when absent from fields;
// caller-supplied BodyLength (9) and CheckSum (10) are discarded and always
// recomputed. Fields are emitted in ascending tag order, each terminated by
// SOH; the checksum field comes last with no trailing delimiter.
//
// Precondition: field values must not contain SOH. Violations garble the
// output rather than returning an error.
func (b *Builder) Build(msgType string, fields map[int]string) string {
	combined := make(map[int]string, len(fields)+3)
	for tag, value := range fields {
		combined[tag] = value
	}
	if _, ok := combined[TagMsgType]; !ok {
		combined[TagMsgType] = msgType
	}
	if _, ok := combined[TagBeginString]; !ok {
		combined[TagBeginString] = b.beginString
	}
	if _, ok := combined[TagSendingTime]; !ok {
		combined[TagSendingTime] = b.now().UTC().Format(SendingTimeLayout)
	}

	tags := make([]int, 0, len(combined))
	for tag := range combined {
		if tag == TagBodyLength || tag == TagCheckSum {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Ints(tags)

	var sb strings.Builder
	for _, tag := range tags {
		sb.WriteString(strconv.Itoa(tag))
		sb.WriteByte('=')
		sb.WriteString(combined[tag])
		sb.WriteByte(SOH)
	}
	msg := sb.String()

	// The first delimiter terminates the BeginString field; everything after
	// it is the body that BodyLength counts. BeginString sorts first (tag 8),
	// so BodyLength lands directly behind it.
	bodyStart := strings.IndexByte(msg, SOH) + 1
	body := msg[bodyStart:]
	withLength := msg[:bodyStart] +
		strconv.Itoa(TagBodyLength) + "=" + strconv.Itoa(len(body)) + string(SOH) +
		body

	return withLength + fmt.Sprintf("%d=%03d", TagCheckSum, Checksum(withLength))
}

// Checksum returns the FIX checksum of s: the sum of all byte values
// modulo 256.
func Checksum(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += int(s[i])
	}
	return sum % 256
}
