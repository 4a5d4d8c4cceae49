// Package fix provides parsing, validation and construction of FIX
// (Financial Information eXchange) protocol messages.
//
// The package is organized as a small pipeline: raw text is first
// canonicalized by the delimiter normalizer, split into tag-value pairs by
// the parser, and checked against per-message-type rules by the validator.
// The builder runs the pipeline in reverse, producing wire-correct messages
// with computed BodyLength (9) and CheckSum (10) fields.
//
// # Wire Format
//
// A FIX message is a sequence of tag=value fields joined by the SOH control
// character (ASCII 0x01):
//
//	8=FIX.4.4<SOH>9=72<SOH>35=D<SOH>...<SOH>10=157
//
// Human-readable transcripts commonly substitute a printable delimiter for
// SOH. The normalizer accepts any of | ^ ~ , ; or tab, either declared by
// the caller or detected from the message's header signature, and rewrites
// the message to the canonical SOH form before anything else touches it.
//
// # Checksum
//
// CheckSum is the byte sum of every character preceding the "10=" field,
// including delimiters, modulo 256, formatted as three zero-padded decimal
// digits. It is always computed over the canonical SOH form: checksums taken
// over substitute delimiters would not match what a real counterparty
// computes. BodyLength counts every byte after the BodyLength field's own
// trailing delimiter up to but not including the checksum field. Both fields
// are always recomputed by the builder and never trusted from caller input.
//
// # Usage
//
//	normalized, err := fix.Normalize(raw, 0) // 0 = detect the delimiter
//	if err != nil {
//	    return err
//	}
//
//	parser := fix.NewParser()
//	fields := parser.Parse(normalized)
//
//	validator := fix.NewValidator(dictionary.Default())
//	result := validator.Validate(fields)
//	if !result.Valid {
//	    return result.Err
//	}
//
// Building the reverse direction:
//
//	builder, err := fix.NewBuilder("FIX.4.4")
//	if err != nil {
//	    return err
//	}
//	wire := builder.Build("D", map[int]string{
//	    fix.TagSymbol: "AAPL",
//	    fix.TagSide:   "1",
//	})
//
// # Error Handling
//
// Validation failures are reported as structured results, never as panics.
// Malformed individual fields are the one locally recovered condition: the
// parser skips them and reports each through its diagnostic sink so the rest
// of the message remains usable. The builder assumes field values contain no
// SOH bytes; violating that precondition garbles the output rather than
// returning an error, since detecting it would cost a scan of every value on
// every build.
//
// # Thread Safety
//
// Every operation is a pure transformation of its inputs (the builder's
// injected clock read aside). Parser, Validator and Builder instances hold
// no mutable state and are safe for concurrent use.
package fix
