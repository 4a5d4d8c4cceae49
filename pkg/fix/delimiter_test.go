package fix

import (
	"errors"
	"testing"
)

func TestNormalize_DeclaredDelimiter(t *testing.T) {
	testCases := []struct {
		name     string
		message  string
		declared byte
		want     string
	}{
		{
			name:     "pipe declared",
			message:  "8=FIX.4.2|9=123|35=D|",
			declared: '|',
			want:     "8=FIX.4.2\x019=123\x0135=D\x01",
		},
		{
			name:     "caret declared",
			message:  "8=FIX.4.4^9=65^35=8^",
			declared: '^',
			want:     "8=FIX.4.4\x019=65\x0135=8\x01",
		},
		{
			name:     "comma declared",
			message:  "35=D,55=AAPL,54=1",
			declared: ',',
			want:     "35=D\x0155=AAPL\x0154=1",
		},
		{
			name:     "canonical declared returns message unchanged",
			message:  "8=FIX.4.2\x019=123\x0135=D\x01",
			declared: SOH,
			want:     "8=FIX.4.2\x019=123\x0135=D\x01",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.message, tc.declared)
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Normalize = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDetect_Substitutes(t *testing.T) {
	for _, delim := range []byte{'|', '^', '~', ',', ';', '\t'} {
		d := string(delim)
		message := "8=FIX.4.2" + d + "9=123" + d + "35=D" + d
		got, err := Detect(message)
		if err != nil {
			t.Fatalf("Detect(%q) failed: %v", message, err)
		}
		if got != delim {
			t.Errorf("Detect(%q) = %q, want %q", message, got, delim)
		}
	}
}

func TestDetect_PriorityOrder(t *testing.T) {
	// Adversarial messages matching both the pipe and caret signatures must
	// always resolve to pipe, regardless of which signature appears first.
	testCases := []struct {
		name    string
		message string
	}{
		{"pipe signature first", "8=FIX.4.2|9=12|8=FIX.4.2^9=12^"},
		{"caret signature first", "8=FIX.4.2^9=12^8=FIX.4.2|9=12|"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Detect(tc.message)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if got != '|' {
				t.Errorf("Detect = %q, want '|'", got)
			}
		})
	}
}

func TestDetect_CanonicalFallback(t *testing.T) {
	// No substitute signature, but SOH is present: the message is treated as
	// already canonical.
	message := "35=D\x0155=AAPL\x01"
	got, err := Detect(message)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got != SOH {
		t.Errorf("Detect = %#x, want SOH", got)
	}
}

func TestDetect_Unknown(t *testing.T) {
	_, err := Detect("this is not a FIX message")
	if !errors.Is(err, ErrDelimiterUnknown) {
		t.Errorf("Detect error = %v, want ErrDelimiterUnknown", err)
	}
}

func TestNormalize_AutoDetect(t *testing.T) {
	got, err := Normalize("8=FIX.4.2|9=123|35=D|", 0)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := "8=FIX.4.2\x019=123\x0135=D\x01"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}

	_, err = Normalize("garbage without structure", 0)
	if !errors.Is(err, ErrDelimiterUnknown) {
		t.Errorf("Normalize error = %v, want ErrDelimiterUnknown", err)
	}
}

func TestNormalize_Idempotence(t *testing.T) {
	message := "8=FIX.4.2|9=123|35=D|"

	once, err := Normalize(message, '|')
	if err != nil {
		t.Fatalf("first Normalize failed: %v", err)
	}
	twice, err := Normalize(once, SOH)
	if err != nil {
		t.Fatalf("second Normalize failed: %v", err)
	}
	if twice != once {
		t.Errorf("normalize is not idempotent: %q != %q", twice, once)
	}

	// Auto-detection on canonical output resolves to SOH and changes nothing.
	again, err := Normalize(once, 0)
	if err != nil {
		t.Fatalf("auto Normalize failed: %v", err)
	}
	if again != once {
		t.Errorf("auto normalize changed canonical message: %q != %q", again, once)
	}
}

func TestDisplay(t *testing.T) {
	canonical := "8=FIX.4.2\x019=123\x0135=D\x01"

	if got := Display(canonical, '|'); got != "8=FIX.4.2|9=123|35=D|" {
		t.Errorf("Display = %q", got)
	}

	// Zero delimiter defaults to pipe.
	if got := Display(canonical, 0); got != "8=FIX.4.2|9=123|35=D|" {
		t.Errorf("Display with zero delim = %q", got)
	}
}
