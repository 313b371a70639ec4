package converter

import (
	"testing"

	"github.com/Amr-9/bech32m/pkg/codec/base16"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	passed, results := New().Verify()
	if len(results) != len(vectors) {
		t.Fatalf("Verify: got %d results, want %d", len(results), len(vectors))
	}
	for _, r := range results {
		if !r.Match {
			t.Errorf("%s: input %s prefix %q: got %q, want %q (%s)", r.TestName,
				r.Input, r.Prefix, r.Got, r.Expected, r.ErrorMessage)
		}
	}
	if !passed {
		t.Fatalf("Verify: reported failure")
	}
}

func TestVerifyReportsFailures(t *testing.T) {
	t.Parallel()

	// A converter that only understands hex fails every Bech32m and Base58
	// encode vector.
	passed, results := NewWithCodecs(base16.Codec{}).Verify()
	if passed {
		t.Fatalf("Verify: reported success for a hex-only converter")
	}

	var failed int
	for _, r := range results {
		if !r.Match {
			failed++
		}
	}
	// Re-prefix, Base58 and Bech32m-over-hex vectors all fail.
	if failed != 3 {
		t.Errorf("Verify: got %d failures, want 3", failed)
	}
}
