package converter

import "fmt"

// VerifyResult holds the result of one self-test vector.
type VerifyResult struct {
	TestName     string
	Input        string
	Prefix       string // empty for decode vectors
	Expected     string
	Got          string
	Match        bool
	ErrorMessage string
}

type vector struct {
	name     string
	input    string
	prefix   string
	want     string
	wantKind Kind
}

// Outputs were produced by an independent Bech32m implementation.
var vectors = []vector{
	{
		name:  "Decode Bech32m to hex",
		input: "test1wpshgct5v5hd5wlx",
		want:  "706174617465",
	},
	{
		name:  "Decode string longer than 90 characters",
		input: "mn_shield-addr_test1dfv46yhqklvgh4kzaw9p8dpezydetjeccssc7y2p32keeaqeuy4sxqqc60ndd9aahqlyyr7k8rhq5l2f7kc3y28759geed4clwzgdlg0ucgahz2x",
		want:  "6a595d12e0b7d88bd6c2eb8a13b439111b95cb38c4218f11418aad9cf419e12b030018d3e6d697bdb83e420fd638ee0a7d49f5b11228fea1519cb6b8fb8486fd0fe6",
	},
	{
		name:  "Decode BIP-350 vector",
		input: "abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx",
		want:  "ffbbcdeb38bdab49ca307b9ac5a928398a418820",
	},
	{
		name:  "Decode uppercase string with empty payload",
		input: "A1LQFN3A",
		want:  "",
	},
	{
		name:  "Decode legacy Bech32",
		input: "abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw",
		want:  "00443214c74254b635cf84653a56d7c675be77df",
	},
	{
		name:     "Reject checksum over uppercase prefix",
		input:    "M1VUXWEZ",
		wantKind: KindInvalidEncoding,
	},
	{
		name:     "Reject malformed string",
		input:    "not_a_valid_bech32m_string!!!",
		wantKind: KindInvalidEncoding,
	},
	{
		name:   "Encode hex",
		input:  "706174617465",
		prefix: "test",
		want:   "test1wpshgct5v5hd5wlx",
	},
	{
		name:   "Re-prefix Bech32m",
		input:  "old_prefix1wpshgct5v5frd79v",
		prefix: "new_prefix",
		want:   "new_prefix1wpshgct5v52ycf9c",
	},
	{
		name:   "Encode Base58",
		input:  "Ae2tdPwUPEYy",
		prefix: "base58",
		want:   "base581p58rejhd9592uus698dfp",
	},
	{
		name:   "Prefer Bech32m over hex",
		input:  "a1c523caef",
		prefix: "new",
		want:   "new1c5clcu4x",
	},
	{
		name:     "Reject mixed-case prefix",
		input:    "706174617465",
		prefix:   "Test",
		wantKind: KindInvalidPrefix,
	},
	{
		name:     "Reject unknown format",
		input:    "not_a_valid_bech32m_string!!!",
		prefix:   "test",
		wantKind: KindUnrecognizedFormat,
	},
	{
		name:     "Reject 0x-prefixed hex",
		input:    "0x706174617465",
		prefix:   "test",
		wantKind: KindUnrecognizedFormat,
	},
}

// Verify runs the built-in conversion vectors through c and reports whether
// all of them produced the expected output.
func (c *Converter) Verify() (bool, []VerifyResult) {
	passed := true
	results := make([]VerifyResult, 0, len(vectors))

	for _, v := range vectors {
		var got string
		var err error
		if v.prefix == "" {
			got, err = c.Decode(v.input)
		} else {
			got, err = c.Encode(v.input, v.prefix)
		}

		result := VerifyResult{
			TestName: v.name,
			Input:    v.input,
			Prefix:   v.prefix,
			Expected: v.want,
			Got:      got,
		}
		if v.wantKind != "" {
			result.Expected = fmt.Sprintf("<%s>", v.wantKind)
		}

		switch {
		case err != nil && v.wantKind == "":
			result.ErrorMessage = err.Error()
		case err != nil:
			result.Got = fmt.Sprintf("<%s>", KindOf(err))
			result.Match = IsKind(err, v.wantKind)
		default:
			result.Match = v.wantKind == "" && got == v.want
		}

		if !result.Match {
			passed = false
		}
		results = append(results, result)
	}

	return passed, results
}
