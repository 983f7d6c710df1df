package record

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	stowerrors "stowdb/pkg/errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Record{
		{ID: 0, Op: OpSet, Key: "a", Value: "1"},
		{ID: 41, Op: OpSet, Key: "hello", Value: ""},
		{ID: 42, Op: OpRemove, Key: "hello"},
		{ID: 7, Op: OpSet, Key: "", Value: "orphan key"},
	}

	for _, want := range cases {
		payload, err := Encode(want)
		if err != nil {
			t.Fatalf("Encode(%+v) error: %v", want, err)
		}
		got, err := Decode(payload, 0)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"truncated after id", []byte{0x05}},
		{"missing key length", []byte{0x00, byte(OpSet)}},
		{"trailing bytes", func() []byte {
			p, _ := Encode(Record{ID: 1, Op: OpRemove, Key: "k"})
			return append(p, 0xFF)
		}()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.payload, 123)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !stowerrors.IsRecordError(err) {
				t.Fatalf("expected RecordError, got %T: %v", err, err)
			}
			re, _ := stowerrors.AsRecordError(err)
			if re.Code() != stowerrors.ErrorCodeMalformedRecord {
				t.Errorf("code = %v, want %v", re.Code(), stowerrors.ErrorCodeMalformedRecord)
			}
		})
	}
}

func TestEncodeRecordTooLarge(t *testing.T) {
	big := strings.Repeat("x", MaxPayloadSize)
	_, err := Encode(Record{ID: 1, Op: OpSet, Key: "k", Value: big})
	if err == nil {
		t.Fatal("expected RecordTooLarge error, got nil")
	}
	re, ok := stowerrors.AsRecordError(err)
	if !ok {
		t.Fatalf("expected RecordError, got %T", err)
	}
	if re.Code() != stowerrors.ErrorCodeRecordTooLarge {
		t.Errorf("code = %v, want %v", re.Code(), stowerrors.ErrorCodeRecordTooLarge)
	}
}

func TestEncodeAtMaxBoundary(t *testing.T) {
	// Construct a value sized so the full payload lands exactly at
	// MaxPayloadSize: should succeed. The value's uvarint length prefix is
	// 1 byte for an empty value but 3 bytes for a value this long, hence +2.
	r := Record{ID: 0, Op: OpSet, Key: "k"}
	overhead := len(mustEncode(t, Record{ID: 0, Op: OpSet, Key: "k", Value: ""})) + 2
	r.Value = strings.Repeat("v", MaxPayloadSize-overhead)

	payload, err := Encode(r)
	if err != nil {
		t.Fatalf("Encode at boundary failed: %v", err)
	}
	if len(payload) != MaxPayloadSize {
		t.Fatalf("payload len = %d, want %d", len(payload), MaxPayloadSize)
	}

	decoded, err := Decode(payload, 0)
	if err != nil {
		t.Fatalf("Decode at boundary failed: %v", err)
	}
	if decoded.Value != r.Value {
		t.Errorf("value mismatch after boundary round trip")
	}
}

func mustEncode(t *testing.T, r Record) []byte {
	t.Helper()
	b, err := Encode(r)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return b
}

func TestLengthPrefixRoundTrip(t *testing.T) {
	prefix := EncodeLengthPrefix(1234)
	if got := DecodeLengthPrefix(prefix); got != 1234 {
		t.Errorf("DecodeLengthPrefix = %d, want 1234", got)
	}
}
