package en

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/d21d3q/goduid/internal/duid"
)

func TestDecode(t *testing.T) {
	rec, warnings, err := (Driver{}).Decode(context.Background(), mustHex(t, "0002000000090102030405"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	en, ok := rec.(*duid.EN)
	if !ok {
		t.Fatalf("unexpected record %T", rec)
	}
	if en.EnterpriseNumber != 9 {
		t.Fatalf("enterprise number mismatch: %d", en.EnterpriseNumber)
	}
	if got := en.IdentifierHex(); got != "0102030405" {
		t.Fatalf("identifier mismatch: %s", got)
	}
}

func TestDecodeIdentifierOwned(t *testing.T) {
	raw := mustHex(t, "000200000009cafe")
	rec, _, err := (Driver{}).Decode(context.Background(), raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	raw[6] = 0x00
	if got := rec.(*duid.EN).IdentifierHex(); got != "cafe" {
		t.Fatalf("identifier aliases the input buffer: %s", got)
	}
}

func TestDecodeEmptyIdentifier(t *testing.T) {
	rec, _, err := (Driver{}).Decode(context.Background(), mustHex(t, "0002ffffffff"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	en := rec.(*duid.EN)
	if en.EnterpriseNumber != 0xffffffff {
		t.Fatalf("enterprise number mismatch: %d", en.EnterpriseNumber)
	}
	if en.Identifier == nil || len(en.Identifier) != 0 {
		t.Fatalf("expected empty identifier, got %v", en.Identifier)
	}
}

func TestDecodeTooShort(t *testing.T) {
	_, _, err := (Driver{}).Decode(context.Background(), mustHex(t, "0002000000"))
	var short *duid.TooShortForTypeError
	if !errors.As(err, &short) || short.Minimum != 6 || short.Actual != 5 {
		t.Fatalf("expected TooShortForTypeError(6, 5), got %v", err)
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
