package goduid

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/d21d3q/goduid/internal/driver"
	_ "github.com/d21d3q/goduid/internal/driver/en"   // register driver
	_ "github.com/d21d3q/goduid/internal/driver/ll"   // register driver
	_ "github.com/d21d3q/goduid/internal/driver/llt"  // register driver
	_ "github.com/d21d3q/goduid/internal/driver/uuid" // register driver
	"github.com/d21d3q/goduid/internal/duid"
	"github.com/d21d3q/goduid/internal/options"
)

// Result captures the outcome of DecodeHex.
type Result struct {
	Input     string
	RawHex    string
	ByteCount int
	Record    duid.Record
	Warnings  []duid.Warning
	Fields    map[string]any
}

// String renders the result one field per line.
func (r Result) String() string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	line("Input DUID Hex: %s", r.Input)
	line("Total DUID Length: %d bytes", r.ByteCount)
	if r.Record == nil {
		return b.String()
	}
	t := r.Record.Type()
	line("DUID Type: %d [%s]", uint16(t), t.Description())

	switch rec := r.Record.(type) {
	case *duid.LLT:
		line("Hardware Type: %d [%s]", uint16(rec.HardwareType), rec.HardwareType)
		line("Seconds since midnight (UTC), January 1, 2000: %d", rec.TimeOffset)
		if !rec.Timestamp.IsZero() {
			line("Calculated Timestamp (UTC): %s", rec.Timestamp.Format(time.RFC3339))
		}
		line("Link-layer Address: %s", rec.LinkLayerAddr)
	case *duid.EN:
		line("Enterprise Number: %d", rec.EnterpriseNumber)
		line("Identifier: 0x%s", rec.IdentifierHex())
	case *duid.LL:
		line("Hardware Type: %d [%s]", uint16(rec.HardwareType), rec.HardwareType)
		line("Link-layer Address: %s", rec.LinkLayerAddr)
	case *duid.UUID:
		line("UUID: %s", rec.Text)
	case *duid.Unknown:
		line("Unknown DUID Type. Unable to decode further.")
		if len(rec.Data) > 0 {
			line("Remaining undecoded data: 0x%s", rec.DataHex())
		}
	}
	for _, w := range r.Warnings {
		line("Warning: %s", w.Message)
	}
	return b.String()
}

// JSON renders the result as indented JSON.
func (r Result) JSON() ([]byte, error) {
	summary := map[string]any{
		"input":      r.Input,
		"raw_hex":    r.RawHex,
		"byte_count": r.ByteCount,
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	if len(r.Warnings) > 0 {
		warnings := make([]map[string]string, 0, len(r.Warnings))
		for _, w := range r.Warnings {
			warnings = append(warnings, map[string]string{"kind": string(w.Kind), "message": w.Message})
		}
		summary["warnings"] = warnings
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return data, nil
}

// DecodeHex normalises the hex string and decodes it as a DUID.
func DecodeHex(ctx context.Context, raw string) (Result, error) {
	return DecodeHexWithOptions(ctx, raw, DecodeOptions{})
}

// DecodeHexWithOptions decodes a hex string with custom options.
func DecodeHexWithOptions(ctx context.Context, raw string, opts DecodeOptions) (Result, error) {
	data, err := options.ParseHex(raw)
	if err != nil {
		return Result{}, err
	}
	result, err := decode(opts.toInternal(ctx), data)
	if err != nil {
		return Result{}, err
	}
	result.Input = raw
	return result, nil
}

// DecodeBytes decodes a DUID that is already in binary form.
func DecodeBytes(ctx context.Context, data []byte) (Result, error) {
	result, err := decode(ctx, data)
	if err != nil {
		return Result{}, err
	}
	result.Input = result.RawHex
	return result, nil
}

func decode(ctx context.Context, data []byte) (Result, error) {
	decoded, err := driver.Decode(ctx, data)
	if err != nil {
		return Result{}, err
	}
	return Result{
		RawHex:    hex.EncodeToString(data),
		ByteCount: len(data),
		Record:    decoded.Record,
		Warnings:  decoded.Warnings,
		Fields:    decoded.Record.Fields(),
	}, nil
}
