package driver

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"github.com/d21d3q/goduid/internal/duid"
	"github.com/d21d3q/goduid/internal/options"
)

// Driver decodes one DUID type. raw always holds the full DUID, type field
// included, and is at least two bytes long.
type Driver interface {
	Name() string
	Decode(ctx context.Context, raw []byte) (duid.Record, []duid.Warning, error)
}

// Decoded is a successfully decoded DUID with its non-fatal warnings.
type Decoded struct {
	Record   duid.Record
	Warnings []duid.Warning
}

var (
	regMu    sync.RWMutex
	registry = map[duid.Type]Driver{}
)

// Register binds a driver to a DUID type. Registering a type twice panics.
func Register(t duid.Type, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	if existing, ok := registry[t]; ok {
		panic(fmt.Sprintf("driver: type %d already registered by %s", uint16(t), existing.Name()))
	}
	registry[t] = drv
}

// Lookup returns the driver registered for t.
func Lookup(t duid.Type) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	if drv, ok := registry[t]; ok {
		return drv, nil
	}
	return nil, fmt.Errorf("driver not found for DUID type %d", uint16(t))
}

// Registered lists the registered types in ascending order.
func Registered() []duid.Type {
	regMu.RLock()
	defer regMu.RUnlock()
	types := make([]duid.Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Decode reads the type field and hands raw to the matching driver. Types
// outside the four standard ones decode to *duid.Unknown.
func Decode(ctx context.Context, raw []byte) (Decoded, error) {
	if len(raw) < duid.DiscriminantLen {
		return Decoded{}, fmt.Errorf("%w: %d bytes, must be at least %d bytes for the type field", duid.ErrTooShort, len(raw), duid.DiscriminantLen)
	}
	code := binary.BigEndian.Uint16(raw[:duid.DiscriminantLen])
	log := options.Logger(ctx).WithField("duid_type", code)

	t := duid.Type(code)
	if !t.Known() {
		log.WithField("byte_count", len(raw)).Debug("unknown DUID type, keeping raw remainder")
		return Decoded{Record: &duid.Unknown{
			Code: code,
			Data: bytes.Clone(raw[duid.DiscriminantLen:]),
		}}, nil
	}
	drv, err := Lookup(t)
	if err != nil {
		return Decoded{}, err
	}

	log = log.WithField("driver", drv.Name())
	log.Debug("decoding DUID")
	rec, warnings, err := drv.Decode(ctx, raw)
	if err != nil {
		return Decoded{}, err
	}
	for _, w := range warnings {
		log.WithField("warning", w.Kind).Debug(w.Message)
	}
	return Decoded{Record: rec, Warnings: warnings}, nil
}
