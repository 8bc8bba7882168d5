package duid

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Type is the 16-bit discriminant leading every DUID.
type Type uint16

// Standard DUID types.
const (
	TypeLLT  Type = 1 // link-layer address plus time
	TypeEN   Type = 2 // enterprise number
	TypeLL   Type = 3 // link-layer address
	TypeUUID Type = 4 // UUID
)

// Header lengths, discriminant included.
const (
	DiscriminantLen = 2
	LLTHeaderLen    = 8
	ENHeaderLen     = 6
	LLHeaderLen     = 4
	UUIDLen         = 18
)

// Epoch is the reference point of DUID-LLT time offsets.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var typeNames = map[Type]struct{ short, long string }{
	TypeLLT:  {"DUID-LLT", "Link-layer address plus time"},
	TypeEN:   {"DUID-EN", "Vendor-assigned unique ID based on Enterprise Number"},
	TypeLL:   {"DUID-LL", "Link-layer address"},
	TypeUUID: {"DUID-UUID", "Universally Unique IDentifier"},
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n.short
	}
	return "Unknown"
}

// Description returns the long name, e.g. "DUID-LL - Link-layer address".
func (t Type) Description() string {
	if n, ok := typeNames[t]; ok {
		return n.short + " - " + n.long
	}
	return "Unknown"
}

// Known reports whether t is one of the four standard DUID types.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// HardwareType is an IANA hardware type code. Only Ethernet is named.
type HardwareType uint16

// HardwareEthernet is IANA hardware type 1.
const HardwareEthernet HardwareType = 1

func (h HardwareType) String() string {
	if h == HardwareEthernet {
		return "Ethernet"
	}
	return "Unknown"
}

// Record is a decoded DUID. The concrete value is one of *LLT, *EN, *LL,
// *UUID or *Unknown.
type Record interface {
	Type() Type
	// Fields flattens the record for rendering.
	Fields() map[string]any
	record()
}

// LLT is DUID type 1.
type LLT struct {
	HardwareType HardwareType
	TimeOffset   uint32
	// Timestamp is zero when the offset could not be represented.
	Timestamp     time.Time
	LinkLayerAddr LinkLayerAddr
}

func (*LLT) Type() Type { return TypeLLT }
func (*LLT) record()    {}

// Fields implements Record.
func (r *LLT) Fields() map[string]any {
	fields := map[string]any{
		"duid_type":          uint16(TypeLLT),
		"duid_type_name":     TypeLLT.String(),
		"hardware_type":      uint16(r.HardwareType),
		"hardware_type_name": r.HardwareType.String(),
		"time_offset":        r.TimeOffset,
	}
	if !r.Timestamp.IsZero() {
		fields["timestamp"] = r.Timestamp.Format(time.RFC3339)
	}
	r.LinkLayerAddr.addFields(fields)
	return fields
}

// EN is DUID type 2.
type EN struct {
	EnterpriseNumber uint32
	Identifier       []byte
}

func (*EN) Type() Type { return TypeEN }
func (*EN) record()    {}

// IdentifierHex returns the identifier as lowercase hex.
func (r *EN) IdentifierHex() string { return hex.EncodeToString(r.Identifier) }

// Fields implements Record.
func (r *EN) Fields() map[string]any {
	return map[string]any{
		"duid_type":         uint16(TypeEN),
		"duid_type_name":    TypeEN.String(),
		"enterprise_number": r.EnterpriseNumber,
		"identifier":        r.IdentifierHex(),
	}
}

// LL is DUID type 3.
type LL struct {
	HardwareType  HardwareType
	LinkLayerAddr LinkLayerAddr
}

func (*LL) Type() Type { return TypeLL }
func (*LL) record()    {}

// Fields implements Record.
func (r *LL) Fields() map[string]any {
	fields := map[string]any{
		"duid_type":          uint16(TypeLL),
		"duid_type_name":     TypeLL.String(),
		"hardware_type":      uint16(r.HardwareType),
		"hardware_type_name": r.HardwareType.String(),
	}
	r.LinkLayerAddr.addFields(fields)
	return fields
}

// UUID is DUID type 4.
type UUID struct {
	UUID [16]byte
	// Text is the canonical 8-4-4-4-12 rendering.
	Text string
}

func (*UUID) Type() Type { return TypeUUID }
func (*UUID) record()    {}

// Fields implements Record.
func (r *UUID) Fields() map[string]any {
	return map[string]any{
		"duid_type":      uint16(TypeUUID),
		"duid_type_name": TypeUUID.String(),
		"uuid":           r.Text,
	}
}

// Unknown keeps an unrecognised DUID verbatim.
type Unknown struct {
	Code uint16
	Data []byte
}

func (r *Unknown) Type() Type { return Type(r.Code) }
func (*Unknown) record()      {}

// DataHex returns the undecoded remainder as lowercase hex.
func (r *Unknown) DataHex() string { return hex.EncodeToString(r.Data) }

// Fields implements Record.
func (r *Unknown) Fields() map[string]any {
	return map[string]any{
		"duid_type":      r.Code,
		"duid_type_name": Type(r.Code).String(),
		"remaining":      r.DataHex(),
	}
}

// WarningKind classifies non-fatal decode conditions.
type WarningKind string

const (
	WarnTimestampOverflow WarningKind = "timestamp_overflow"
	WarnTrailingData      WarningKind = "trailing_data"
)

// Warning is a condition reported next to a successful decode.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
