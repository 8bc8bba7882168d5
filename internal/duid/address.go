package duid

import (
	"bytes"
	"encoding/hex"
	"net"
)

const ethernetAddrLen = 6

// LinkLayerAddr is the trailing address of DUID-LLT and DUID-LL records.
type LinkLayerAddr struct {
	Bytes []byte
	// Standard is set for 6-byte Ethernet addresses, rendered as aa:bb:..:ff.
	Standard bool
	Text     string
}

// NewLinkLayerAddr copies b and renders it according to hw.
func NewLinkLayerAddr(hw HardwareType, b []byte) LinkLayerAddr {
	addr := LinkLayerAddr{Bytes: bytes.Clone(b)}
	if addr.Bytes == nil {
		addr.Bytes = []byte{}
	}
	if hw == HardwareEthernet && len(b) == ethernetAddrLen {
		addr.Standard = true
		addr.Text = net.HardwareAddr(addr.Bytes).String()
		return addr
	}
	addr.Text = hex.EncodeToString(addr.Bytes)
	return addr
}

func (a LinkLayerAddr) String() string {
	if a.Standard {
		return a.Text
	}
	return a.Text + " (non-standard format)"
}

func (a LinkLayerAddr) addFields(fields map[string]any) {
	fields["link_layer_address"] = a.Text
	fields["link_layer_standard"] = a.Standard
}
