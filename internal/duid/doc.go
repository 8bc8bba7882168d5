// Package duid models DHCP Unique Identifiers as defined in RFC 8415 section 11.
//
// # Wire format
//
// Every DUID starts with a 2-byte big-endian type code:
//
//	LLT  [type=1(2)][hw type(2)][time(4)][link-layer address...]
//	EN   [type=2(2)][enterprise number(4)][identifier...]
//	LL   [type=3(2)][hw type(2)][link-layer address...]
//	UUID [type=4(2)][uuid(16)]
//
// The LLT time field counts seconds since 2000-01-01T00:00:00Z. Any other type
// code decodes to Unknown with the remainder kept verbatim.
package duid
