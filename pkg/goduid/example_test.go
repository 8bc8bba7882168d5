package goduid_test

import (
	"context"
	"fmt"
	"log"

	"github.com/d21d3q/goduid/pkg/goduid"
)

func ExampleDecodeHex() {
	result, err := goduid.DecodeHex(context.Background(), "00:03:00:01:aa:bb:cc:dd:ee:ff")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(result)
	// Output:
	// Input DUID Hex: 00:03:00:01:aa:bb:cc:dd:ee:ff
	// Total DUID Length: 10 bytes
	// DUID Type: 3 [DUID-LL - Link-layer address]
	// Hardware Type: 1 [Ethernet]
	// Link-layer Address: aa:bb:cc:dd:ee:ff
}

func ExampleResult_FieldSet() {
	result, err := goduid.DecodeHex(context.Background(), "0002000000090102030405")
	if err != nil {
		log.Fatal(err)
	}
	fs := result.FieldSet()
	number, _ := fs.Uint("enterprise_number")
	identifier, _ := fs.String("identifier")
	fmt.Println(number, identifier)
	// Output: 9 0102030405
}
