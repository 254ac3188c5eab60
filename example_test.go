package wavemark_test

import (
	"context"
	"fmt"

	wavemark "github.com/yyyoichi/wavemark"
	"github.com/yyyoichi/wavemark/internal/wavegen"
)

func Example_wavemark() {
	// One second of silence as the carrier.
	carrier := wavegen.Silence(8000, 8000)

	secret := []byte("meet at dawn")

	ctx := context.Background()
	embedded, err := wavemark.Embed(ctx, carrier, secret)
	if err != nil {
		fmt.Printf("embed: %v\n", err)
		return
	}

	recovered, err := wavemark.Extract(ctx, embedded)
	if err != nil {
		fmt.Printf("extract: %v\n", err)
		return
	}

	fmt.Println(string(recovered))
	fmt.Println(len(embedded) == len(carrier))

	// Output:
	// meet at dawn
	// true
}
