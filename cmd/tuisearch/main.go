// Command tuisearch is the installable entry point, the same program as the
// module root.
package main

import (
	"context"
	"fmt"
	"os"

	"tuisearch/internal/cli"
)

func main() {
	if err := cli.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
