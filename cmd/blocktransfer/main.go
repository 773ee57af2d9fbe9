package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/blocktransfer/internal/handlers/cli"
)

func main() {
	if err := cli.Run(context.Background(), build); err != nil {
		fmt.Fprintf(os.Stderr, "blocktransfer: %v\n", err)
		os.Exit(1)
	}
}
