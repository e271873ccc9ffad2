// Command mobilepicker runs, replays and renders column pickers.
package main

import (
	"os"

	"github.com/go-drift/picker/cmd/mobilepicker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
