// Command cssobj builds CSS from CSS-object style documents.
package main

import (
	"os"

	"github.com/npillmayer/cssobj/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
