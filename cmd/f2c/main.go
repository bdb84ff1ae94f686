// Command f2c converts design-tool node trees into layout IR.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/f2c/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// ExitErrors have already been reported in the selected format.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
