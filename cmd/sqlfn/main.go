// Command sqlfn inspects and exercises the SQL function registry.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/roach88/sqlfn/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
