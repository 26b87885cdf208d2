package main

import (
	"fmt"
	"os"

	"github.com/example/piste/internal/cli"
)

func main() {
	rootCmd := cli.RootCmd()

	err := rootCmd.Execute()
	if shutdownErr := cli.Shutdown(); err == nil {
		err = shutdownErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
