package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vincentchina/crunchx"
	"github.com/vincentchina/crunchx/cli/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	// Argument errors have already printed their diagnostic and the help
	// text, in that order.
	var cerr crunchx.Error
	if !(errors.As(err, &cerr) && cerr.Kind == crunchx.InvalidParam) {
		fmt.Fprintf(os.Stderr, "ERROR:%s\n", err)
	}
	os.Exit(crunchx.ExitCode(err))
}
