// Package main provides the cssbuttons CLI for generating button utility CSS.
package main

import (
	"errors"
	"fmt"
	"os"
)

// errCheckFailed signals a failed check whose details were already printed.
var errCheckFailed = errors.New("check failed")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
