// Package main provides the trellis CLI: a local-first tracker for
// planted garden crops and their growth stages.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/verdantlabs/trellis/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrNotFound) ||
			errors.Is(err, types.ErrInvalidStage) ||
			errors.Is(err, types.ErrInvalidID) ||
			errors.Is(err, types.ErrInvalidName) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
	os.Exit(exitSuccess)
}
