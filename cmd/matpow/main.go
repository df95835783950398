// SPDX-License-Identifier: MIT

// Command matpow raises matrices to powers over Z/mZ and benchmarks it.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/matpow/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
