// SPDX-License-Identifier: MIT

// Command lvlset samples the built-in test functions and prints Riemann sums,
// level-set slices, measure curves and integral cross-checks as YAML or JSON.
//
//	lvlset list
//	lvlset riemann --func square --partitions 50 --rule midpoint
//	lvlset slices --func wave --levels 8
//	lvlset crosscheck --func linear --output json
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
