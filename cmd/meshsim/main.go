// SPDX-License-Identifier: MIT
// Command meshsim builds mesh topologies, routes across them, injects
// failures and reports resilience metrics.
//
//	meshsim build   --mode partial --names A,B,C,D,E,F --min-degree 3
//	meshsim route   A F --fail-node C
//	meshsim fail    --node R3 --link R1:R2 --from R1 --hops 2
//	meshsim analyze --exact --metrics
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
