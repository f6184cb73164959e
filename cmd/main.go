// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

// Package main is the entry point for the ocsf-parquet CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crowdalert/ocsf-parquet/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
