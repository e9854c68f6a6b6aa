// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"runtime"

	"github.com/alecthomas/kong"
)

// VersionCmd prints build information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "chatdash %s\n", Version)
	fmt.Fprintf(ctx.Stdout, "  commit:  %s\n", GitCommit)
	fmt.Fprintf(ctx.Stdout, "  built:   %s\n", BuildDate)
	fmt.Fprintf(ctx.Stdout, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
