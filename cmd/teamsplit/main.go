// SPDX-License-Identifier: MIT

// Command teamsplit splits the members of a rating matrix into two balanced
// teams. See `teamsplit --help`.
package main

import (
	"os"

	"github.com/katalvlaran/teamsplit/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
