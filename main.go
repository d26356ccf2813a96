// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command tracechat is a terminal chat client that shows the agent's
// reasoning trace.
package main

import (
	"os"

	"github.com/jeranaias/tracechat-tui/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
