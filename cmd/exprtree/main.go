// SPDX-License-Identifier: MIT

// Command exprtree parses rendered values into expression trees.
package main

import (
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	app.RunAndExitOnError()
}
