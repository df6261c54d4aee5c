// # cmd/clangq/main.go
package main

import (
	"clangq/internal/ui/cli"
	"os"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
