// Command sbtree inspects the Stern–Brocot tree from the shell.
//
//	sbtree fraction 5/3
//	sbtree path 8/5 -o yaml
//	sbtree word 5/3 --pattern
//	sbtree line 3 2 0 --steps 10
package main

import (
	"os"

	"github.com/katalvlaran/sternbrocot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
