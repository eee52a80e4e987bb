// Command csd converts numbers to and from Canonical Signed Digit strings.
//
//	csd to_csd 28.5 2        # +00-00.+0
//	csd to_csdnnz 28.5 2     # +00-00
//	csd to_decimal +00-00.+  # 28.5
package main

import (
	"os"

	"github.com/calebcase/csd/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
