// Command namedtuplegen generates named tuple declarations from a YAML or JSON
// manifest. Duplicate keys and other schema errors fail the build step, before
// any generated code is compiled.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
