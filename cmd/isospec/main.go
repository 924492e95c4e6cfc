// IsoSpec - isotopic fine-structure calculator
package main

import (
	"fmt"
	"os"

	"github.com/moldiscovery/IsoSpec/cmd/isospec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
