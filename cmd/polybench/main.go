// Polybench times the polynomial ring operations of package ring over
// several coefficient types and ring degrees.
package main

import (
	"os"

	"github.com/tuneinsight/polyring/cmd/polybench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
