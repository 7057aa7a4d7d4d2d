// Command tickerctl previews character and smooth ticker output from the
// terminal, driving the same animation engine a graphical host would use.
// It has no line-ticker preview.
package main

import (
	"fmt"
	"os"

	"github.com/uiticker/animengine/cmd/tickerctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
