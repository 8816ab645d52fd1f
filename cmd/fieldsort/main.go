// Command fieldsort sorts Zim wiki lines by their __field__ values.
package main

import (
	"os"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
