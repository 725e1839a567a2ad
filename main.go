package main

import (
	"os"

	"github.com/thenoetrevino/coursekit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
