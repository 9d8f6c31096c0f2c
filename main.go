package main

import (
	"os"

	"github.com/selimozcann/RedirectCheck/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
