package main

import (
	"os"

	"github.com/norelnorel3/ubuntu-setup-script/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
