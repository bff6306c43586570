package main

import (
	"os"

	"github.com/yumyai/ggscreen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
