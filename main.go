package main

import (
	"fmt"
	"os"

	"github.com/penwyp/go-timesheets/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.ErrorMessage(err))
		os.Exit(1)
	}
}
