package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/focus/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return ui.NewApp(nil).Execute()
}
