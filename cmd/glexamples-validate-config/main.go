package main

import (
	"fmt"
	"os"

	"github.com/fosdem/glexamples/lib/config"
)

// Without an argument the built-in defaults are shown.
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Print("No config file given, built-in defaults:\n\n")
	} else {
		fmt.Printf("Config %s valid!\n\n", os.Args[1])
	}

	fmt.Print(cfg)
}
