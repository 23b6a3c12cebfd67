package main

import (
	"fmt"

	"github.com/fatih/color"
)

// printStatus prints a colored marker followed by a message, for
// progress lines like "✓ Registered %0".
func printStatus(marker, message string, attr color.Attribute) {
	fmt.Printf("%s %s\n", color.New(attr).Sprint(marker), message)
}
