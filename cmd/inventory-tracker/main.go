// Package main is the entry point for the inventory-tracker service.
package main

import (
	"os"

	"github.com/donaldgifford/inventory-tracker/cmd/inventory-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
