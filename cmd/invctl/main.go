// Package main is the entry point for the invctl CLI client.
package main

import (
	"github.com/donaldgifford/inventory-tracker/cmd/invctl/cmd"
)

func main() {
	cmd.Execute()
}
