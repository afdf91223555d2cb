// Package main generates CLI reference documentation for the invctl client
// and the inventory-tracker server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	invctl "github.com/donaldgifford/inventory-tracker/cmd/invctl/cmd"
	server "github.com/donaldgifford/inventory-tracker/cmd/inventory-tracker/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"invctl":            invctl.Root(),
		"inventory-tracker": server.Root(),
	}

	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}

		root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}
