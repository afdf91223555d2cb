package cmd

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/inventory-tracker/api/openapi"
)

func openapiCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			api := newAPI(echo.New())
			registerRoutes(api, &app{}, nil)

			data, err := openapi.Render(api, format)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "document format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
