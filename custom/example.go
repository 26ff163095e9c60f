package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	"github.com/programmer-santosh-main/thapaelectronics/cmd"
	"github.com/programmer-santosh-main/thapaelectronics/cron"
	gqlregistry "github.com/programmer-santosh-main/thapaelectronics/graphql/registry"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

func init() {
	// GraphQL extension
	gqlregistry.Register("sections", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return catalogService.Sections(), nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:sections",
		Short: "List storefront sections",
		Run: func(c *cobra.Command, args []string) {
			for _, s := range catalogService.Sections() {
				fmt.Println(s)
			}
		},
	})

	// Cron job
	cron.Register("customping", "@every 1m", func(args ...string) {
		fmt.Println("Custom cron: ping at", args)
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}
