package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/rupeetrail/stmt-ledger/internal/api"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement extraction HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fiber.New(fiber.Config{
				AppName:   "stmt-ledger",
				BodyLimit: 32 << 20, // statement PDFs stay well under this
			})
			app.Use(recover.New())
			app.Use(logger.New())

			api.Register(app)

			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
