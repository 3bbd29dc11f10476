package cli

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"notice-precheck/internal/config"
	"notice-precheck/internal/handler"
	"notice-precheck/internal/holidays"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the precheck API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		holidays.SetFeedURL(cfg.BankHolidaysURL)

		log.Printf("precheck API listening on %s", cfg.Listen)
		return fasthttp.ListenAndServe(cfg.Listen, handler.Router)
	},
}
