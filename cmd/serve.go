package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/aquabench/aquabench-cli/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over a read-only JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadDataset()
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" && cfg != nil {
			addr = cfg.ListenAddr
		}
		if addr == "" {
			addr = ":8080"
		}

		h := server.New(c)
		srv := &http.Server{
			Addr:         addr,
			Handler:      h.Router(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		fmt.Printf("✓ Loaded %d waters from %s\n", len(c.Records), c.Source)
		fmt.Printf("Listening on %s\n", addr)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
