// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"trello-manager/internal/api"
	"trello-manager/internal/logger"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only JSON API over the configured boards",
	Long: `Starts an HTTP server exposing the board/list/card hierarchy as JSON.
Entities are addressed by the same name patterns the CLI uses, e.g.
GET /api/boards/sprint/lists/todo.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		router := mux.NewRouter()
		server := &api.Server{Client: client, Opts: matchOptions()}
		server.RegisterRoutes(router)

		statusColor.Printf("Serving on :%s\n", servePort)
		logger.Info("starting api server", "port", servePort)
		if err := http.ListenAndServe(":"+servePort, router); err != nil {
			exitOnError(err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to listen on")
}
