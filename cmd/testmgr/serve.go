package main

import (
	"test-manager-backend/internal/api/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "test-manager-backend/docs" // This is needed for swag
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := a.services(1)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if a.cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}
			routes.Version = version
			router := routes.NewRouter(db, a.cfg, services)

			if port == "" {
				port = a.cfg.Port
			}
			logrus.Infof("Starting server on port %s", port)
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default: PORT from config)")
	return cmd
}
