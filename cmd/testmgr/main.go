// Command testmgr serves the test manager API and administers its data.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"test-manager-backend/internal/config"
	"test-manager-backend/internal/database"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"
	"test-manager-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

//	@title			Test Manager Backend API
//	@version		1.0
//	@description	Backend API for the Test Manager: projects, components, test cases, users, test reports and test history.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// app carries the dependencies shared by every subcommand
type app struct {
	out io.Writer

	loadConfig  func() (*config.Config, error)
	openDB      func(cfg *config.Config, attempts int) (*gorm.DB, error)
	newServices func(db *gorm.DB) *service.Services

	cfg *config.Config
}

func main() {
	if err := newRootCmd(newApp(os.Stdout)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *app {
	return &app{
		out:        out,
		loadConfig: config.Load,
		openDB: func(cfg *config.Config, attempts int) (*gorm.DB, error) {
			return database.InitializeWithRetry(cfg.DatabaseURL, nil, attempts, time.Second)
		},
		newServices: func(db *gorm.DB) *service.Services {
			return service.NewServices(repository.NewRepositories(db), service.NewValidator())
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "testmgr",
		Short:         "Test manager backend",
		Long:          `testmgr serves the test management API and loads or administers its data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config for version command
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
	}
	root.SetOut(a.out)

	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newProjectsCmd(a))
	return root
}

// setup loads .env, the configuration and the log level
func (a *app) setup() error {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	logger.Setup(cfg.LogLevel, nil)
	return nil
}

// services opens the database and builds the service layer
func (a *app) services(attempts int) (*service.Services, *gorm.DB, error) {
	db, err := a.openDB(a.cfg, attempts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return a.newServices(db), db, nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "testmgr %s\n", version)
		},
	}
}
