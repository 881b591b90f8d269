package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/controllers"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		router := buildRouter(cmd.Context(), db, cfg)

		return run(router, cfg.Port)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (defaults to PORT)")
}

// openDatabase connects and migrates the database named by cfg
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Database migration completed successfully")
	return db, nil
}

// buildRouter wires the optional event publisher and export bucket into
// the router. Either is skipped with a log line when not configured.
func buildRouter(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	auth := services.NewAuthService(store.NewUsers(db), cfg)

	var pub store.Publisher
	switch {
	case cfg.EventsEnabled():
		amqpPub := services.NewAMQPPublisher(cfg.RabbitMQURL)
		amqpPub.Start(ctx)
		pub = amqpPub
		log.Printf("Publishing change events to queue %s", services.ChangesQueue)
	case cfg.LogLevel == "debug":
		pub = services.LogPublisher{}
	}

	var objects services.S3Interface
	if cfg.ExportsEnabled() {
		s3Service, err := services.NewS3Service(ctx, cfg)
		if err != nil {
			log.Printf("Exports disabled: %v", err)
		} else {
			objects = s3Service
		}
	} else {
		log.Println("AWS_S3_BUCKET not set, exports disabled")
	}

	return controllers.SetupRouter(controllers.NewDependencies(db, auth, pub, objects), cfg)
}

// run serves router until SIGINT or SIGTERM, then drains in-flight requests
func run(router http.Handler, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server is running on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case sig := <-stop:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
