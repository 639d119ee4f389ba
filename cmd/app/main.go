package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	_ "github.com/hirewire/hirewire-backend/docs"
	"github.com/hirewire/hirewire-backend/internal/api/response"
	"github.com/hirewire/hirewire-backend/internal/api/route"
	"github.com/hirewire/hirewire-backend/internal/build"
	"github.com/hirewire/hirewire-backend/internal/database"
	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/hirewire/hirewire-backend/internal/env"
	"github.com/hirewire/hirewire-backend/internal/realtime"
	"github.com/hirewire/hirewire-backend/internal/repository"
	"github.com/hirewire/hirewire-backend/internal/usecase"
	"github.com/sirupsen/logrus"
)

// @title HireWire Messaging Service
// @version 1.0
// @description Messaging, notification and presence service of the HireWire platform.
// @contact.name API Support
// @contact.email platform@hirewire.dev
// @host localhost:5005
// @BasePath /
func main() {
	// Log to stdout instead of stderr.
	logrus.SetOutput(os.Stdout)

	logrus.Infof("Build time: %s", build.Time)
	logrus.Infof("Go version: %s", build.GoVersion)

	// read environment variables from file
	env, err := env.NewEnv(".env")
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Infof("App started in %s environment", env.AppEnv)

	// Context for MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	maxAttempts := 10
	retryInterval := 2 * time.Second
	client, err := database.ConnectToMongoDB(ctx, env.MongoDbConnectionUrl, maxAttempts, retryInterval)
	if err != nil {
		logrus.Fatal(err)
	}

	db := client.Database(env.DbName)
	err = db.Client().Ping(ctx, nil)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Database pinged successfully")

	app := fiber.New(fiber.Config{
		AppName: "hirewire_messaging_service",
	})

	app.Use(func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logrus.Error(r)
				response.SendError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}()

		return c.Next()
	})
	app.Use(logger.New())
	app.Use(cors.New())

	// setting up swagger for api documentation
	app.Get("/swagger/*", swagger.HandlerDefault)
	logrus.Infof("Swagger running on route: %s", "/swagger")

	mRepo := repository.NewMessageRepo(db, domain.CollectionMessage)
	nRepo := repository.NewNotificationRepo(db, domain.CollectionNotification)
	uRepo := repository.NewUserRepo(db, domain.CollectionUser)

	mUc := usecase.NewMessageUC(mRepo, nRepo, uRepo, 10*time.Second)
	nUc := usecase.NewNotificationUC(nRepo, 10*time.Second)

	// The gateway owns the presence registry and conversation rooms; both are
	// in-memory and rebuilt from zero on restart.
	gateway := realtime.NewGateway(mUc, nUc)

	authMiddleware := route.AuthenticateUser(env.JwtSecret, env.AuthCookieName)

	// registering routes
	route.RegisterMessageRoutes(app, mUc, gateway, authMiddleware)
	route.RegisterNotificationRoutes(app, nUc, authMiddleware)
	route.RegisterRealtimeRoutes(app, gateway)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", env.AppPort)); err != nil {
			logrus.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")
	if err := app.Shutdown(); err != nil {
		logrus.Error(err)
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logrus.Error(err)
	}
}
