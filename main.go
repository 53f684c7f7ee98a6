package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"page-control-backend/config"
	apiv1 "page-control-backend/controllers/v1"
	"page-control-backend/fiberlog"
	"page-control-backend/initializers"
	"page-control-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.WithBodyLimit(1 * 1024 * 1024))
	if config.Conf.Webhook.ErrorURL != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.Webhook.ErrorURL))
	}
	apiv1.InitAuthApiRouters(apiV1)

	//authenticated employee surface
	protected := fiber.New()
	apiV1.Mount("/", protected)
	protected.Use(middleware.AuthorizationRequired())
	apiv1.InitUserApiRouters(protected)
	apiv1.InitHolidayApiRouters(protected)
	apiv1.InitOvertimeApiRouters(protected)
	apiv1.InitHourBankApiRouters(protected)
	apiv1.InitTimeRequestApiRouters(protected)
	apiv1.InitAbsenceApiRouters(protected)

	//admin exports
	exports := fiber.New()
	protected.Mount("/", exports)
	exports.Use(middleware.AdminRequired())
	apiv1.InitExportApiRouters(exports)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
