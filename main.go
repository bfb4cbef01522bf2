package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"recruitment-board/config"
	apiv1 "recruitment-board/controllers/v1"
	"recruitment-board/fiberlog"
	"recruitment-board/initializers"
	"recruitment-board/lib/events"
	"recruitment-board/lib/ws"
	"recruitment-board/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // резюме до 20MB
	})
	app.Use(fiberRecover.New())

	if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	} else {
		log.WithField("file", config.Conf.App.SwaggerFile).Warn("файл swagger не найден, документация API недоступна")
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//space
	space := fiber.New()
	apiV1.Mount("/space", space)
	space.Use(middleware.AuthorizationRequired())
	space.Use(middleware.RbacMiddleware())
	apiv1.InitBoardApiRouters(space)
	apiv1.InitPostingApiRouters(space)
	apiv1.InitCandidateApiRouters(space)

	//ws
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

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
		events.Instance.Close()
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
