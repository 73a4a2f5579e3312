// File: therabook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"therabook/config"
	"therabook/cron"
	"therabook/database"
	bookingRepoPkg "therabook/database/repository/booking"
	catalogRepoPkg "therabook/database/repository/catalog"
	therapistRepoPkg "therabook/database/repository/therapist"
	"therabook/handlers"
	"therabook/middleware"
	"therabook/models"
	"therabook/routes"
	"therabook/services/scheduling"
	"therabook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	for name, ensure := range map[string]func() error{
		"services":   serviceRepo.EnsureIndexes,
		"therapists": therapistRepo.EnsureIndexes,
		"bookings":   bookingRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	calendar := scheduling.CalendarPolicy{
		UTCOffsetHours: config.AppConfig.BusinessUTCOffsetHours,
	}
	engine := &scheduling.DefaultBookingEngine{
		Services:      serviceRepo,
		Therapists:    therapistRepo,
		Bookings:      bookingRepo,
		Locks:         utils.NewSlotLocker(utils.GetLockClient()),
		Calendar:      calendar,
		DefaultWindow: defaultWorkingWindow(),
	}

	hb := &handlers.HandlerBundle{
		Engine:     engine,
		Services:   serviceRepo,
		Therapists: therapistRepo,
		Bookings:   bookingRepo,
	}

	routes.RegisterRoutes(router, hb)

	cron.InitExpiryWorker(bookingRepo, calendar)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetLockClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
}

// defaultWorkingWindow parses the configured workday window.
func defaultWorkingWindow() models.WorkingWindow {
	logger := utils.GetLogger()
	open, err := scheduling.ParseClock(config.AppConfig.WorkdayOpen)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid WORKDAY_OPEN: %v", err)
	}
	closeMin, err := scheduling.ParseClock(config.AppConfig.WorkdayClose)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid WORKDAY_CLOSE: %v", err)
	}
	return models.WorkingWindow{OpenMinute: open, CloseMinute: closeMin}
}
