package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"therabook/config"
	bookingRepo "therabook/database/repository/booking"
	"therabook/services/scheduling"
	"therabook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingExpire = "booking:expire"

// InitExpiryWorker runs the async worker and its schedule in background.
// Every sweep marks pending bookings dated before the current business date
// as expired; the sweep is idempotent, a missed tick is caught by the next.
func InitExpiryWorker(bookings bookingRepo.BookingRepository, calendar scheduling.CalendarPolicy) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(bookings, calendar))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runExpirySchedule(redisOpts)
}

// runExpirySchedule enqueues the sweep task on a fixed interval.
func runExpirySchedule(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.ExpirySweepIntervalMin
	if interval <= 0 {
		interval = 10
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeBookingExpire, nil)); err != nil {
		log.Fatalf("[ExpiryWorker] failed to register expiry schedule: %v", err)
	}
	if err := scheduler.Run(); err != nil {
		log.Fatalf("[ExpiryWorker] scheduler stopped: %v", err)
	}
}

func handleExpireTask(bookings bookingRepo.BookingRepository, calendar scheduling.CalendarPolicy) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		now := time.Now()

		swept, err := bookings.ExpireOverdue(ctx, calendar.BusinessToday(now), now)
		if err != nil {
			logger.Error("expiry sweep failed", zap.Error(err))
			return err
		}
		if swept > 0 {
			logger.Info("expired overdue pending bookings", zap.Int64("count", swept))
		}
		return nil
	}
}
