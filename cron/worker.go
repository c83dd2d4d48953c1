package cron

import (
	"context"
	"log"
	"time"

	"arogya/config"
	"arogya/services/clinicstatus"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeStatusRefresh = "clinicstatus:refresh"

// InitStatusWorker runs the periodic clinic-status refresh in background.
// The schedule matches the accepted staleness window: closure changes may lag
// one interval behind the backend.
func InitStatusWorker(refresher *clinicstatus.Refresher) {
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
	mux.HandleFunc(TypeStatusRefresh, handleStatusRefresh(refresher))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(clinicstatus.RefreshInterval, asynq.NewTask(TypeStatusRefresh, nil)); err != nil {
		log.Fatalf("[StatusWorker] failed to register refresh schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[StatusWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[StatusWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[StatusWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[StatusWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleStatusRefresh(refresher *clinicstatus.Refresher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := refresher.Refresh(ctx); err != nil {
			log.Printf("[StatusRefresh] refresh failed: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[StatusWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
