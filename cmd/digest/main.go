package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/config"
	"github.com/oksasatya/student-planner-api/internal/application"
	pginfra "github.com/oksasatya/student-planner-api/internal/infrastructure/postgres"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

func main() {
	once := flag.Bool("once", false, "run a single digest pass and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-digest", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; digest scheduler disabled")
		return
	}
	if cfg.UsesMemoryStore() {
		log.Fatal("the digest needs the shared postgres store; STORE_DRIVER=memory is per-process")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQDigestQueue)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer pub.Close()

	loc := helpers.LoadLocation(cfg.DigestTimezone)
	svc := application.NewDigestService(
		pginfra.NewUserRepository(pool),
		pginfra.NewTaskRepository(pool),
		pub,
		cfg,
		loc,
		logger,
	)

	run := func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()
		n, err := svc.Run(c, time.Now())
		if err != nil {
			logger.WithError(err).WithField("published", n).Error("digest run failed")
			return
		}
		logger.WithField("published", n).Info("digest run finished")
	}

	if *once {
		run()
		return
	}

	sched := cron.New(cron.WithLocation(loc))
	if _, err := sched.AddFunc(cfg.DigestSchedule, run); err != nil {
		log.Fatalf("invalid DIGEST_SCHEDULE %q: %v", cfg.DigestSchedule, err)
	}
	sched.Start()
	logger.WithFields(logrus.Fields{"schedule": cfg.DigestSchedule, "tz": loc.String()}).Info("digest scheduler started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")
	<-sched.Stop().Done()
}
