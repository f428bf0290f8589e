package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mikes-grill/config"
	"mikes-grill/notify-svc/internal/service"
	"mikes-grill/notify-svc/internal/storage"
)

const consumerGroup = "notify-svc-consumer"

func main() {
	cfg := config.Load()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka, consumerGroup)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), newMailer(cfg))
	consumer.Start(ctx)
}

// newMailer returns nil when SMTP or the admin address is not configured or
// the SMTP settings are unusable.
func newMailer(cfg *config.Config) service.Mailer {
	if cfg.SMTP.Host == "" || cfg.Admin.Email == "" {
		log.Println("SMTP_HOST or ADMIN_EMAIL not set; contact e-mails disabled")
		return nil
	}
	mailer, err := storage.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password,
		cfg.SMTP.From, cfg.Admin.Email)
	if err != nil {
		log.Printf("ERROR: Invalid SMTP settings, contact e-mails disabled: %v", err)
		return nil
	}
	return mailer
}
