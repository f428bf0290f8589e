package main

import (
	"log"
	"strings"

	"mikes-grill/config"
	httpapi "mikes-grill/grill-svc/internal/api/http"
	"mikes-grill/grill-svc/internal/service"
	"mikes-grill/grill-svc/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	images, err := storage.NewDiskImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare uploads:", err)
	}

	categories := service.NewCategoryService(repo)
	hours := service.NewHoursService(repo)
	admins := service.NewAdminService(repo)
	if err := seedDefaults(categories, hours, admins, cfg); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	handler := &httpapi.Handler{
		Menu:       service.NewMenuService(repo, repo),
		Categories: categories,
		Hours:      hours,
		Settings:   service.NewSettingsService(repo, images),
		Contacts: service.NewContactService(repo,
			storage.NewKafkaPublisher(kafkaWriter),
			storage.NewRedisContactCounter(rdb)),
		Admins: admins,
		Auth: service.NewAuthService(repo,
			storage.NewRedisSessionStore(rdb, cfg.Session.TTL),
			storage.NewRedisLoginThrottle(rdb)),
		MenuQR:       service.MenuQRGenerator{BaseURL: cfg.PublicBaseURL},
		UploadDir:    cfg.UploadDir,
		SessionTTL:   cfg.Session.TTL,
		CookieSecure: cfg.Session.CookieSecure,
	}

	origins := []string{"http://localhost:3000", "http://localhost:8080", strings.TrimRight(cfg.PublicBaseURL, "/")}
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler, origins))
}

func seedDefaults(categories *service.CategoryService, hours *service.HoursService, admins *service.AdminService, cfg *config.Config) error {
	if err := categories.EnsureDefaults(); err != nil {
		return err
	}
	if err := hours.EnsureDefaults(); err != nil {
		return err
	}
	return admins.EnsureDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password)
}
