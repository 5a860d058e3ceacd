package main

import (
	"fmt"
	"log"
	"net/http"

	"entrega/internal/auth"
	"entrega/internal/auth/apple"
	"entrega/internal/auth/google"
	"entrega/internal/config"
	"entrega/internal/export"
	"entrega/internal/handler"
	"entrega/internal/repository/postgres"
	"entrega/internal/router"
	"entrega/internal/service"
	s3storage "entrega/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	socialRepo := postgres.NewSocialAccountRepo(db)
	businessRepo := postgres.NewBusinessRepo(db)
	menuRepo := postgres.NewMenuRepo(db)
	offerRepo := postgres.NewOfferRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize social token verifiers
	dispatcher := auth.NewDispatcher(
		google.NewVerifier(cfg.Social.GoogleClientID),
		apple.NewVerifier(cfg.Social.AppleClientID, cfg.Social.KeysTimeout, cfg.Social.KeysTTL),
	)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	registrationSvc := service.NewRegistrationService(userRepo, authSvc)
	socialAuthSvc := service.NewSocialAuthService(dispatcher, userRepo, socialRepo, authSvc)
	userSvc := service.NewUserService(userRepo, socialRepo)
	businessSvc := service.NewBusinessService(businessRepo, menuRepo)
	menuSvc := service.NewMenuService(menuRepo, businessRepo)
	offerSvc := service.NewOfferService(offerRepo, businessRepo)
	mediaSvc := service.NewMediaService(s3Client, cfg.S3)
	exporter := export.NewCatalogueExporter(businessRepo, menuRepo, offerRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, registrationSvc, socialAuthSvc)
	userH := handler.NewUserHandler(userSvc)
	businessH := handler.NewBusinessHandler(businessSvc)
	menuH := handler.NewMenuHandler(menuSvc)
	offerH := handler.NewOfferHandler(offerSvc)
	mediaH := handler.NewMediaHandler(mediaSvc)
	exportH := handler.NewExportHandler(exporter)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, userH, businessH, menuH, offerH, mediaH, exportH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
