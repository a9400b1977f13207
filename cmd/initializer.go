package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"mudanzasBack/internal/config"
	"mudanzasBack/internal/handlers"
	"mudanzasBack/internal/repositories"
	"mudanzasBack/internal/services"
	"mudanzasBack/utils"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	db         *sql.DB
	signingKey string

	wsManager *WebSocketManager

	userRepo    *repositories.UserRepository
	requestRepo *repositories.RequestRepository

	userHandler    *handlers.UserHandler
	requestHandler *handlers.RequestHandler
	offerHandler   *handlers.OfferHandler
	unlockHandler  *handlers.UnlockHandler
	chatHandler    *handlers.ChatHandler
	messageHandler *handlers.MessageHandler
	companyHandler *handlers.CompanyHandler
	adminHandler   *handlers.AdminHandler
	emailHandler   *handlers.EmailHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	requestRepo := repositories.RequestRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	unlockRepo := repositories.UnlockRepository{DB: db}
	chatRepo := repositories.ChatRepository{Db: db}
	messageRepo := repositories.MessageRepository{Db: db}
	companyRepo := repositories.CompanyRepository{DB: db}
	flagRepo := repositories.FraudFlagRepository{DB: db}
	verificationRepo := repositories.VerificationRepository{DB: db, CompanyRepo: &companyRepo}
	statsRepo := repositories.StatsRepository{DB: db}
	tokenRepo := repositories.DeviceTokenRepository{DB: db}

	wsManager := NewWebSocketManager()

	storage := utils.NewS3Storage(
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		cfg.Storage.Endpoint,
	)

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	notifier := &services.NotificationService{
		Client:    newMessagingClient(cfg, errorLog),
		TokenRepo: &tokenRepo,
	}

	var emailSender services.EmailSender
	if cfg.SMTP.Host != "" {
		emailSender = &services.SMTPSender{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}
	} else {
		emailSender = &services.FileSender{Dir: "emails"}
	}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager, SigningKey: cfg.JWT.SigningKey}
	presence := &services.PresenceService{RDB: rdb}
	requestService := &services.RequestService{RequestRepo: &requestRepo, UnlockRepo: &unlockRepo, Events: wsManager}
	offerService := &services.OfferService{
		OfferRepo:   &offerRepo,
		RequestRepo: &requestRepo,
		CompanyRepo: &companyRepo,
		ChatRepo:    &chatRepo,
		MessageRepo: &messageRepo,
		Notifier:    notifier,
		Events:      wsManager,
	}
	unlockService := &services.UnlockService{UnlockRepo: &unlockRepo, RequestRepo: &requestRepo}
	chatService := &services.ChatService{ChatRepo: &chatRepo, Presence: presence}
	messageService := &services.MessageService{
		MessageRepo: &messageRepo,
		ChatRepo:    &chatRepo,
		Notifier:    notifier,
		Events:      wsManager,
	}
	companyService := &services.CompanyService{CompanyRepo: &companyRepo, VerificationRepo: &verificationRepo}
	adminService := &services.AdminService{
		RequestRepo:      &requestRepo,
		FlagRepo:         &flagRepo,
		VerificationRepo: &verificationRepo,
		StatsRepo:        &statsRepo,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService, TokenRepo: &tokenRepo, Storage: storage}
	requestHandler := &handlers.RequestHandler{Service: requestService}
	offerHandler := &handlers.OfferHandler{Service: offerService}
	unlockHandler := &handlers.UnlockHandler{Service: unlockService}
	chatHandler := &handlers.ChatHandler{Service: chatService}
	messageHandler := &handlers.MessageHandler{Service: messageService, Storage: storage}
	companyHandler := &handlers.CompanyHandler{Service: companyService, Storage: storage}
	adminHandler := &handlers.AdminHandler{Service: adminService}
	emailHandler := &handlers.EmailHandler{Sender: emailSender}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		db:             db,
		signingKey:     cfg.JWT.SigningKey,
		wsManager:      wsManager,
		userRepo:       &userRepo,
		requestRepo:    &requestRepo,
		userHandler:    userHandler,
		requestHandler: requestHandler,
		offerHandler:   offerHandler,
		unlockHandler:  unlockHandler,
		chatHandler:    chatHandler,
		messageHandler: messageHandler,
		companyHandler: companyHandler,
		adminHandler:   adminHandler,
		emailHandler:   emailHandler,
	}
}

// newMessagingClient builds the FCM client. Push delivery is optional,
// a missing credentials file just disables it.
func newMessagingClient(cfg config.Config, errorLog *log.Logger) *messaging.Client {
	if cfg.Firebase.CredentialsFile == "" {
		return nil
	}

	ctx := context.Background()
	fbApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		errorLog.Printf("firebase init failed: %v", err)
		return nil
	}
	client, err := fbApp.Messaging(ctx)
	if err != nil {
		errorLog.Printf("firebase messaging init failed: %v", err)
		return nil
	}
	return client
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		next.ServeHTTP(w, r)
	})
}
