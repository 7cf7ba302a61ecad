package main

import (
	"fmt"
	"log"
	"os"

	"BE-Cafe-Corner/app"
	"BE-Cafe-Corner/app/handlers"
	"BE-Cafe-Corner/app/repositories"
	"BE-Cafe-Corner/app/usecases"
	"BE-Cafe-Corner/app/utils"
	"BE-Cafe-Corner/config"
	"BE-Cafe-Corner/database"
	"BE-Cafe-Corner/server"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Error loading config.yaml: ", err)
	}

	client := database.ConnectDB(cfg.Database.URI)
	if err := database.EnsureIndexes(client, cfg.Database.DBName); err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.Database.DBName)

	// Repositories
	reservationRepo := repositories.NewReservationRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	userRepo := repositories.NewUserRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	mailer := utils.NewMailer(cfg)

	googleConfig := &oauth2.Config{
		ClientID:     os.Getenv("google_client_id"),
		ClientSecret: os.Getenv("google_client_secret"),
		RedirectURL:  cfg.Server.BaseURL + "/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	// Usecases
	reservationUsecase := usecases.NewReservationUsecase(reservationRepo, settingsRepo, mailer)
	menuUsecase := usecases.NewMenuUsecase(menuRepo, cfg.Server.BaseURL)
	blogUsecase := usecases.NewBlogUsecase(blogRepo, cfg.Server.BaseURL)
	commentUsecase := usecases.NewCommentUsecase(commentRepo, blogRepo)
	contactUsecase := usecases.NewContactUsecase(contactRepo, mailer)
	settingsUsecase := usecases.NewSettingsUsecase(settingsRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, mailer)
	authUsecase := usecases.NewAuthUsecase(userRepo, googleConfig)
	dashboardUsecase := usecases.NewDashboardUsecase(dashboardRepo, menuRepo, blogRepo, commentRepo, contactRepo)
	imageUsecase := usecases.NewImageUsecase()

	// Handlers
	userHandler := handlers.NewUserHandler(userUsecase, authUsecase)
	reservationHandler := handlers.NewReservationHandler(reservationUsecase)
	menuHandler := handlers.NewMenuHandler(menuUsecase)
	blogHandler := handlers.NewBlogHandler(blogUsecase, commentUsecase)
	contactHandler := handlers.NewContactHandler(contactUsecase)
	settingsHandler := handlers.NewSettingsHandler(settingsUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)
	imageHandler := handlers.NewImageHandler(imageUsecase, cfg)

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		userHandler,
		reservationHandler,
		menuHandler,
		blogHandler,
		contactHandler,
		settingsHandler,
		dashboardHandler,
		imageHandler,
	)

	log.Fatal(srv.Start())
}
