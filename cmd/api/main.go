package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/glowpoint/salon-backend-go/internal/config"
	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	appHTTP "github.com/glowpoint/salon-backend-go/internal/handler/http"
	"github.com/glowpoint/salon-backend-go/internal/pkg/cron"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
	"github.com/glowpoint/salon-backend-go/internal/pkg/email"
	"github.com/glowpoint/salon-backend-go/internal/pkg/jwt"
	"github.com/glowpoint/salon-backend-go/internal/repository/postgresql"
	authService "github.com/glowpoint/salon-backend-go/internal/service/auth"
	bonusService "github.com/glowpoint/salon-backend-go/internal/service/bonus"
	masterService "github.com/glowpoint/salon-backend-go/internal/service/master"
	revenueService "github.com/glowpoint/salon-backend-go/internal/service/revenue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	revenueRepo := postgresql.NewRevenueRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	ladder := bonus.DefaultTierLadder()
	if cfg.Bonus.TierLadderJSON != "" {
		ladder, err = bonus.ParseTierLadder(cfg.Bonus.TierLadderJSON)
		if err != nil {
			log.Fatal("Invalid BONUS_TIER_LADDER:", err)
		}
	}

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	masterSvc := masterService.NewMasterService(branchRepo, employeeRepo)
	revenueSvc := revenueService.NewRevenueService(revenueRepo, employeeRepo)
	bonusSvc := bonusService.NewBonusService(
		db,
		bonusRepo,
		branchRepo,
		employeeRepo,
		revenueRepo,
		ladder,
		emailSvc,
		cfg.Bonus.AlertRecipient,
		slog.Default(),
	)

	syncInterval, err := time.ParseDuration(cfg.Bonus.SyncInterval)
	if err != nil {
		log.Fatal("Invalid BONUS_SYNC_INTERVAL:", err)
	}
	scheduler := cron.NewScheduler()
	bonusJobs := cron.NewBonusJobs(branchRepo, bonusSvc, syncInterval)
	bonusJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	revenueHandler := appHTTP.NewRevenueHandler(revenueSvc)
	bonusHandler := appHTTP.NewBonusHandler(bonusSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		masterHandler,
		revenueHandler,
		bonusHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
