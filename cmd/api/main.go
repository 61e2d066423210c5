package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"oficina/internal/database"
	"oficina/internal/middleware"
	"oficina/internal/modules/admin"
	"oficina/internal/modules/alerta"
	"oficina/internal/modules/auth"
	"oficina/internal/modules/fleet"
	"oficina/internal/modules/order"
	"oficina/internal/modules/pendencia"
	"oficina/internal/modules/report"
	"oficina/internal/modules/stats"
	jwtsvc "oficina/internal/pkg/jwt"
	"oficina/internal/repository"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "oficina.db"
		log.Println("DATABASE_URL is empty, falling back to local SQLite")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	pendenciaRepo := repository.NewPendenciaRepository(db)
	alertaRepo := repository.NewAlertaRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	savedFilterRepo := repository.NewSavedFilterRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := alerta.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	adminService := admin.NewService(userRepo)
	adminHandler := admin.NewHandler(adminService)

	orderService := order.NewService(orderRepo, savedFilterRepo)
	orderHandler := order.NewHandler(orderService)

	pendenciaService := pendencia.NewService(pendenciaRepo, orderRepo)
	pendenciaHandler := pendencia.NewHandler(pendenciaService)

	alertaService := alerta.NewService(alertaRepo, hub)
	alertaHandler := alerta.NewHandler(alertaService, hub)

	fleetService := fleet.NewService(vehicleRepo)
	fleetHandler := fleet.NewHandler(fleetService)

	statsService := stats.NewService(orderRepo, pendenciaRepo, alertaRepo)
	statsHandler := stats.NewHandler(statsService)

	reportHandler := report.NewHandler(orderService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := alerta.NewSweeper(alertaRepo, orderRepo, userRepo, hub)
	sweepStop := sweeper.Schedule(ctx, alerta.DefaultSweepConfig())
	defer close(sweepStop)
	defer hub.Close()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			osGroup := protected.Group("/")
			osGroup.Use(middleware.RequireRoute("/os"))
			orderHandler.RegisterRoutes(osGroup)

			tecnicoGroup := protected.Group("/")
			tecnicoGroup.Use(middleware.RequireRoute("/minhas-os"))
			orderHandler.RegisterTechnicianRoutes(tecnicoGroup)

			dashGroup := protected.Group("/")
			dashGroup.Use(middleware.RequireRoute("/dashboard"))
			statsHandler.RegisterRoutes(dashGroup)

			pendGroup := protected.Group("/")
			pendGroup.Use(middleware.RequireRoute("/pendencias"))
			pendenciaHandler.RegisterRoutes(pendGroup)

			alertaGroup := protected.Group("/")
			alertaGroup.Use(middleware.RequireRoute("/alertas"))
			alertaHandler.RegisterRoutes(alertaGroup)

			frotaGroup := protected.Group("/")
			frotaGroup.Use(middleware.RequireRoute("/frota"))
			fleetHandler.RegisterRoutes(frotaGroup)

			relGroup := protected.Group("/")
			relGroup.Use(middleware.RequireRoute("/relatorios"))
			reportHandler.RegisterRoutes(relGroup)

			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.ManagerOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
