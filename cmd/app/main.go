package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmap/cmd/fx/export_fx"
	"tripmap/cmd/fx/plan_fx"
	"tripmap/internal/api/controllers"
	"tripmap/internal/services"
	"tripmap/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		plan_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartupProbe),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// StartupProbe fires the connectivity probe once on boot. The result is logged
// and never gates the generation flow.
func StartupProbe(lc fx.Lifecycle, planService services.PlanServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				probeCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				planService.Probe(probeCtx)
			}()
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on port %s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	exportController *controllers.ExportController) *gin.Engine {

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(corsConfig()))

	RegisterRoutes(r, planController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	exportController *controllers.ExportController) {

	api := r.Group("/api")
	api.GET("/health", planController.HealthHandler)

	plansGroup := api.Group("/plans")
	plansGroup.POST("/generate", planController.GeneratePlanHandler)
	plansGroup.POST("/export", exportController.ExportPlanHandler)
}

func corsConfig() cors.Config {
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs := os.Getenv("FRONTEND_URL"); frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			if u = strings.TrimSpace(u); u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Trace-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
