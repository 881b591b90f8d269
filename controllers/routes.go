package controllers

import (
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter mounts every endpoint under /api. All operations are POST;
// the entity groups require a session token, /auth and /health do not.
func SetupRouter(deps Dependencies, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.NoRoute(invalidEndpoint)

	api := router.Group("/api")
	{
		health := NewHealthController(deps.DB)
		api.GET("/health", health.Check)
		api.GET("/database/status", health.DatabaseStatus)

		auth := NewAuthController(deps.Auth)
		authGroup := api.Group("/auth")
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)

		protected := api.Group("", middleware.EnsureValidToken(cfg))

		RegisterEntity(protected.Group("/customers"), deps.Customers, EntityRoutes{
			Get:  "getCustomerByUserID",
			List: "getCustomersByUserID",
		})
		RegisterEntity(protected.Group("/services"), deps.Services, EntityRoutes{
			Get:  "getServiceByID",
			List: "getServicesByUserID",
		})

		appointmentGroup := protected.Group("/appointments")
		appointments := &AppointmentController{
			EntityController: RegisterEntity(appointmentGroup, deps.Appointments.Entity, EntityRoutes{
				Get:  "getByAppointmentID",
				List: "getByCustomerID",
			}),
			gw: deps.Appointments,
		}
		appointmentGroup.POST("/getByUserID", appointments.ListByUserID)

		RegisterNotes(protected.Group("/notes"), deps.Notes)

		exports := NewExportController(deps.Exports)
		protected.POST("/exports/create", exports.Create)
	}

	return router
}
