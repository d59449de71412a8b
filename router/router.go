package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-booking/controllers"
	"github.com/yeremiapane/restaurant-booking/middlewares"
	"github.com/yeremiapane/restaurant-booking/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter umum (50 requests per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi service & controller
	tableService := services.NewTableService(db)
	reservationService := services.NewReservationService(db)

	tableCtrl := controllers.NewTableController(tableService)
	reservationCtrl := controllers.NewReservationController(reservationService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter khusus endpoint tulis
	writeLimiter := middlewares.NewWriteRateLimiter()

	// TABLES
	tables := r.Group("/tables")
	{
		tables.GET("", tableCtrl.GetAllTables)
		tables.GET("/available", tableCtrl.GetAvailableTables)
		tables.GET("/:table_id", tableCtrl.GetTableByID)
		tables.POST("", writeLimiter, tableCtrl.CreateTable)
		tables.PUT("/:table_id", writeLimiter, tableCtrl.UpdateTable)
		tables.DELETE("/:table_id", writeLimiter, tableCtrl.DeleteTable)
	}

	// RESERVATIONS
	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationCtrl.GetAllReservations)
		reservations.GET("/table/:table_id", reservationCtrl.GetReservationsByTable)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.POST("", writeLimiter, reservationCtrl.CreateReservation)
		reservations.PUT("/:reservation_id", writeLimiter, reservationCtrl.UpdateReservation)
		reservations.DELETE("/:reservation_id", writeLimiter, reservationCtrl.DeleteReservation)
	}

	return r
}
