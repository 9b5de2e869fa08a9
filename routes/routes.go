package routes

import (
	"restaurant-finder-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Reservations
		api.GET("/reservations", handlers.ListReservations)
		api.GET("/reservations/:id", handlers.GetReservation)
		api.POST("/reservations", handlers.CreateReservation)
		api.PATCH("/reservations/:id", handlers.UpdateReservation)
		api.DELETE("/reservations/:id", handlers.DeleteReservation)

		// Reviews
		api.GET("/reviews", handlers.ListReviews)
		api.GET("/reviews/:id", handlers.GetReview)
		api.POST("/reviews", handlers.CreateReview)
		api.DELETE("/reviews/:id", handlers.DeleteReview)
	}
}
