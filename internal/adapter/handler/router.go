package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

// SetupRoutes wires every endpoint onto the engine. All routes sit behind
// token verification; write routes additionally behind role gates.
func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	bookingHandler *BookingHandler,
	kosHandler *KosHandler,
	reviewHandler *ReviewHandler,
) {
	auth := AuthMiddleware(jwtSecret)

	books := r.Group("/books", auth)
	{
		books.POST("", RequireRole(domain.RoleSociety), bookingHandler.CreateBooking)
		books.GET("/user", bookingHandler.GetUserBookings)
		books.GET("/owner", RequireRole(domain.RoleOwner), bookingHandler.GetOwnerBookings)
		books.GET("/history", RequireRole(domain.RoleOwner), bookingHandler.GetTransactionHistory)
		books.PUT("/:id/status", RequireRole(domain.RoleOwner), bookingHandler.UpdateBookingStatus)
		books.GET("/:id/print", bookingHandler.PrintReceipt)
	}

	kos := r.Group("/kos", auth)
	{
		kos.GET("", kosHandler.GetAllKos)
		kos.GET("/owner", RequireRole(domain.RoleOwner), kosHandler.GetOwnerKos)
		kos.GET("/:id", kosHandler.GetKosByID)
		kos.POST("", RequireRole(domain.RoleOwner), kosHandler.CreateKos)
		kos.PUT("/:id", RequireRole(domain.RoleOwner, domain.RoleAdmin), kosHandler.UpdateKos)
		kos.DELETE("/:id", RequireRole(domain.RoleOwner, domain.RoleAdmin), kosHandler.DeleteKos)

		kos.POST("/:id/images", RequireRole(domain.RoleOwner), kosHandler.AddKosImage)
		kos.DELETE("/:id/images/:imageId", RequireRole(domain.RoleOwner, domain.RoleAdmin), kosHandler.DeleteKosImage)

		kos.GET("/:id/facilities", kosHandler.GetKosFacilities)
		kos.POST("/:id/facilities", RequireRole(domain.RoleOwner), kosHandler.AddKosFacility)
		kos.PUT("/:id/facilities/:facilityId", RequireRole(domain.RoleOwner), kosHandler.UpdateKosFacility)
		kos.DELETE("/:id/facilities/:facilityId", RequireRole(domain.RoleOwner), kosHandler.DeleteKosFacility)

		kos.GET("/:id/reviews", reviewHandler.GetKosReviews)
		kos.POST("/:id/reviews", RequireRole(domain.RoleSociety), reviewHandler.AddReview)
	}

	reviews := r.Group("/reviews", auth)
	{
		reviews.PUT("/:reviewId/reply", RequireRole(domain.RoleOwner), reviewHandler.ReplyReview)
		reviews.DELETE("/:reviewId", reviewHandler.DeleteReview)
	}
}
