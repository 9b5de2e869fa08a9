package handlers

import (
	"errors"
	"net/http"

	"restaurant-finder-api/config"
	"restaurant-finder-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationCreateRequest struct {
	RestaurantID    string  `json:"restaurant_id" binding:"required"`
	CustomerName    string  `json:"customer_name" binding:"required,min=1,max=100"`
	CustomerEmail   string  `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string `json:"customer_phone"`
	PartySize       int     `json:"party_size" binding:"required,min=1,max=20"`
	ReservationDate string  `json:"reservation_date" binding:"required,datetime=2006-01-02"`
	ReservationTime string  `json:"reservation_time" binding:"required,datetime=15:04"`
	Notes           *string `json:"notes"`
}

// ReservationUpdateRequest carries a sparse patch: only non-nil fields are
// applied. A JSON null is indistinguishable from an absent field and means
// "leave unchanged".
type ReservationUpdateRequest struct {
	CustomerName    *string                   `json:"customer_name" binding:"omitnil,min=1,max=100"`
	CustomerEmail   *string                   `json:"customer_email" binding:"omitnil,email"`
	CustomerPhone   *string                   `json:"customer_phone"`
	PartySize       *int                      `json:"party_size" binding:"omitnil,min=1,max=20"`
	ReservationDate *string                   `json:"reservation_date" binding:"omitnil,datetime=2006-01-02"`
	ReservationTime *string                   `json:"reservation_time" binding:"omitnil,datetime=15:04"`
	Status          *models.ReservationStatus `json:"status" binding:"omitnil,oneof=pending confirmed cancelled"`
	Notes           *string                   `json:"notes"`
}

// fields maps the set fields to their column names. Column names come from
// this fixed allow-list, never from the request body.
func (r ReservationUpdateRequest) fields() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.CustomerName != nil {
		updates["customer_name"] = *r.CustomerName
	}
	if r.CustomerEmail != nil {
		updates["customer_email"] = *r.CustomerEmail
	}
	if r.CustomerPhone != nil {
		updates["customer_phone"] = *r.CustomerPhone
	}
	if r.PartySize != nil {
		updates["party_size"] = *r.PartySize
	}
	if r.ReservationDate != nil {
		updates["reservation_date"] = *r.ReservationDate
	}
	if r.ReservationTime != nil {
		updates["reservation_time"] = *r.ReservationTime
	}
	if r.Status != nil {
		updates["status"] = string(*r.Status)
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates
}

// ListReservations returns all reservations, optionally filtered by
// restaurant and status, ordered by reservation date then time
func ListReservations(c *gin.Context) {
	reservations := []models.Reservation{}
	query := config.DB.Model(&models.Reservation{})

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		if !models.ReservationStatus(status).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: pending, confirmed, cancelled"})
			return
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Order("reservation_date, reservation_time").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns a single reservation by ID
func GetReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CreateReservation inserts a new reservation. Status always starts as
// pending; it can only change through an explicit update.
func CreateReservation(c *gin.Context) {
	var req ReservationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	reservation := models.Reservation{
		RestaurantID:    req.RestaurantID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PartySize:       req.PartySize,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		Status:          models.StatusPending,
		Notes:           req.Notes,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&reservation).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation applies a sparse patch to a reservation. Fields absent
// from the payload are left untouched; updated_at is refreshed on every
// successful update.
func UpdateReservation(c *gin.Context) {
	var req ReservationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updates := req.fields()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var reservation models.Reservation
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, c.Param("id")).Error; err != nil {
			return err
		}
		if err := tx.Model(&reservation).Updates(updates).Error; err != nil {
			return err
		}
		// Re-read so the response carries the stored row, timestamps included
		return tx.First(&reservation, reservation.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation permanently removes a reservation
func DeleteReservation(c *gin.Context) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, c.Param("id")).Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation"})
		return
	}
	c.Status(http.StatusNoContent)
}
