package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"restaurant-finder-api/config"
	"restaurant-finder-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewCreateRequest struct {
	RestaurantID  string  `json:"restaurant_id" binding:"required"`
	ReviewerName  string  `json:"reviewer_name" binding:"required,min=1,max=100"`
	ReviewerEmail *string `json:"reviewer_email" binding:"omitnil,email"`
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Title         *string `json:"title" binding:"omitnil,max=200"`
	Comment       *string `json:"comment"`
	VisitDate     *string `json:"visit_date" binding:"omitnil,datetime=2006-01-02"`
}

// ListReviews returns reviews with optional filtering and sorting, plus
// aggregate stats. The stats cover every review matching the restaurant_id
// filter — min_rating narrows the list only, never the aggregate.
func ListReviews(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "created_at")
	if sortBy != "created_at" && sortBy != "rating" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_by must be one of: created_at, rating"})
		return
	}
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be one of: asc, desc"})
		return
	}
	minRating := 0
	if raw := c.Query("min_rating"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_rating must be an integer between 1 and 5"})
			return
		}
		minRating = n
	}
	restaurantID := c.Query("restaurant_id")

	reviews := []models.Review{}
	var stats models.ReviewStats
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Review{})
		if restaurantID != "" {
			query = query.Where("restaurant_id = ?", restaurantID)
		}
		if minRating > 0 {
			query = query.Where("rating >= ?", minRating)
		}
		if err := query.Order(sortBy + " " + order).Find(&reviews).Error; err != nil {
			return err
		}

		statsQuery := tx.Model(&models.Review{})
		if restaurantID != "" {
			statsQuery = statsQuery.Where("restaurant_id = ?", restaurantID)
		}
		return statsQuery.
			Select("AVG(rating) AS avg_rating, COUNT(*) AS total_reviews").
			Scan(&stats).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	if stats.AvgRating != nil {
		rounded := math.Round(*stats.AvgRating*100) / 100
		stats.AvgRating = &rounded
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "stats": stats})
}

// GetReview returns a single review by ID
func GetReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// CreateReview inserts a new review
func CreateReview(c *gin.Context) {
	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		RestaurantID:  req.RestaurantID,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
		VisitDate:     req.VisitDate,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&review).Error
	})
	if err != nil {
		// The rating CHECK backs up request validation; a violation here is
		// still a validation failure from the caller's point of view.
		if strings.Contains(err.Error(), "CHECK constraint") {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "rating must be between 1 and 5"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// DeleteReview permanently removes a review
func DeleteReview(c *gin.Context) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, c.Param("id")).Error; err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.Status(http.StatusNoContent)
}
