package models

import "time"

type Review struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RestaurantID  string    `json:"restaurant_id" gorm:"not null;index"`
	ReviewerName  string    `json:"reviewer_name" gorm:"not null"`
	ReviewerEmail *string   `json:"reviewer_email"`
	Rating        int       `json:"rating" gorm:"not null;index;check:rating >= 1 AND rating <= 5"`
	Title         *string   `json:"title"`
	Comment       *string   `json:"comment"`
	VisitDate     *string   `json:"visit_date"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewStats holds aggregated statistics for a set of reviews.
// AvgRating is null when there are no reviews to average.
type ReviewStats struct {
	AvgRating    *float64 `json:"avg_rating"`
	TotalReviews int64    `json:"total_reviews"`
}
