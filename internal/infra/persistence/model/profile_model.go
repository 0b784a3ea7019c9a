package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID is the identity ID issued by the auth provider.
type ProfileModel struct {
	ID            string  `gorm:"type:varchar(64);primaryKey"`
	Name          string  `gorm:"type:varchar(100)"`
	Email         string  `gorm:"type:varchar(255)"`
	Role          string  `gorm:"type:varchar(20);not null;default:buyer"`
	ProfileImage  string  `gorm:"type:text"`
	CI            string  `gorm:"column:ci;type:varchar(20)"`
	Address       string  `gorm:"type:text"`
	PhoneNumber   string  `gorm:"type:varchar(30)"`
	AverageRating float64 `gorm:"type:decimal(3,2);not null;default:0"`
	TotalRatings  int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// RatingModel mirrors the 'ratings' table. One row per (rater, rated) pair.
type RatingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_ratings_rater_rated"`
	RatedUserID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_ratings_rater_rated;index"`
	Rating      int    `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment     string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
