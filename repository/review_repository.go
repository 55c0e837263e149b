// repository/review_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// รีวิวของร้าน เรียงใหม่สุดก่อน
func (r *ReviewRepository) FindByStoreID(storeID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("store_id = ?", storeID).
		Order("review_date DESC").
		Find(&reviews).Error
	return reviews, err
}

// รีวิวที่ user เขียน เรียงใหม่สุดก่อน
func (r *ReviewRepository) FindByUserID(userID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("user_id = ?", userID).
		Order("review_date DESC").
		Find(&reviews).Error
	return reviews, err
}
