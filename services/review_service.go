// services/review_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB         *gorm.DB
	reviewRepo *repository.ReviewRepository
	userRepo   *repository.UserRepository
}

func NewReviewService(db *gorm.DB, reviewRepo *repository.ReviewRepository, userRepo *repository.UserRepository) *ReviewService {
	return &ReviewService{
		DB:         db,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// รีวิวของร้าน
func (s *ReviewService) ListByStore(storeID uint) ([]entity.Review, error) {
	return s.reviewRepo.FindByStoreID(storeID)
}

// รีวิวที่ user เขียนเอง
func (s *ReviewService) ListByUser(userID uint) ([]entity.Review, error) {
	return s.reviewRepo.FindByUserID(userID)
}

// Create สร้างรีวิว + อัปเดตค่าสถิติร้านใน transaction เดียว
// new_avg = round((old_avg*old_count + rating) / (old_count+1), 1)
func (s *ReviewService) Create(userID, storeID uint, rating int, comment string, images []string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment must not be empty", ErrValidation)
	}
	if err := utils.ValidateReviewImages(images); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := entity.Review{
		Rating:     rating,
		Comment:    comment,
		Images:     images,
		ReviewDate: time.Now(),
		StoreID:    storeID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.AvatarURL,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var store entity.Store
		if err := tx.First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		newCount := store.ReviewCount + 1
		newAvg := (store.AvgRating*float64(store.ReviewCount) + float64(rating)) / float64(newCount)
		return tx.Model(&entity.Store{}).Where("id = ?", store.ID).
			Updates(map[string]any{
				"avg_rating":   RoundRating(newAvg),
				"review_count": newCount,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// RoundRating ปัดเป็นทศนิยม 1 ตำแหน่ง
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
