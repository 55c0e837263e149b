// repository/favorite_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// หา favorite ของ (user, store) — มีได้อย่างมาก 1 รายการ
func (r *FavoriteRepository) FindByUserAndStore(userID, storeID uint) (*entity.Favorite, error) {
	var fav entity.Favorite
	if err := r.DB.Where("user_id = ? AND store_id = ?", userID, storeID).First(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) Create(fav *entity.Favorite) error {
	return r.DB.Create(fav).Error
}

// ลบถาวร ไม่ใช่ soft delete — toggle กลับมาต้องสร้างใหม่ได้โดยไม่ชน unique index
func (r *FavoriteRepository) Delete(fav *entity.Favorite) error {
	return r.DB.Unscoped().Delete(fav).Error
}

// store id ทั้งหมดที่ user กด favorite ไว้
func (r *FavoriteRepository) StoreIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("store_id", &ids).Error
	return ids, err
}
