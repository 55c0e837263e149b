// repository/store_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

// ดึงร้านทั้งหมด
func (r *StoreRepository) FindAll() ([]entity.Store, error) {
	var stores []entity.Store
	err := r.DB.Order("id").Find(&stores).Error
	return stores, err
}

// ดึงร้านตาม ID
func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// ดึงหลายร้านตามชุด ID
func (r *StoreRepository) FindByIDs(ids []uint) ([]entity.Store, error) {
	if len(ids) == 0 {
		return []entity.Store{}, nil
	}
	var stores []entity.Store
	err := r.DB.Where("id IN ?", ids).Order("id").Find(&stores).Error
	return stores, err
}
