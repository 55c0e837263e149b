// services/favorite_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type FavoriteService struct {
	favRepo   *repository.FavoriteRepository
	storeRepo *repository.StoreRepository
}

func NewFavoriteService(favRepo *repository.FavoriteRepository, storeRepo *repository.StoreRepository) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, storeRepo: storeRepo}
}

// Toggle สลับสถานะ favorite — กดสองครั้งกลับมาเหมือนเดิม
// คืน true ถ้าตอนนี้เป็น favorite
func (s *FavoriteService) Toggle(userID, storeID uint) (bool, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	fav, err := s.favRepo.FindByUserAndStore(userID, storeID)
	if err == nil {
		// มีอยู่แล้ว → ลบ
		return false, s.favRepo.Delete(fav)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	// ยังไม่มี → สร้าง
	return true, s.favRepo.Create(&entity.Favorite{UserID: userID, StoreID: storeID})
}

func (s *FavoriteService) IsFavorite(userID, storeID uint) (bool, error) {
	_, err := s.favRepo.FindByUserAndStore(userID, storeID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// ร้านทั้งหมดที่ user กด favorite
func (s *FavoriteService) ListStores(userID uint) ([]entity.Store, error) {
	ids, err := s.favRepo.StoreIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.storeRepo.FindByIDs(ids)
}

// StoreIDSet ไว้เช็ค membership เร็ว ๆ (ใช้ใน home feed)
func (s *FavoriteService) StoreIDSet(userID uint) (map[uint]bool, error) {
	ids, err := s.favRepo.StoreIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
