// services/store_service.go
package services

import (
	"errors"
	"sort"
	"strings"

	"backend/entity"
	"backend/repository"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type StoreService struct {
	Repo *repository.StoreRepository
}

func NewStoreService(repo *repository.StoreRepository) *StoreService {
	return &StoreService{Repo: repo}
}

// ดึงร้านทั้งหมด
func (s *StoreService) List() ([]entity.Store, error) {
	return s.Repo.FindAll()
}

// ดึงร้านตาม ID — ไม่เจอคืน ErrNotFound ให้ caller render หน้า not found เอง
func (s *StoreService) Get(id uint) (*entity.Store, error) {
	store, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return store, err
}

// Query = search + filter + sort ในครั้งเดียว ตามลำดับนี้
func (s *StoreService) Query(q string, minRating float64, services, spaceTypes []string, sortKey string) ([]entity.Store, error) {
	stores, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	result := SearchStores(stores, q)
	result = FilterStores(result, minRating, services, spaceTypes)
	if sortKey != "" {
		result = SortStores(result, sortKey)
	}
	return result, nil
}

// FilterStores กรองด้วยสามเงื่อนไขแบบ AND
// selector ที่ว่าง = ผ่านเสมอ
func FilterStores(stores []entity.Store, minRating float64, selectedServices, selectedSpaceTypes []string) []entity.Store {
	result := make([]entity.Store, 0, len(stores))
	for _, store := range stores {
		if store.AvgRating < minRating {
			continue
		}
		if !hasAllServices(store.Services, selectedServices) {
			continue
		}
		if !matchSpaceType(store.SpaceType, selectedSpaceTypes) {
			continue
		}
		result = append(result, store)
	}
	return result
}

// ร้านต้องมีทุก service ที่เลือก
func hasAllServices(storeServices, selected []string) bool {
	for _, want := range selected {
		found := false
		for _, have := range storeServices {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// "both" ผ่านทุกตัวเลือก
func matchSpaceType(spaceType string, selected []string) bool {
	if len(selected) == 0 || spaceType == entity.SpaceBoth {
		return true
	}
	for _, want := range selected {
		if spaceType == want {
			return true
		}
	}
	return false
}

// SortStores เรียงแบบ stable — key ที่ไม่รู้จักคืน list เดิม ไม่ error
// name ใช้ collation ญี่ปุ่น ไม่ใช่ byte compare
func SortStores(stores []entity.Store, sortBy string) []entity.Store {
	sorted := make([]entity.Store, len(stores))
	copy(sorted, stores)

	switch sortBy {
	case "rating":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AvgRating > sorted[j].AvgRating
		})
	case "reviews":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ReviewCount > sorted[j].ReviewCount
		})
	case "name":
		col := collate.New(language.Japanese)
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].NameJP, sorted[j].NameJP) < 0
		})
	}
	return sorted
}

// SearchStores หาแบบ substring ไม่สนตัวพิมพ์ ใน ชื่อ/ที่อยู่/คำอธิบาย
// query ว่าง = คืนทั้งหมด
func SearchStores(stores []entity.Store, query string) []entity.Store {
	query = strings.TrimSpace(query)
	if query == "" {
		return stores
	}
	q := strings.ToLower(query)

	result := make([]entity.Store, 0, len(stores))
	for _, store := range stores {
		if strings.Contains(strings.ToLower(store.NameJP), q) ||
			strings.Contains(strings.ToLower(store.AddressJP), q) ||
			strings.Contains(strings.ToLower(store.DescriptionJP), q) {
			result = append(result, store)
		}
	}
	return result
}
