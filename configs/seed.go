package configs

import (
	"errors"
	"log"
	"math"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll รันทุก seed ตามลำดับ dependency
func SeedAll() error {
	if err := SeedNeeds(); err != nil {
		return err
	}
	if err := SeedUsers(); err != nil {
		return err
	}
	if err := SeedStores(); err != nil {
		return err
	}
	if err := SeedReviews(); err != nil {
		return err
	}
	return SeedFavorites()
}

// Seed ตาราง needs (catalog คงที่)
func SeedNeeds() error {
	db := DB()
	for _, n := range seedNeeds {
		if err := db.FirstOrCreate(&entity.Need{}, entity.Need{NeedID: n.NeedID}).Error; err != nil {
			return err
		}
		// เติม label ให้ record ที่เพิ่งสร้าง (FirstOrCreate match เฉพาะ NeedID)
		if err := db.Model(&entity.Need{}).Where("need_id = ?", n.NeedID).
			Updates(map[string]any{
				"label_jp": n.LabelJP, "label_vn": n.LabelVN,
				"icon": n.Icon, "description": n.Description,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedUsers ทำ merge-on-load:
// - user ใหม่ → insert พร้อม hash password
// - user เดิม → คงค่าที่แก้ไว้ แต่เติม field ที่ยังว่างจาก seed
func SeedUsers() error {
	db := DB()
	for _, seed := range seedUsers {
		var existing entity.User
		err := db.Where("email = ?", seed.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u := seed
			u.Password = string(hash)
			if err := db.Create(&u).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if fillUserDefaults(&existing, seed) {
			if err := db.Save(&existing).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// fillUserDefaults เติม field ที่ว่างจาก seed โดยไม่ทับค่าที่ user แก้เอง
// เพิ่ม field ใหม่ใน entity.User เมื่อไหร่ ให้เพิ่มเคสที่นี่ + เคสใน seed_test.go
func fillUserDefaults(u *entity.User, seed entity.User) bool {
	changed := false
	if u.Name == "" && seed.Name != "" {
		u.Name = seed.Name
		changed = true
	}
	if u.Username == "" && seed.Username != "" {
		u.Username = seed.Username
		changed = true
	}
	if u.AvatarURL == "" && seed.AvatarURL != "" {
		u.AvatarURL = seed.AvatarURL
		changed = true
	}
	if u.Location == "" && seed.Location != "" {
		u.Location = seed.Location
		changed = true
	}
	if u.RegistrationDate == "" && seed.RegistrationDate != "" {
		u.RegistrationDate = seed.RegistrationDate
		changed = true
	}
	return changed
}

// Seed ร้านกาแฟ — insert เฉพาะร้านที่ยังไม่มี (match ด้วยชื่อ)
func SeedStores() error {
	db := DB()
	for _, s := range seedStores {
		var existing entity.Store
		err := db.Where("name_jp = ?", s.NameJP).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			store := s
			if err := db.Create(&store).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Seed รีวิวครั้งแรกเท่านั้น แล้ว derive ค่าสถิติของร้านจากรีวิวจริง
func SeedReviews() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Review{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users, stores, err := loadSeedRefs(db)
	if err != nil {
		return err
	}

	for _, sr := range seedReviews {
		if sr.StoreIndex >= len(stores) || sr.UserIndex >= len(users) {
			continue
		}
		u := users[sr.UserIndex]
		rev := entity.Review{
			Rating:     sr.Rating,
			Comment:    sr.Comment,
			ReviewDate: seedReviewDate(sr.DaysAgo),
			StoreID:    stores[sr.StoreIndex].ID,
			UserID:     u.ID,
			UserName:   u.Name,
			UserAvatar: u.AvatarURL,
		}
		if err := db.Create(&rev).Error; err != nil {
			return err
		}
	}

	// recompute avg_rating / review_count ของทุกร้าน
	for i := range stores {
		if err := RecomputeStoreStats(db, stores[i].ID); err != nil {
			return err
		}
	}

	log.Println("✅ Reviews seeded")
	return nil
}

func SeedFavorites() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Favorite{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users, stores, err := loadSeedRefs(db)
	if err != nil {
		return err
	}

	for _, sf := range seedFavorites {
		if sf.StoreIndex >= len(stores) || sf.UserIndex >= len(users) {
			continue
		}
		fav := entity.Favorite{
			UserID:  users[sf.UserIndex].ID,
			StoreID: stores[sf.StoreIndex].ID,
		}
		if err := db.Create(&fav).Error; err != nil {
			return err
		}
	}
	return nil
}

// โหลด users/stores เรียงตามลำดับ insert เพื่อ map index → id
func loadSeedRefs(db *gorm.DB) ([]entity.User, []entity.Store, error) {
	var users []entity.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, nil, err
	}
	var stores []entity.Store
	if err := db.Order("id").Find(&stores).Error; err != nil {
		return nil, nil, err
	}
	return users, stores, nil
}

// RecomputeStoreStats derive avg_rating (ทศนิยม 1 ตำแหน่ง) กับ review_count จากตารางรีวิว
func RecomputeStoreStats(db *gorm.DB, storeID uint) error {
	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	if err := db.Model(&entity.Review{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error; err != nil {
		return err
	}
	return db.Model(&entity.Store{}).Where("id = ?", storeID).
		Updates(map[string]any{
			"avg_rating":   math.Round(a.Avg*10) / 10,
			"review_count": a.Count,
		}).Error
}
