// services/home_service.go
package services

import (
	"math"
	"math/rand"
	"sort"

	"backend/entity"
)

const homeFeedLimit = 5

// HotPicks เลือกร้านเด่นสูงสุด 5 ร้าน
// คะแนน = rating*20 + min(reviews/10, 50) + random สูงสุด 30
// random ทำให้หน้า home หมุนเวียนร้านทุกครั้งที่โหลด
func HotPicks(stores []entity.Store) []entity.Store {
	boosts := make([]float64, len(stores))
	for i := range boosts {
		boosts[i] = rand.Float64() * 30
	}
	return topByScore(stores, func(i int, s *entity.Store) float64 {
		return hotPickScore(s, boosts[i])
	})
}

func hotPickScore(s *entity.Store, randomBoost float64) float64 {
	ratingScore := s.AvgRating * 20
	reviewScore := math.Min(float64(s.ReviewCount)/10, 50)
	return ratingScore + reviewScore + randomBoost
}

// NearBy เลือกร้านใกล้ตัวสูงสุด 5 ร้าน — favorite ของ user มาก่อนเสมอ (+150)
func NearBy(stores []entity.Store, favoriteIDs map[uint]bool, loggedIn bool) []entity.Store {
	return topByScore(stores, func(_ int, s *entity.Store) float64 {
		return nearByScore(s, loggedIn && favoriteIDs[s.ID])
	})
}

func nearByScore(s *entity.Store, isFavorite bool) float64 {
	score := math.Max(0, 100-s.Distance*10)
	if isFavorite {
		score += 150
	}
	score += s.AvgRating * 10
	score += math.Min(float64(s.ReviewCount)/5, 20)
	return score
}

func topByScore(stores []entity.Store, scoreFn func(int, *entity.Store) float64) []entity.Store {
	type scored struct {
		store entity.Store
		score float64
	}
	list := make([]scored, len(stores))
	for i := range stores {
		list[i] = scored{store: stores[i], score: scoreFn(i, &stores[i])}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})

	n := homeFeedLimit
	if len(list) < n {
		n = len(list)
	}
	result := make([]entity.Store, n)
	for i := 0; i < n; i++ {
		result[i] = list[i].store
	}
	return result
}

// SortByDistanceFrom เรียงร้านตามระยะจริงจากพิกัดที่ client ส่งมา
// ไม่ได้แก้ field Distance ใน DB — อันนั้นคือระยะจากจุด demo
func SortByDistanceFrom(stores []entity.Store, lat, lng float64) []entity.Store {
	sorted := make([]entity.Store, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := Haversine(lat, lng, sorted[i].Lat, sorted[i].Lng)
		dj := Haversine(lat, lng, sorted[j].Lat, sorted[j].Lng)
		return di < dj
	})
	return sorted
}

// Haversine ระยะทางระหว่างสองพิกัด หน่วย km
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
