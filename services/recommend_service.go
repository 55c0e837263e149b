// services/recommend_service.go
package services

import (
	"sort"
	"strings"

	"backend/entity"
)

// ตาราง keyword → tags สำหรับเดา need จากข้อความ free text
// match แบบ substring (ไม่ตัดคำ) — keyword สั้นอาจ match คำอื่นที่ยาวกว่าได้
// เป็นข้อจำกัดที่รู้อยู่แล้ว ไม่ต้องแก้
var keywordTags = []struct {
	Keyword string
	Tags    []string
}{
	{"học", []string{"work"}},
	{"làm việc", []string{"work"}},
	{"wifi", []string{"work"}},
	{"ổ cắm", []string{"work"}},
	{"勉強", []string{"work"}},
	{"仕事", []string{"work"}},
	{"hẹn hò", []string{"date"}},
	{"lãng mạn", []string{"date"}},
	{"デート", []string{"date"}},
	{"đọc sách", []string{"reading"}},
	{"sách", []string{"reading"}},
	{"読書", []string{"reading"}},
	{"yên tĩnh", []string{"reading", "work"}},
	{"chụp ảnh", []string{"photo"}},
	{"sống ảo", []string{"photo"}},
	{"check-in", []string{"photo"}},
	{"写真", []string{"photo"}},
	{"nhóm", []string{"group"}},
	{"bạn bè", []string{"group"}},
	{"グループ", []string{"group"}},
	{"thư giãn", []string{"relax"}},
	{"chill", []string{"relax"}},
	{"リラックス", []string{"relax"}},
	{"thiên nhiên", []string{"nature"}},
	{"cây xanh", []string{"nature"}},
	{"sân vườn", []string{"nature", "relax"}},
	{"自然", []string{"nature"}},
}

// GetRecommendations เรียงร้านตามจำนวน tag ที่ตรงกับ need ที่เลือก
// ไม่เลือกอะไรเลย = คืน list เดิม (ตาม UX ไม่ใช่เคสพิเศษของ scoring)
func GetRecommendations(stores []entity.Store, selectedNeedIDs []string) []entity.Store {
	if len(selectedNeedIDs) == 0 {
		return stores
	}

	type scored struct {
		store entity.Store
		score int
	}
	matched := make([]scored, 0, len(stores))
	for _, store := range stores {
		n := countMatches(store.Tags, selectedNeedIDs)
		if n > 0 {
			matched = append(matched, scored{store: store, score: n})
		}
	}

	// score มากก่อน แล้วค่อย rating — เสมอกันทั้งคู่ให้คงลำดับเดิม
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return matched[i].store.AvgRating > matched[j].store.AvgRating
	})

	result := make([]entity.Store, len(matched))
	for i, m := range matched {
		result[i] = m.store
	}
	return result
}

// GetMatchingPercentage = round(100 * |match| / |selected|)
// ตัวหารคือจำนวน need ที่เลือก ไม่ใช่ union (ตั้งใจ ไม่ใช่ Jaccard)
func GetMatchingPercentage(store *entity.Store, selectedNeedIDs []string) int {
	if len(store.Tags) == 0 || len(selectedNeedIDs) == 0 {
		return 0
	}
	n := countMatches(store.Tags, selectedNeedIDs)
	return int(float64(n)/float64(len(selectedNeedIDs))*100 + 0.5)
}

func countMatches(tags, selectedNeedIDs []string) int {
	n := 0
	for _, need := range selectedNeedIDs {
		for _, tag := range tags {
			if tag == need {
				n++
				break
			}
		}
	}
	return n
}

// ExtractTagsFromText เดา need จากข้อความ เช่นช่อง "วันนี้อยากทำอะไร"
func ExtractTagsFromText(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return []string{}
	}

	seen := make(map[string]bool)
	result := []string{}
	for _, kt := range keywordTags {
		if !strings.Contains(text, kt.Keyword) {
			continue
		}
		for _, tag := range kt.Tags {
			if !seen[tag] {
				seen[tag] = true
				result = append(result, tag)
			}
		}
	}
	return result
}
