// controllers/recommend_controller.go
package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecommendController struct {
	DB     *gorm.DB
	Stores *services.StoreService
}

func NewRecommendController(db *gorm.DB, stores *services.StoreService) *RecommendController {
	return &RecommendController{DB: db, Stores: stores}
}

// GET /needs — catalog ความต้องการทั้งหมด
func (rc *RecommendController) Needs(c *gin.Context) {
	var needs []entity.Need
	if err := rc.DB.Order("id").Find(&needs).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, needs)
}

// GET /recommendations?needs=work,date&text=...
// รวม need จาก query ตรง ๆ กับที่เดาจาก free text แล้วจัดอันดับร้าน
func (rc *RecommendController) Recommendations(c *gin.Context) {
	needIDs := splitCSV(c.Query("needs"))
	if text := c.Query("text"); text != "" {
		needIDs = mergeNeedIDs(needIDs, services.ExtractTagsFromText(text))
	}

	stores, err := rc.Stores.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	ranked := services.GetRecommendations(stores, needIDs)

	type recommended struct {
		entity.Store
		MatchPercent int `json:"match_percent"`
	}
	result := make([]recommended, len(ranked))
	for i := range ranked {
		result[i] = recommended{
			Store:        ranked[i],
			MatchPercent: services.GetMatchingPercentage(&ranked[i], needIDs),
		}
	}

	resp.OK(c, gin.H{"needs": needIDs, "stores": result})
}

func mergeNeedIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	result := make([]string, 0, len(a)+len(b))
	for _, id := range append(a, b...) {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
