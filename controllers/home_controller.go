// controllers/home_controller.go
package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	Stores    *services.StoreService
	Favorites *services.FavoriteService
}

func NewHomeController(stores *services.StoreService, favorites *services.FavoriteService) *HomeController {
	return &HomeController{Stores: stores, Favorites: favorites}
}

// GET /home/hot-picks — ร้านเด่น 5 ร้าน หมุนเวียนทุกครั้งที่โหลด
func (hc *HomeController) HotPicks(c *gin.Context) {
	stores, err := hc.Stores.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.HotPicks(stores))
}

// GET /home/nearby — ร้านใกล้ตัว 5 ร้าน
// login อยู่ favorite จะถูกดันขึ้นก่อน (ผ่าน OptionalAuthMiddleware)
func (hc *HomeController) NearBy(c *gin.Context) {
	stores, err := hc.Stores.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	uid := utils.CurrentUserID(c)
	favoriteIDs := map[uint]bool{}
	if uid != 0 {
		favoriteIDs, err = hc.Favorites.StoreIDSet(uid)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	resp.OK(c, services.NearBy(stores, favoriteIDs, uid != 0))
}
