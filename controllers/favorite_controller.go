// controllers/favorite_controller.go
package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Service *services.FavoriteService
}

func NewFavoriteController(service *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Service: service}
}

// POST /stores/:id/favorite (Protected) — toggle
func (fc *FavoriteController) Toggle(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}

	favorited, err := fc.Service.Toggle(uid, uint(storeID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "store not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": favorited})
}

// GET /profile/favorites (Protected)
func (fc *FavoriteController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	stores, err := fc.Service.ListStores(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stores)
}
