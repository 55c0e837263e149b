// controllers/store_controller.go
package controllers

import (
	"errors"
	"strconv"
	"strings"

	"backend/configs"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	Service *services.StoreService
	Cfg     *configs.Config
}

func NewStoreController(service *services.StoreService, cfg *configs.Config) *StoreController {
	return &StoreController{Service: service, Cfg: cfg}
}

// GET /stores?q=&minRating=&services=wifi,power&spaceTypes=indoor&sort=rating
func (sc *StoreController) List(c *gin.Context) {
	q := c.Query("q")
	minRating, _ := strconv.ParseFloat(c.DefaultQuery("minRating", "0"), 64)
	selectedServices := splitCSV(c.Query("services"))
	spaceTypes := splitCSV(c.Query("spaceTypes"))
	sortKey := c.Query("sort")

	stores, err := sc.Service.Query(q, minRating, selectedServices, spaceTypes, sortKey)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stores)
}

// GET /stores/:id
func (sc *StoreController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}

	store, err := sc.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "store not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, store)
}

// GET /stores/nearby?lat=&lng=
// ไม่ส่งพิกัด (หรือส่งมาเพี้ยน) → ใช้จุด demo แทน ไม่ error
func (sc *StoreController) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		lat, lng = sc.Cfg.DemoLat, sc.Cfg.DemoLng
	}

	stores, err := sc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.SortByDistanceFrom(stores, lat, lng))
}

// "a,b,c" → ["a","b","c"] ตัดช่องว่างและตัวว่างทิ้ง
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
