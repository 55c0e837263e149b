// controllers/review_controller.go
package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

type CreateReviewReq struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Comment string   `json:"comment" binding:"required"`
	Images  []string `json:"images"` // data URL สูงสุด 3 รูป
}

type ReviewController struct {
	Service *services.ReviewService
	Hub     *ws.ReviewHub
}

func NewReviewController(service *services.ReviewService, hub *ws.ReviewHub) *ReviewController {
	return &ReviewController{Service: service, Hub: hub}
}

// POST /stores/:id/reviews (Protected)
func (rc *ReviewController) Create(c *gin.Context) {
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

	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Create(uid, uint(storeID), req.Rating, req.Comment, req.Images)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "store not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	// แจ้ง client ที่เปิดหน้าร้านนี้ค้างไว้
	if rc.Hub != nil {
		rc.Hub.NotifyReview(uint(storeID), review)
	}

	resp.Created(c, review)
}

// GET /stores/:id/reviews (Public)
func (rc *ReviewController) ListForStore(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}

	reviews, err := rc.Service.ListByStore(uint(storeID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /profile/reviews (Protected)
func (rc *ReviewController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	reviews, err := rc.Service.ListByUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}
