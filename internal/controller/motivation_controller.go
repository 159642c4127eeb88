package controller

import (
	"strconv"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// GetCurrentMotivation godoc
// @Summary 获取当前激励语
// @Tags 激励语
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /api/motivation [get]
func (c *MotivationController) GetCurrentMotivation(ctx *gin.Context) {
	content, err := c.MotivationService.GetCurrentMotivation()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"content": content})
}

// GetAllMotivations godoc
// @Summary 获取全部激励语
// @Tags 激励语
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/motivations [get]
func (c *MotivationController) GetAllMotivations(ctx *gin.Context) {
	items, err := c.MotivationService.GetAllMotivations()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// MotivationRequest 激励语请求
type MotivationRequest struct {
	Content   string `json:"content" binding:"required,max=500"`
	IsEnabled *bool  `json:"isEnabled"`
}

// CreateMotivation godoc
// @Summary 创建激励语
// @Tags 激励语
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MotivationRequest true "激励语"
// @Success 201 {object} util.Response
// @Router /api/admin/motivations [post]
func (c *MotivationController) CreateMotivation(ctx *gin.Context) {
	var req MotivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.MotivationService.CreateMotivation(req.Content); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"content": req.Content})
}

// UpdateMotivation godoc
// @Summary 更新激励语
// @Tags 激励语
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "激励语ID"
// @Param body body MotivationRequest true "激励语"
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id} [put]
func (c *MotivationController) UpdateMotivation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid motivation id")
		return
	}

	var req MotivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	if err := c.MotivationService.UpdateMotivation(uint(id), req.Content, enabled); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// DeleteMotivation godoc
// @Summary 删除激励语
// @Tags 激励语
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "激励语ID"
// @Success 204 "No Content"
// @Router /api/admin/motivations/{id} [delete]
func (c *MotivationController) DeleteMotivation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid motivation id")
		return
	}
	if err := c.MotivationService.DeleteMotivation(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
