package controller

import (
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/store"
	"dsa_tracker_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// List godoc
// @Summary 获取活动记录列表
// @Description 获取当前用户的全部刷题/学习记录，按日期降序
// @Tags 活动记录
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/activities [get]
func (c *ActivityController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	activities, err := c.ActivityService.ListByUser(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// Get godoc
// @Summary 获取单条活动记录
// @Tags 活动记录
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "活动ID"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/activities/{id} [get]
func (c *ActivityController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	activity, err := c.ActivityService.GetByID(user.UserID, ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// Create godoc
// @Summary 记录一次学习活动
// @Tags 活动记录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ActivityRequest true "活动信息"
// @Success 201 {object} util.Response{data=model.Activity}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/activities [post]
func (c *ActivityController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.Create(user.UserID, &req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Created(ctx, activity)
}

// Update godoc
// @Summary 更新活动记录
// @Tags 活动记录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "活动ID"
// @Param body body service.ActivityRequest true "活动信息"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/activities/{id} [put]
func (c *ActivityController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.Update(user.UserID, ctx.Param("id"), &req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// Delete godoc
// @Summary 删除活动记录
// @Tags 活动记录
// @Security ApiKeyAuth
// @Param id path string true "活动ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/activities/{id} [delete]
func (c *ActivityController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ActivityService.Delete(user.UserID, ctx.Param("id")); err != nil {
		c.writeError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func (c *ActivityController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrActivityNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidDate),
		errors.Is(err, util.ErrInvalidValue),
		errors.Is(err, util.ErrInvalidDuration):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
