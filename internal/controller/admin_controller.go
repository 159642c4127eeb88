package controller

import (
	"strconv"
	"time"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	UserService  *service.UserService
	AdminService *service.AdminService
}

func NewAdminController(userService *service.UserService, adminService *service.AdminService) *AdminController {
	return &AdminController{
		UserService:  userService,
		AdminService: adminService,
	}
}

// GetUsers godoc
// @Summary 获取用户列表
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param pageSize query int false "每页数量"
// @Param role query string false "角色 user/admin"
// @Param status query string false "状态 online/offline/disabled"
// @Param search query string false "搜索关键字"
// @Param startDate query string false "注册开始日期 YYYY-MM-DD"
// @Param endDate query string false "注册结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := service.UserFilter{
		Role:   ctx.Query("role"),
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
	}
	if v := ctx.Query("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartDate = t
		}
	}
	if v := ctx.Query("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.EndDate = t.Add(24*time.Hour - time.Second)
		}
	}

	users, total, err := c.UserService.GetUsers(page, pageSize, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	pages := (total + pageSize - 1) / pageSize
	util.Success(ctx, gin.H{
		"items": users,
		"total": total,
		"page":  page,
		"pages": pages,
	})
}

// GetOverview godoc
// @Summary 获取全站统计概览
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AdminOverview}
// @Router /api/admin/overview [get]
func (c *AdminController) GetOverview(ctx *gin.Context) {
	overview, err := c.AdminService.GetOverview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// DisableUserRequest 禁用请求
type DisableUserRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// DisableUser godoc
// @Summary 禁用或启用用户
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param body body DisableUserRequest true "禁用状态"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/disable [patch]
func (c *AdminController) DisableUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req DisableUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID == uint(id) {
		util.BadRequest(ctx, "cannot disable your own account")
		return
	}

	if err := c.UserService.DisableUser(uint(id), *req.Disabled); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"disabled": *req.Disabled})
}

// DeleteUser godoc
// @Summary 删除用户及其全部数据
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 204 "No Content"
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID == uint(id) {
		util.BadRequest(ctx, "cannot delete your own account")
		return
	}

	if err := c.UserService.DeleteUser(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
