package controller

import (
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// GetSummary godoc
// @Summary 获取全部派生指标
// @Description 连续天数、汇总统计、徽章、等级一次取齐
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=metrics.Summary}
// @Router /api/stats [get]
func (c *StatsController) GetSummary(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.StatsService.GetSummary(user.UserID))
}

// GetStreak godoc
// @Summary 获取当前连续打卡天数
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/stats/streak [get]
func (c *StatsController) GetStreak(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, gin.H{"currentStreak": c.StatsService.GetStreak(user.UserID)})
}

// GetHeatmap godoc
// @Summary 获取热力图分桶
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param period query string false "时间范围" Enums(3months, 6months, 1year) default(1year)
// @Success 200 {object} util.Response{data=[]metrics.HeatmapDay}
// @Router /api/stats/heatmap [get]
func (c *StatsController) GetHeatmap(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	period := ctx.DefaultQuery("period", "1year")
	util.Success(ctx, c.StatsService.GetHeatmap(user.UserID, period))
}

// GetLevel godoc
// @Summary 获取用户等级与升级进度
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=metrics.LevelResult}
// @Router /api/level [get]
func (c *StatsController) GetLevel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.StatsService.GetLevel(user.UserID))
}
