package controller

import (
	"errors"

	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlannerController struct {
	ScheduleService       *service.ScheduleService
	ReminderService       *service.ReminderService
	RecommendationService *service.RecommendationService
	ProgressService       *service.ProgressService
}

func NewPlannerController(
	scheduleService *service.ScheduleService,
	reminderService *service.ReminderService,
	recommendationService *service.RecommendationService,
	progressService *service.ProgressService,
) *PlannerController {
	return &PlannerController{
		ScheduleService:       scheduleService,
		ReminderService:       reminderService,
		RecommendationService: recommendationService,
		ProgressService:       progressService,
	}
}

// storeFromContext 取出 SessionMiddleware 放入的 store 句柄
func storeFromContext(ctx *gin.Context) *repository.PerformanceStore {
	v, exists := ctx.Get("store")
	if !exists {
		return nil
	}
	store, ok := v.(*repository.PerformanceStore)
	if !ok {
		return nil
	}
	return store
}

// @Summary 获取当日学习计划
// @Description 按科目表现生成今天的学习时段列表
// @Tags 学习计划
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/schedule/daily [get]
func (c *PlannerController) GetDailySchedule(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.ScheduleService.DailySchedule(store))
}

// @Summary 获取每周学习计划
// @Description 从今天起的7天计划，周末减量
// @Tags 学习计划
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/schedule/weekly [get]
func (c *PlannerController) GetWeeklySchedule(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.ScheduleService.WeeklySchedule(store))
}

// @Summary 获取学习提醒
// @Description 每个科目一条提醒，按表现选择措辞
// @Tags 学习计划
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/reminders [get]
func (c *PlannerController) GetReminders(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.ReminderService.Reminders(store))
}

// @Summary 获取科目推荐资源
// @Description 通用推荐在前，薄弱项推荐按声明顺序在后；未知科目返回空列表
// @Tags 推荐
// @Produce json
// @Security BearerAuth
// @Param subject path string true "科目名"
// @Success 200 {object} util.Response
// @Router /api/recommendations/{subject} [get]
func (c *PlannerController) GetRecommendations(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	subject := ctx.Param("subject")
	util.Success(ctx, c.RecommendationService.ForSubject(store, subject))
}

// @Summary 获取学生画像
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *PlannerController) GetProfile(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.ProgressService.Profile(store))
}

// @Summary 获取各科进度
// @Description 按分钟维度展开每科完成情况
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *PlannerController) GetSubjectProgress(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.ProgressService.SubjectProgress(store))
}

type updateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// @Summary 更新科目进度
// @Description 设置科目完成百分比并同步重算整体进度
// @Tags 进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "科目名"
// @Param body body updateProgressRequest true "进度（0-100）"
// @Success 200 {object} util.Response
// @Router /api/subjects/{subject}/progress [put]
func (c *PlannerController) UpdateProgress(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProgressService.SetProgress(store, ctx.Param("subject"), *req.Progress)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 完成科目学习
// @Description 将科目进度置为100%
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param subject path string true "科目名"
// @Success 200 {object} util.Response
// @Router /api/subjects/{subject}/complete [post]
func (c *PlannerController) CompleteSession(ctx *gin.Context) {
	store := storeFromContext(ctx)
	if store == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProgressService.CompleteSession(store, ctx.Param("subject"))
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

func respondStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSubjectNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidProgress):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
