package controller

import (
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// @Summary 开始学习会话
// @Description 从配置的学生快照创建一次学习会话，返回会话令牌和初始画像
// @Tags 会话
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	token, profile, err := c.SessionService.StartSession()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"token":   token,
		"profile": profile,
	})
}

// @Summary 结束学习会话
// @Tags 会话
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/sessions [delete]
func (c *SessionController) EndSession(ctx *gin.Context) {
	claims := util.GetSessionFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	c.SessionService.EndSession(claims.SessionID)
	util.Success(ctx, gin.H{"ended": true})
}
