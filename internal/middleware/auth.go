package middleware

import (
	"strings"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware 校验会话令牌并把对应的 PerformanceStore 放进请求上下文。
// 令牌有效但会话已结束（或服务重启丢失）时同样返回 401。
func SessionMiddleware(cfg *config.Config, sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseSessionJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		store, err := sessions.StoreFor(claims.SessionID)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("session", claims)
		c.Set("store", store)
		c.Next()
	}
}
