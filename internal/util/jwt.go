package util

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 会话令牌载荷：一个令牌对应一个学习会话（一个学生快照）
type SessionClaims struct {
	SessionID string `json:"session_id"`
	Student   string `json:"student"`
	jwt.RegisteredClaims
}

func GenerateSessionJWT(sessionID, student, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &SessionClaims{
		SessionID: sessionID,
		Student:   student,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionJWT(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func GetSessionFromContext(c *gin.Context) *SessionClaims {
	session, exists := c.Get("session")
	if !exists {
		return nil
	}
	claims, ok := session.(*SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
