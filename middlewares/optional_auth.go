package middlewares

import (
	"fmt"
	"strings"

	"backend/configs"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// เหมือน AuthMiddleware แต่ไม่มี token ก็ผ่านได้ (ใช้กับหน้า public
// ที่แสดงผลต่างกันตอน login เช่น near-by ที่ดัน favorite ขึ้นก่อน)
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		cfg := configs.LoadConfig()
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			// token เสียถือว่าไม่ได้ login ไม่ตัด request
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["userId"].(float64); ok {
				c.Set("userId", uint(v))
			}
			if v, ok := claims["email"].(string); ok {
				c.Set("email", v)
			}
		}
		c.Next()
	}
}
