package handlers

import (
	"jobmatch_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// requireAuth - группа маршрутов за токеном и (если задано) разрешением
func requireAuth(r *gin.RouterGroup, authMW gin.HandlerFunc, perm string) *gin.RouterGroup {
	g := r.Group("")
	g.Use(authMW)
	if perm != "" {
		g.Use(middleware.RequirePermission(perm))
	}
	return g
}
