package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecraft/internal/app/models/dto"
)

// respond writes data inside the standard envelope
func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}
