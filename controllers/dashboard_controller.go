package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/services"
	"github.com/SSY1203/emotion-wise/store"
)

// DashboardController 仪表盘统计接口
type DashboardController struct {
	store *store.Store
}

// NewDashboardController 创建仪表盘控制器
func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{store: s}
}

// GetDashboard 返回情绪记录的汇总统计
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	records, err := dc.store.ListRecords()
	if err != nil {
		config.Logger.Errorw("读取情绪记录失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "读取情绪记录失败",
		})
		return
	}

	c.JSON(http.StatusOK, services.ComputeDashboard(records))
}
