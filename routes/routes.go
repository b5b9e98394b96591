package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SSY1203/emotion-wise/controllers"
	"github.com/SSY1203/emotion-wise/models"
	"github.com/SSY1203/emotion-wise/services"
	"github.com/SSY1203/emotion-wise/store"
)

// RegisterRoutes 注册全部路由
func RegisterRoutes(r *gin.Engine, s *store.Store, analysisService *services.AnalysisService) {
	emotionController := controllers.NewEmotionController(s)
	analysisController := controllers.NewAnalysisController(analysisService, s)
	dashboardController := controllers.NewDashboardController(s)

	api := r.Group("/api/v1")
	{
		// 情绪记录
		api.POST("/emotions", emotionController.CreateRecord)
		api.GET("/emotions", emotionController.ListRecords)
		api.GET("/emotions/:id", emotionController.GetRecord)
		api.DELETE("/emotions/:id", emotionController.DeleteRecord)

		// 情绪分析
		api.POST("/analysis", analysisController.AnalyzeEmotion)
		api.POST("/emotions/:id/analysis", analysisController.RegenerateAnalysis)
		api.GET("/emotions/:id/analysis", analysisController.GetRecordAnalysis)
		api.GET("/analyses/:id", analysisController.GetAnalysis)

		// 仪表盘
		api.GET("/dashboard", dashboardController.GetDashboard)

		// 枚举和展示名称，供前端渲染选项
		api.GET("/meta", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"emotionTypes":         models.EmotionTypes,
				"emotionLabels":        models.EmotionLabels,
				"situationTypes":       models.SituationTypes,
				"adviceTypeLabels":     models.AdviceTypeLabels,
				"adviceCategoryLabels": models.AdviceCategoryLabels,
			})
		})
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
