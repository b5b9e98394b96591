package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
	"github.com/SSY1203/emotion-wise/services"
	"github.com/SSY1203/emotion-wise/store"
)

// AnalysisController 情绪分析接口
type AnalysisController struct {
	analysisService *services.AnalysisService
	store           *store.Store
}

// NewAnalysisController 创建分析控制器
func NewAnalysisController(analysisService *services.AnalysisService, s *store.Store) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
		store:           s,
	}
}

// AnalyzeEmotion 对请求体携带的情绪记录进行分析。
// 缺少必填字段返回400；分析本身不会失败，降级结果同样按成功返回。
// 记录已存在于存储中时，分析结果覆盖保存。
func (ac *AnalysisController) AnalyzeEmotion(c *gin.Context) {
	var req models.AnalyzeEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"message": err.Error(),
		})
		return
	}

	result := ac.analysisService.AnalyzeEmotion(c.Request.Context(), *req.EmotionRecord)

	// 只有引用已存在记录的分析才会落库，避免产生孤儿分析
	if req.EmotionRecord.ID != "" {
		if _, err := ac.store.GetRecord(req.EmotionRecord.ID); err == nil {
			if err := ac.store.SaveAnalysis(result.Analysis); err != nil {
				config.Logger.Errorw("保存分析结果失败", "error", err, "recordID", req.EmotionRecord.ID)
			}
		}
	}

	c.JSON(http.StatusOK, models.AnalyzeEmotionResponse{
		Success:  true,
		Analysis: result.Analysis,
		Source:   string(result.Source),
	})
}

// RegenerateAnalysis 对已保存的记录重新生成分析，新结果覆盖旧结果
func (ac *AnalysisController) RegenerateAnalysis(c *gin.Context) {
	record, err := ac.store.GetRecord(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		config.Logger.Errorw("读取情绪记录失败", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	result := ac.analysisService.AnalyzeEmotion(c.Request.Context(), record)

	if err := ac.store.SaveAnalysis(result.Analysis); err != nil {
		config.Logger.Errorw("保存分析结果失败", "error", err, "recordID", record.ID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "保存分析结果失败",
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeEmotionResponse{
		Success:  true,
		Analysis: result.Analysis,
		Source:   string(result.Source),
	})
}

// GetRecordAnalysis 查询某条记录当前的分析结果
func (ac *AnalysisController) GetRecordAnalysis(c *gin.Context) {
	analysis, err := ac.store.GetAnalysisByRecord(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		config.Logger.Errorw("读取分析结果失败", "error", err, "recordID", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// GetAnalysis 按分析自身ID查询。对应记录被删除后仍可查到。
func (ac *AnalysisController) GetAnalysis(c *gin.Context) {
	analysis, err := ac.store.GetAnalysis(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		config.Logger.Errorw("读取分析结果失败", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
