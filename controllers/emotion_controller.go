package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
	"github.com/SSY1203/emotion-wise/store"
	"github.com/SSY1203/emotion-wise/utils"
)

// EmotionController 情绪记录的增删查
type EmotionController struct {
	store *store.Store
}

// NewEmotionController 创建情绪记录控制器
func NewEmotionController(s *store.Store) *EmotionController {
	return &EmotionController{store: s}
}

// CreateRecord 创建情绪记录
func (ec *EmotionController) CreateRecord(c *gin.Context) {
	var req models.CreateEmotionRecordRequest
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

	record := req.ToRecord()
	record.ID = utils.GenerateID()
	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ec.store.AppendRecord(record); err != nil {
		config.Logger.Errorw("保存情绪记录失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "保存情绪记录失败",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"record":  record,
	})
}

// ListRecords 返回全部情绪记录，最新的在前
func (ec *EmotionController) ListRecords(c *gin.Context) {
	records, err := ec.store.ListRecords()
	if err != nil {
		config.Logger.Errorw("读取情绪记录失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "读取情绪记录失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GetRecord 按ID查询情绪记录
func (ec *EmotionController) GetRecord(c *gin.Context) {
	record, err := ec.store.GetRecord(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		config.Logger.Errorw("读取情绪记录失败", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// DeleteRecord 删除情绪记录。已有的分析结果不级联删除。
func (ec *EmotionController) DeleteRecord(c *gin.Context) {
	if err := ec.store.DeleteRecord(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		config.Logger.Errorw("删除情绪记录失败", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
