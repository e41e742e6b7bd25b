package controller

import (
	"errors"
	"net/http"

	"numinterp/internal/service"
	"numinterp/internal/service/ambiguity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type InterpretController struct {
	interpretService *service.InterpretService
	maxBatchSize     int
	logger           *zap.Logger
}

func NewInterpretController(interpretService *service.InterpretService, maxBatchSize int, logger *zap.Logger) *InterpretController {
	return &InterpretController{
		interpretService: interpretService,
		maxBatchSize:     maxBatchSize,
		logger:           logger,
	}
}

type InterpretRequest struct {
	Input     string `json:"input" binding:"required"`
	ValidOnly bool   `json:"valid_only"`
}

type InterpretBatchRequest struct {
	Inputs    []string `json:"inputs" binding:"required,min=1"`
	ValidOnly bool     `json:"valid_only"`
}

type InterpretResponse struct {
	RequestID string `json:"request_id"`
	Validator string `json:"validator"`
	*service.InterpretResult
}

type InterpretBatchResponse struct {
	RequestID string                     `json:"request_id"`
	Validator string                     `json:"validator"`
	Results   []*service.InterpretResult `json:"results"`
}

func (ic *InterpretController) Interpret(c *gin.Context) {
	var request InterpretRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ic.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString(RequestIDKey)
	ic.logger.Info("Interpreting input",
		zap.String("request_id", requestID),
		zap.String("input", request.Input))

	result, err := ic.interpretService.Interpret(c.Request.Context(), request.Input)
	if err != nil {
		ic.respondError(c, requestID, err)
		return
	}

	if request.ValidOnly {
		result.Interpretations = result.Valid()
	}

	ic.logger.Info("Successfully interpreted input",
		zap.String("request_id", requestID),
		zap.Int("interpretations", len(result.Interpretations)),
		zap.Int("valid", result.ValidCount))

	c.JSON(http.StatusOK, InterpretResponse{
		RequestID:       requestID,
		Validator:       ic.interpretService.ValidatorName(),
		InterpretResult: result,
	})
}

func (ic *InterpretController) InterpretBatch(c *gin.Context) {
	var request InterpretBatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ic.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString(RequestIDKey)
	if ic.maxBatchSize > 0 && len(request.Inputs) > ic.maxBatchSize {
		ic.logger.Warn("Batch too large",
			zap.String("request_id", requestID),
			zap.Int("inputs", len(request.Inputs)),
			zap.Int("max_batch_size", ic.maxBatchSize))
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"request_id": requestID,
			"error":      "Too many inputs in batch",
		})
		return
	}

	results, err := ic.interpretService.InterpretBatch(c.Request.Context(), request.Inputs)
	if err != nil {
		ic.respondError(c, requestID, err)
		return
	}

	if request.ValidOnly {
		for _, result := range results {
			result.Interpretations = result.Valid()
		}
	}

	c.JSON(http.StatusOK, InterpretBatchResponse{
		RequestID: requestID,
		Validator: ic.interpretService.ValidatorName(),
		Results:   results,
	})
}

func (ic *InterpretController) respondError(c *gin.Context, requestID string, err error) {
	status := http.StatusInternalServerError
	message := "Failed to interpret input"
	switch {
	case errors.Is(err, ambiguity.ErrInvalidInput):
		status = http.StatusBadRequest
		message = "Invalid input"
	case errors.Is(err, ambiguity.ErrInputTooLarge):
		status = http.StatusRequestEntityTooLarge
		message = "Input too large"
	}

	ic.logger.Error(message, zap.String("request_id", requestID), zap.Error(err))
	c.JSON(status, gin.H{
		"request_id": requestID,
		"error":      message,
		"details":    err.Error(),
	})
}
