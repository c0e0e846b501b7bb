package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/application"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/response"
)

// VoucherHandler handles HTTP requests for voucher operations.
type VoucherHandler struct {
	service *application.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(service *application.VoucherService) *VoucherHandler {
	return &VoucherHandler{service: service}
}

// RegisterRoutes registers all voucher routes.
func (h *VoucherHandler) RegisterRoutes(r *gin.RouterGroup) {
	vouchers := r.Group("/vouchers")
	{
		vouchers.POST("", h.CreateVoucher)
		vouchers.POST("/apply", h.ApplyVoucher)
	}
}

// CreateVoucher handles POST /api/v1/vouchers.
func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	var req application.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateVoucher(c.Request.Context(), req.Code, req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ApplyVoucher handles POST /api/v1/vouchers/apply.
func (h *VoucherHandler) ApplyVoucher(c *gin.Context) {
	var req application.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ApplyVoucher(c.Request.Context(), req.Code, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
