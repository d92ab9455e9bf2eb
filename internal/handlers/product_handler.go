package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucinventory "github.com/BruksfildServices01/salon-scheduler/internal/usecase/inventory"
)

type ProductUseCases struct {
	Create      *ucinventory.CreateProduct
	Get         *ucinventory.GetProduct
	List        *ucinventory.ListProducts
	LowStock    *ucinventory.ListLowStock
	Adjust      *ucinventory.AdjustStock
	History     *ucinventory.ProductHistory
	UploadImage *ucinventory.UploadProductImage
}

type ProductHandler struct {
	uc  ProductUseCases
	log *zap.Logger
}

func NewProductHandler(uc ProductUseCases, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// --------- Requests ---------

type CreateProductRequest struct {
	SKU         string `json:"sku"`
	Barcode     string `json:"barcode"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Price decimal.Decimal     `json:"price"`
	Cost  decimal.NullDecimal `json:"cost"`

	LowStockThreshold *int `json:"low_stock_threshold" binding:"omitempty,min=0"`
	ReorderPoint      *int `json:"reorder_point" binding:"omitempty,min=0"`
	ReorderQuantity   *int `json:"reorder_quantity" binding:"omitempty,min=0"`

	IsSellable bool `json:"is_sellable"`
	IsRetail   bool `json:"is_retail"`
}

type AdjustStockRequest struct {
	Delta int    `json:"delta"`
	Type  string `json:"transaction_type" binding:"required"`

	CostPerUnit   decimal.NullDecimal `json:"cost_per_unit"`
	ReferenceType string              `json:"reference_type"`
	ReferenceID   *uuid.UUID          `json:"reference_id"`
	Notes         string              `json:"notes"`
}

// --------- Handlers ---------

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}

	p, err := h.uc.Create.Execute(c.Request.Context(), ucinventory.CreateProductInput{
		SalonID:           middleware.SalonID(c),
		SKU:               strings.TrimSpace(req.SKU),
		Barcode:           strings.TrimSpace(req.Barcode),
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		Category:          strings.ToLower(strings.TrimSpace(req.Category)),
		Price:             req.Price,
		Cost:              req.Cost,
		LowStockThreshold: req.LowStockThreshold,
		ReorderPoint:      req.ReorderPoint,
		ReorderQuantity:   req.ReorderQuantity,
		IsSellable:        req.IsSellable,
		IsRetail:          req.IsRetail,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(201, p)
}

// List returns active products unless ?all=true.
func (h *ProductHandler) List(c *gin.Context) {
	activeOnly := strings.TrimSpace(c.Query("all")) != "true"

	list, err := h.uc.List.Execute(c.Request.Context(), middleware.SalonID(c), activeOnly)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.uc.Get.Execute(c.Request.Context(), middleware.SalonID(c), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}

// LowStock accepts ?threshold= to override each product's own threshold.
func (h *ProductHandler) LowStock(c *gin.Context) {
	var override *int
	if c.Query("threshold") != "" {
		n := queryInt(c, "threshold", -1)
		if n < 0 {
			httperr.BadRequest(c, "invalid_threshold", "Invalid threshold.")
			return
		}
		override = &n
	}

	list, err := h.uc.LowStock.Execute(c.Request.Context(), middleware.SalonID(c), override)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	txnType, err := domain.ParseTxnType(strings.ToLower(strings.TrimSpace(req.Type)))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	res, err := h.uc.Adjust.Execute(c.Request.Context(), ucinventory.AdjustStockInput{
		SalonID:       middleware.SalonID(c),
		ProductID:     id,
		Delta:         req.Delta,
		Type:          txnType,
		CostPerUnit:   req.CostPerUnit,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
		PerformedBy:   middleware.UserID(c),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ProductHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.uc.History.Execute(c.Request.Context(), middleware.SalonID(c), id, queryInt(c, "limit", 0))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

// UploadImage takes a multipart "image" field and stores it as webp.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Multipart field image is required.")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the upload limit.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "image_unreadable", "Could not read the upload.")
		return
	}
	defer f.Close()

	p, err := h.uc.UploadImage.Execute(c.Request.Context(), middleware.SalonID(c), id, f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}
