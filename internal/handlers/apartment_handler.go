package handlers

import (
	"net/http"

	"roomly_backend/internal/services"
	"roomly_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApartmentHandler struct {
	*BaseHandler
	apartmentService services.ApartmentService
}

func NewApartmentHandler(base *BaseHandler, apartmentService services.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{
		BaseHandler:      base,
		apartmentService: apartmentService,
	}
}

// RegisterRoutes mounts the apartment endpoints. Browsing and the detail
// view are public, everything else requires authentication. The fixed
// routes are registered before the :id routes so gin does not shadow them.
func (h *ApartmentHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	apartments := rg.Group("/apartments")
	{
		apartments.GET("", h.List)
		apartments.POST("/compare", h.Compare)
		apartments.POST("/comparisons", authRequired, h.SaveComparison)
		apartments.GET("/comparisons", authRequired, h.ListComparisons)
		apartments.POST("", authRequired, h.Create)
		apartments.GET("/:id", h.GetByID)
		apartments.PUT("/:id", authRequired, h.Update)
	}
}

func (h *ApartmentHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApartmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.apartmentService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Apartment created successfully",
		"apartment_id": id,
	})
}

func (h *ApartmentHandler) List(c *gin.Context) {
	var query dto.ApartmentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	apartments, err := h.apartmentService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"apartments": apartments,
	})
}

func (h *ApartmentHandler) GetByID(c *gin.Context) {
	apartment, err := h.apartmentService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apartment)
}

func (h *ApartmentHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApartmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.apartmentService.Update(c.Param("id"), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Apartment updated successfully",
	})
}

func (h *ApartmentHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.apartmentService.Compare(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ApartmentHandler) SaveComparison(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateComparisonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.apartmentService.SaveComparison(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Comparison saved successfully",
		"comparison_id": id,
	})
}

func (h *ApartmentHandler) ListComparisons(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	comparisons, err := h.apartmentService.ListComparisons(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comparisons": comparisons,
	})
}
