package handlers

import (
	"net/http"

	"roomly_backend/internal/services"
	"roomly_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	*BaseHandler
	roomService services.RoomService
}

func NewRoomHandler(base *BaseHandler, roomService services.RoomService) *RoomHandler {
	return &RoomHandler{
		BaseHandler: base,
		roomService: roomService,
	}
}

// RegisterRoutes mounts the room and application endpoints. Browsing and
// the detail view are public.
func (h *RoomHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.List)
		rooms.POST("", authRequired, h.Create)
		rooms.GET("/:id", h.GetByID)
		rooms.POST("/:id/apply", authRequired, h.Apply)
		rooms.GET("/:id/applications", authRequired, h.ListApplications)
		rooms.PUT("/applications/:applicationId", authRequired, h.ReviewApplication)
	}
}

func (h *RoomHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.roomService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room created successfully",
		"room_id": id,
	})
}

func (h *RoomHandler) List(c *gin.Context) {
	var query dto.RoomListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	rooms, err := h.roomService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms": rooms,
	})
}

func (h *RoomHandler) GetByID(c *gin.Context) {
	room, err := h.roomService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.roomService.Apply(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Application submitted successfully",
		"application_id": id,
	})
}

func (h *RoomHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.roomService.ListApplications(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
	})
}

func (h *RoomHandler) ReviewApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.roomService.ReviewApplication(c.Param("applicationId"), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application " + req.Status,
	})
}
