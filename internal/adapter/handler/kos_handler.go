package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
)

type KosHandler struct {
	svc *services.KosService
}

func NewKosHandler(svc *services.KosService) *KosHandler {
	return &KosHandler{svc: svc}
}

func (h *KosHandler) GetAllKos(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context(), c.Query("gender"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, list, "Kos list retrieved successfully")
}

func (h *KosHandler) GetKosByID(c *gin.Context) {
	kos, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, kos, "Kos retrieved successfully")
}

func (h *KosHandler) GetOwnerKos(c *gin.Context) {
	list, err := h.svc.GetByOwner(c.Request.Context(), requestContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, list, "Owner kos retrieved successfully")
}

func (h *KosHandler) CreateKos(c *gin.Context) {
	var req services.CreateKosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	kos, err := h.svc.Create(c.Request.Context(), requestContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, kos, "Kos created successfully")
}

func (h *KosHandler) UpdateKos(c *gin.Context) {
	var req services.UpdateKosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	kos, err := h.svc.Update(c.Request.Context(), requestContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, kos, "Kos updated successfully")
}

func (h *KosHandler) DeleteKos(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), requestContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "Kos deleted successfully")
}

type addImageRequest struct {
	File string `json:"file" binding:"required"`
}

func (h *KosHandler) AddKosImage(c *gin.Context) {
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	image, err := h.svc.AddImage(c.Request.Context(), requestContext(c), c.Param("id"), req.File)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, image, "Kos image added successfully")
}

func (h *KosHandler) DeleteKosImage(c *gin.Context) {
	if err := h.svc.DeleteImage(c.Request.Context(), requestContext(c), c.Param("id"), c.Param("imageId")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "Kos image deleted successfully")
}

func (h *KosHandler) GetKosFacilities(c *gin.Context) {
	facilities, err := h.svc.GetFacilities(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, facilities, "Kos facilities retrieved successfully")
}

type facilityRequest struct {
	Facility string `json:"facility" binding:"required"`
}

func (h *KosHandler) AddKosFacility(c *gin.Context) {
	var req facilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	facility, err := h.svc.AddFacility(c.Request.Context(), requestContext(c), c.Param("id"), req.Facility)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, facility, "Kos facility added successfully")
}

func (h *KosHandler) UpdateKosFacility(c *gin.Context) {
	var req facilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	facility, err := h.svc.UpdateFacility(c.Request.Context(), requestContext(c), c.Param("id"), c.Param("facilityId"), req.Facility)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, facility, "Kos facility updated successfully")
}

func (h *KosHandler) DeleteKosFacility(c *gin.Context) {
	if err := h.svc.DeleteFacility(c.Request.Context(), requestContext(c), c.Param("id"), c.Param("facilityId")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "Kos facility deleted successfully")
}
