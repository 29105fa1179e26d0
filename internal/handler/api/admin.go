package api

import (
	"errors"
	"net/http"

	reqdto "shuttlebook/internal/handler/dto/request"
	resdto "shuttlebook/internal/handler/dto/response"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands  commands.AdminCommands
	catalogQueries queries.CatalogQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, catalogQueries queries.CatalogQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands:  adminCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary Create court
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/courts [post]
func (h *AdminHandler) CreateCourt(c *gin.Context) {
	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.adminCommands.CreateCourt(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCourt(created))
}

// @Summary Update court
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.UpdateCourtRequest true "Partial court update"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/courts/{id} [patch]
func (h *AdminHandler) UpdateCourt(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.adminCommands.UpdateCourt(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourt(updated))
}

// @Summary List courts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CourtView
// @Router /admin/courts [get]
func (h *AdminHandler) ListCourts(c *gin.Context) {
	views, err := h.catalogQueries.ListCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create equipment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Router /admin/equipment [post]
func (h *AdminHandler) CreateEquipment(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.adminCommands.CreateEquipment(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEquipment(created))
}

// @Summary Update equipment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Partial equipment update"
// @Success 200 {object} resdto.EquipmentResponse
// @Router /admin/equipment/{id} [patch]
func (h *AdminHandler) UpdateEquipment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.adminCommands.UpdateEquipment(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipment(updated))
}

// @Summary List equipment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.EquipmentView
// @Router /admin/equipment [get]
func (h *AdminHandler) ListEquipment(c *gin.Context) {
	views, err := h.catalogQueries.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create coach
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCoachRequest true "Coach"
// @Success 201 {object} resdto.CoachResponse
// @Router /admin/coaches [post]
func (h *AdminHandler) CreateCoach(c *gin.Context) {
	var req reqdto.CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.adminCommands.CreateCoach(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoach(created))
}

// @Summary Update coach
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param request body reqdto.UpdateCoachRequest true "Partial coach update"
// @Success 200 {object} resdto.CoachResponse
// @Router /admin/coaches/{id} [patch]
func (h *AdminHandler) UpdateCoach(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.adminCommands.UpdateCoach(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoach(updated))
}

// @Summary List coaches
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CoachView
// @Router /admin/coaches [get]
func (h *AdminHandler) ListCoaches(c *gin.Context) {
	views, err := h.catalogQueries.ListCoaches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create pricing rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePricingRuleRequest true "Pricing rule"
// @Success 201 {object} resdto.PricingRuleResponse
// @Router /admin/pricing-rules [post]
func (h *AdminHandler) CreatePricingRule(c *gin.Context) {
	var req reqdto.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.adminCommands.CreatePricingRule(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPricingRule(created))
}

// @Summary Update pricing rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pricing rule ID"
// @Param request body reqdto.UpdatePricingRuleRequest true "Partial rule update"
// @Success 200 {object} resdto.PricingRuleResponse
// @Router /admin/pricing-rules/{id} [patch]
func (h *AdminHandler) UpdatePricingRule(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.adminCommands.UpdatePricingRule(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRule(updated))
}

// @Summary List pricing rules
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PricingRuleView
// @Router /admin/pricing-rules [get]
func (h *AdminHandler) ListPricingRules(c *gin.Context) {
	views, err := h.catalogQueries.ListPricingRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AdminHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
