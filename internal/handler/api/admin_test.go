//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shuttlebook/internal/domain/coach"
	"shuttlebook/internal/domain/court"
	"shuttlebook/internal/domain/equipment"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/handler/api"
	resdto "shuttlebook/internal/handler/dto/response"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/tests/common/httptest"
	"shuttlebook/tests/common/testutil"
	commandsmock "shuttlebook/tests/mock/commands"
	queriesmock "shuttlebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAdmin   *commandsmock.MockAdminCommands
	mockCatalog *queriesmock.MockCatalogQueries
	handler     *api.AdminHandler
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockAdmin, s.mockCatalog)

	s.router.GET("/admin/courts", s.handler.ListCourts)
	s.router.POST("/admin/courts", s.handler.CreateCourt)
	s.router.PATCH("/admin/courts/:id", s.handler.UpdateCourt)
	s.router.POST("/admin/equipment", s.handler.CreateEquipment)
	s.router.PATCH("/admin/equipment/:id", s.handler.UpdateEquipment)
	s.router.POST("/admin/coaches", s.handler.CreateCoach)
	s.router.PATCH("/admin/coaches/:id", s.handler.UpdateCoach)
	s.router.GET("/admin/pricing-rules", s.handler.ListPricingRules)
	s.router.POST("/admin/pricing-rules", s.handler.CreatePricingRule)
	s.router.PATCH("/admin/pricing-rules/:id", s.handler.UpdatePricingRule)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AdminHandlerTestSuite) courtEntity() *court.Court {
	entity, err := court.NewCourt("Court 1", court.TypeIndoor, 20, true, time.Now())
	s.Require().NoError(err)
	return entity
}

func (s *AdminHandlerTestSuite) TestCreateCourt() {
	url := "/admin/courts"
	body := map[string]any{"name": "Court 1", "type": "indoor", "baseRate": 20.0}

	s.Run("success: returns 201 with the created court", func() {
		entity := s.courtEntity()
		s.mockAdmin.EXPECT().CreateCourt(gomock.Any(), gomock.Any()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "admin-token")

		var response resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(entity.ID(), response.ID)
		s.Equal("indoor", response.Type)
		s.True(response.IsActive)
	})

	s.Run("error: rejects malformed payloads", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{"missing name", testutil.DtoMap(s.T(), body, testutil.Field("name", nil))},
			{"unknown type", testutil.DtoMap(s.T(), body, testutil.Field("type", "rooftop"))},
			{"negative rate", testutil.DtoMap(s.T(), body, testutil.Field("baseRate", -1.0))},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "admin-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 when the domain rejects the court", func() {
		s.mockAdmin.EXPECT().CreateCourt(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateCourt() {
	courtID := uuid.New()
	url := "/admin/courts/" + courtID.String()

	s.Run("success: partial update returns the edited court", func() {
		entity := s.courtEntity()
		s.mockAdmin.EXPECT().UpdateCourt(gomock.Any(), courtID, gomock.Any()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"isActive": false}, "admin-token")

		var response resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(entity.ID(), response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/courts/not-a-uuid", map[string]any{}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 for an unknown court", func() {
		s.mockAdmin.EXPECT().UpdateCourt(gomock.Any(), courtID, gomock.Any()).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"baseRate": 25.0}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}

func (s *AdminHandlerTestSuite) TestListCourts() {
	s.Run("success: returns the catalog view", func() {
		s.mockCatalog.EXPECT().ListCourts(gomock.Any()).
			Return([]queries.CourtView{{ID: uuid.New(), Name: "Court 1"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/courts", nil, "admin-token")

		var response []queries.CourtView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockCatalog.EXPECT().ListCourts(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/courts", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestCreateEquipment() {
	entity, err := equipment.NewEquipment("Racket", 5, 3, true, time.Now())
	s.Require().NoError(err)

	s.mockAdmin.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
		Return(entity, nil).Times(1)

	body := map[string]any{"name": "Racket", "quantity": 5, "feePerHour": 3.0}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/equipment", body, "admin-token")

	var response resdto.EquipmentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	s.Equal(5, response.Quantity)
}

func (s *AdminHandlerTestSuite) TestUpdateEquipment() {
	equipmentID := uuid.New()
	entity, err := equipment.NewEquipment("Racket", 8, 3, true, time.Now())
	s.Require().NoError(err)

	s.mockAdmin.EXPECT().UpdateEquipment(gomock.Any(), equipmentID, gomock.Any()).
		Return(entity, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/equipment/"+equipmentID.String(), map[string]any{"quantity": 8}, "admin-token")

	var response resdto.EquipmentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(8, response.Quantity)
}

func (s *AdminHandlerTestSuite) TestCreateCoach() {
	windows := []coach.Window{{DayOfWeek: 6, StartHour: 9, EndHour: 21}}
	entity, err := coach.NewCoach("Lin Wei", "Former national player", 30, true, windows, time.Now())
	s.Require().NoError(err)

	s.mockAdmin.EXPECT().CreateCoach(gomock.Any(), gomock.Any()).
		Return(entity, nil).Times(1)

	body := map[string]any{
		"name":         "Lin Wei",
		"bio":          "Former national player",
		"ratePerHour":  30.0,
		"availability": []map[string]any{{"dayOfWeek": 6, "startHour": 9, "endHour": 21}},
	}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coaches", body, "admin-token")

	var response resdto.CoachResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	s.Require().Len(response.Availability, 1)
	s.Equal(9, response.Availability[0].StartHour)
}

func (s *AdminHandlerTestSuite) TestUpdateCoach() {
	coachID := uuid.New()
	windows := []coach.Window{{DayOfWeek: 0, StartHour: 10, EndHour: 14}}
	entity, err := coach.NewCoach("Lin Wei", "", 35, true, windows, time.Now())
	s.Require().NoError(err)

	s.mockAdmin.EXPECT().UpdateCoach(gomock.Any(), coachID, gomock.Any()).
		Return(entity, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/coaches/"+coachID.String(), map[string]any{"ratePerHour": 35.0}, "admin-token")

	var response resdto.CoachResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(35.0, response.RatePerHour)
}

func (s *AdminHandlerTestSuite) rule() *pricing.Rule {
	now := time.Now()
	return &pricing.Rule{
		ID:         uuid.New(),
		Name:       "Peak hours",
		IsActive:   true,
		Criteria:   pricing.Criteria{AppliesTo: pricing.ScopeCourt},
		Adjustment: pricing.Adjustment{Type: pricing.AdjustmentMultiplier, Value: 1.2},
		Priority:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *AdminHandlerTestSuite) TestCreatePricingRule() {
	url := "/admin/pricing-rules"
	body := map[string]any{
		"name":            "Peak hours",
		"appliesTo":       "court",
		"adjustmentType":  "multiplier",
		"adjustmentValue": 1.2,
		"priority":        1,
	}

	s.Run("success: returns 201 with the created rule", func() {
		s.mockAdmin.EXPECT().CreatePricingRule(gomock.Any(), gomock.Any()).
			Return(s.rule(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "admin-token")

		var response resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("multiplier", response.AdjustmentType)
		s.Equal(1.2, response.AdjustmentValue)
	})

	s.Run("error: rejects an unknown scope", func() {
		badBody := testutil.DtoMap(s.T(), body, testutil.Field("appliesTo", "lighting"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestUpdatePricingRule() {
	ruleID := uuid.New()

	s.mockAdmin.EXPECT().UpdatePricingRule(gomock.Any(), ruleID, gomock.Any()).
		Return(s.rule(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/pricing-rules/"+ruleID.String(), map[string]any{"priority": 2}, "admin-token")

	var response resdto.PricingRuleResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("Peak hours", response.Name)
}

func (s *AdminHandlerTestSuite) TestListPricingRules() {
	s.mockCatalog.EXPECT().ListPricingRules(gomock.Any()).
		Return([]queries.PricingRuleView{{ID: uuid.New(), Name: "Peak hours"}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/pricing-rules", nil, "admin-token")

	var response []queries.PricingRuleView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 1)
}
