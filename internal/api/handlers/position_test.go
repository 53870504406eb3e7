package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/mocks"
	"performance-portal-backend/internal/service"
	"performance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PositionHandlerTestSuite defines the test suite for PositionHandler
type PositionHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockPositionService *mocks.MockPositionServiceInterface
	handler             *PositionHandler
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PositionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPositionService = mocks.NewMockPositionServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewPositionHandler(suite.mockPositionService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	positions := v1.Group("/positions")
	{
		positions.POST("", suite.handler.Create)
		positions.GET("/:id", suite.handler.GetByID)
		positions.PATCH("/:id/title", suite.handler.UpdateTitle)
		positions.PATCH("/:id/parent", suite.handler.UpdateParent)
		positions.DELETE("/:id", suite.handler.Delete)
	}
}

// TearDownTest cleans up after each test
func (suite *PositionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePosition tests creating a head position
func (suite *PositionHandlerTestSuite) TestCreatePosition() {
	companyID := uuid.New()
	requestBody := map[string]interface{}{
		"company_id": companyID,
		"title":      "CEO",
	}

	expectedResponse := &service.PositionResponse{
		ID:        uuid.New(),
		CompanyID: companyID,
		Title:     "CEO",
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}

	suite.mockPositionService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/positions", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.PositionResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "CEO", response.Title)
	assert.Nil(suite.T(), response.ParentID)
}

// TestCreatePositionCompanyNotFound tests creating in an unknown company
func (suite *PositionHandlerTestSuite) TestCreatePositionCompanyNotFound() {
	requestBody := map[string]interface{}{
		"company_id": uuid.New(),
		"title":      "CEO",
	}

	suite.mockPositionService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrCompanyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/positions", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "company not found")
}

// TestCreatePositionParentCompanyMismatch tests a cross-company parent
func (suite *PositionHandlerTestSuite) TestCreatePositionParentCompanyMismatch() {
	requestBody := map[string]interface{}{
		"company_id": uuid.New(),
		"parent_id":  uuid.New(),
		"title":      "VP",
	}

	suite.mockPositionService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrParentCompanyMismatch).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/positions", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "different company")
}

// TestGetPosition tests getting a position by ID
func (suite *PositionHandlerTestSuite) TestGetPosition() {
	positionID := uuid.New()
	parentID := uuid.New()
	expectedResponse := &service.PositionResponse{
		ID:        positionID,
		CompanyID: uuid.New(),
		ParentID:  &parentID,
		Title:     "VP Engineering",
	}

	suite.mockPositionService.EXPECT().
		GetByID(positionID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/positions/%s", positionID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PositionResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), positionID, response.ID)
	assert.Equal(suite.T(), parentID, *response.ParentID)
}

// TestGetPositionNotFound tests getting a non-existent position
func (suite *PositionHandlerTestSuite) TestGetPositionNotFound() {
	positionID := uuid.New()

	suite.mockPositionService.EXPECT().
		GetByID(positionID).
		Return(nil, apperrors.ErrPositionNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/positions/%s", positionID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetPositionInvalidID tests a malformed position id
func (suite *PositionHandlerTestSuite) TestGetPositionInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/positions/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid position ID")
}

// TestUpdateTitle tests renaming a position
func (suite *PositionHandlerTestSuite) TestUpdateTitle() {
	positionID := uuid.New()
	requestBody := map[string]interface{}{
		"title": "Director of Engineering",
	}

	expectedResponse := &service.PositionResponse{
		ID:    positionID,
		Title: "Director of Engineering",
	}

	suite.mockPositionService.EXPECT().
		UpdateTitle(gomock.Any(), positionID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/positions/%s/title", positionID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PositionResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Director of Engineering", response.Title)
}

// TestUpdateParent tests moving a position
func (suite *PositionHandlerTestSuite) TestUpdateParent() {
	positionID := uuid.New()
	newParentID := uuid.New()
	requestBody := map[string]interface{}{
		"new_parent_id": newParentID,
		"mode":          "with-subordinates",
	}

	expectedResponse := &service.PositionResponse{
		ID:       positionID,
		ParentID: &newParentID,
		Title:    "VP",
	}

	suite.mockPositionService.EXPECT().
		UpdateParent(gomock.Any(), positionID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/positions/%s/parent", positionID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PositionResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), newParentID, *response.ParentID)
}

// TestUpdateParentCycle tests the cycle rejection
func (suite *PositionHandlerTestSuite) TestUpdateParentCycle() {
	positionID := uuid.New()
	requestBody := map[string]interface{}{
		"new_parent_id": uuid.New(),
		"mode":          "with-subordinates",
	}

	suite.mockPositionService.EXPECT().
		UpdateParent(gomock.Any(), positionID, gomock.Any()).
		Return(nil, apperrors.ErrCyclicParent).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/positions/%s/parent", positionID), requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "ancestor")
}

// TestUpdateParentBadMode tests an unknown reparent mode
func (suite *PositionHandlerTestSuite) TestUpdateParentBadMode() {
	positionID := uuid.New()
	requestBody := map[string]interface{}{
		"new_parent_id": uuid.New(),
		"mode":          "sideways",
	}

	suite.mockPositionService.EXPECT().
		UpdateParent(gomock.Any(), positionID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidReparentMode).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/positions/%s/parent", positionID), requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestDeletePosition tests soft-deleting a position
func (suite *PositionHandlerTestSuite) TestDeletePosition() {
	positionID := uuid.New()

	suite.mockPositionService.EXPECT().
		Delete(gomock.Any(), positionID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/positions/%s", positionID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

// TestDeletePositionNotFound tests deleting a non-existent position
func (suite *PositionHandlerTestSuite) TestDeletePositionNotFound() {
	positionID := uuid.New()

	suite.mockPositionService.EXPECT().
		Delete(gomock.Any(), positionID).
		Return(apperrors.ErrPositionNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/positions/%s", positionID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestPositionHandlerTestSuite runs the test suite
func TestPositionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PositionHandlerTestSuite))
}
