package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/hierarchy"
	"performance-portal-backend/internal/mocks"
	"performance-portal-backend/internal/service"
)

// OrgTreeServiceTestSuite defines the test suite for OrgTreeService
type OrgTreeServiceTestSuite struct {
	suite.Suite
	ctrl                   *gomock.Controller
	mockPositionRepo       *mocks.MockPositionRepositoryInterface
	mockPositionAssignRepo *mocks.MockPositionAssignmentRepositoryInterface
	mockEmployeeRepo       *mocks.MockEmployeeRepositoryInterface
	mockScoreRepo          *mocks.MockScoreRepositoryInterface
	orgTreeService         *service.OrgTreeService
}

// SetupTest sets up the test suite
func (suite *OrgTreeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPositionRepo = mocks.NewMockPositionRepositoryInterface(suite.ctrl)
	suite.mockPositionAssignRepo = mocks.NewMockPositionAssignmentRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockScoreRepo = mocks.NewMockScoreRepositoryInterface(suite.ctrl)

	suite.orgTreeService = service.NewOrgTreeService(
		suite.mockPositionRepo,
		suite.mockPositionAssignRepo,
		suite.mockEmployeeRepo,
		suite.mockScoreRepo,
		nil,
	)
}

// TearDownTest cleans up after each test
func (suite *OrgTreeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// orgFixture describes a three-level company tree with a manager at the top
// of the requested branch: ceo -> vp -> (eng1, eng2). The manager holds vp.
type orgFixture struct {
	companyID uuid.UUID
	managerID uuid.UUID
	ceo       models.Position
	vp        models.Position
	eng1      models.Position
	eng2      models.Position
	all       []models.Position
}

func newOrgFixture() *orgFixture {
	f := &orgFixture{
		companyID: uuid.New(),
		managerID: uuid.New(),
	}
	f.ceo = models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, CompanyID: f.companyID, Title: "CEO"}
	f.vp = models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, CompanyID: f.companyID, ParentID: &f.ceo.ID, Title: "VP"}
	f.eng1 = models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, CompanyID: f.companyID, ParentID: &f.vp.ID, Title: "Engineer 1"}
	f.eng2 = models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, CompanyID: f.companyID, ParentID: &f.vp.ID, Title: "Engineer 2"}
	f.all = []models.Position{f.ceo, f.vp, f.eng1, f.eng2}
	return f
}

// expectManagerResolution wires the mocks for resolving the manager's
// current position and the company position set
func (suite *OrgTreeServiceTestSuite) expectManagerResolution(f *orgFixture) {
	suite.mockEmployeeRepo.EXPECT().
		GetByID(f.managerID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: f.managerID}, CompanyID: f.companyID, FullName: "Morgan Manager"}, nil).
		Times(1)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByEmployee(f.managerID).
		Return(&models.PositionAssignment{PositionID: f.vp.ID, EmployeeID: f.managerID}, nil).
		Times(1)
	suite.mockPositionRepo.EXPECT().
		GetByID(f.vp.ID).
		Return(&f.vp, nil).
		Times(1)
	suite.mockPositionRepo.EXPECT().
		GetByCompanyID(f.companyID).
		Return(f.all, nil).
		Times(1)
}

// TestSubordinates tests the structural subtree read
func (suite *OrgTreeServiceTestSuite) TestSubordinates() {
	f := newOrgFixture()

	suite.mockPositionRepo.EXPECT().
		GetByID(f.ceo.ID).
		Return(&f.ceo, nil).
		Times(1)
	suite.mockPositionRepo.EXPECT().
		GetByCompanyID(f.companyID).
		Return(f.all, nil).
		Times(1)

	nodes, err := suite.orgTreeService.Subordinates(f.ceo.ID, false)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), nodes, 3)
}

// TestSubordinatesIncludingDeleted tests the soft-delete escape hatch
func (suite *OrgTreeServiceTestSuite) TestSubordinatesIncludingDeleted() {
	f := newOrgFixture()

	suite.mockPositionRepo.EXPECT().
		GetByID(f.ceo.ID).
		Return(&f.ceo, nil).
		Times(1)
	suite.mockPositionRepo.EXPECT().
		GetByCompanyIDIncludingDeleted(f.companyID).
		Return(f.all, nil).
		Times(1)

	nodes, err := suite.orgTreeService.Subordinates(f.ceo.ID, true)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), nodes, 3)
}

// TestSubordinatesPositionNotFound tests an unknown root
func (suite *OrgTreeServiceTestSuite) TestSubordinatesPositionNotFound() {
	suite.mockPositionRepo.EXPECT().
		GetByID(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	nodes, err := suite.orgTreeService.Subordinates(uuid.New(), false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPositionNotFound)
	assert.Nil(suite.T(), nodes)
}

// TestCurrentOccupantsUnder tests the flat occupancy overlay, including the
// vacant-intermediate case: eng1 stays at its structural level even though
// nothing else in the branch is staffed
func (suite *OrgTreeServiceTestSuite) TestCurrentOccupantsUnder() {
	f := newOrgFixture()
	worker := uuid.New()

	suite.expectManagerResolution(f)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByPositionIDs(gomock.Any()).
		Return([]models.PositionAssignment{
			{
				PositionID: f.eng1.ID,
				EmployeeID: worker,
				Employee:   &models.Employee{BaseModel: models.BaseModel{ID: worker}, FullName: "Wendy Worker"},
			},
		}, nil).
		Times(1)

	occupants, err := suite.orgTreeService.CurrentOccupantsUnder(f.managerID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), occupants, 1)
	assert.Equal(suite.T(), f.eng1.ID, occupants[0].PositionID)
	assert.Equal(suite.T(), "Wendy Worker", occupants[0].FullName)
	assert.Equal(suite.T(), 1, occupants[0].Level)
}

// TestCurrentOccupantsUnderNoCurrentPosition tests a manager with no open
// assignment: the employee exists, so the failure is a state conflict
func (suite *OrgTreeServiceTestSuite) TestCurrentOccupantsUnderNoCurrentPosition() {
	managerID := uuid.New()

	suite.mockEmployeeRepo.EXPECT().
		GetByID(managerID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: managerID}}, nil).
		Times(1)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByEmployee(managerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	occupants, err := suite.orgTreeService.CurrentOccupantsUnder(managerID)

	assert.True(suite.T(), apperrors.IsNoCurrentPosition(err))
	assert.False(suite.T(), apperrors.IsNotFound(err))
	assert.Nil(suite.T(), occupants)
}

// TestCurrentOccupantsUnderEmployeeNotFound tests an unknown manager
func (suite *OrgTreeServiceTestSuite) TestCurrentOccupantsUnderEmployeeNotFound() {
	suite.mockEmployeeRepo.EXPECT().
		GetByID(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	occupants, err := suite.orgTreeService.CurrentOccupantsUnder(uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
	assert.Nil(suite.T(), occupants)
}

// TestOrgTreeWithoutScores tests the anonymous tree: occupancy overlay, no
// score enrichment, vacant nodes rendered without occupants
func (suite *OrgTreeServiceTestSuite) TestOrgTreeWithoutScores() {
	f := newOrgFixture()
	worker := uuid.New()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	suite.expectManagerResolution(f)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByPositionIDs(gomock.Any()).
		Return([]models.PositionAssignment{
			{
				PositionID: f.eng1.ID,
				EmployeeID: worker,
				Employee:   &models.Employee{BaseModel: models.BaseModel{ID: worker}, FullName: "Wendy Worker"},
			},
		}, nil).
		Times(1)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByPosition(f.vp.ID).
		Return(&models.PositionAssignment{
			PositionID: f.vp.ID,
			EmployeeID: f.managerID,
			Employee:   &models.Employee{BaseModel: models.BaseModel{ID: f.managerID}, FullName: "Morgan Manager"},
		}, nil).
		Times(1)

	tree, err := suite.orgTreeService.OrgTree(context.Background(), f.managerID, from, to, false)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), tree)
	assert.Equal(suite.T(), f.vp.ID, tree.PositionID)
	require.NotNil(suite.T(), tree.Occupant)
	assert.Equal(suite.T(), "Morgan Manager", tree.Occupant.FullName)
	assert.Nil(suite.T(), tree.Occupant.Score)

	require.Len(suite.T(), tree.Children, 2)
	var staffed, vacant int
	for _, child := range tree.Children {
		if child.Occupant != nil {
			staffed++
			assert.Nil(suite.T(), child.Occupant.Score)
		} else {
			vacant++
		}
	}
	assert.Equal(suite.T(), 1, staffed)
	assert.Equal(suite.T(), 1, vacant)
}

// TestOrgTreeWithScores tests score enrichment: scored occupants carry a
// summary, unscored occupants stay occupant-without-score
func (suite *OrgTreeServiceTestSuite) TestOrgTreeWithScores() {
	f := newOrgFixture()
	worker := uuid.New()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	ratedAt := time.Date(2026, 7, 20, 9, 30, 0, 0, time.UTC)

	suite.expectManagerResolution(f)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByPositionIDs(gomock.Any()).
		Return([]models.PositionAssignment{
			{
				PositionID: f.eng1.ID,
				EmployeeID: worker,
				Employee:   &models.Employee{BaseModel: models.BaseModel{ID: worker}, FullName: "Wendy Worker"},
			},
		}, nil).
		Times(1)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByPosition(f.vp.ID).
		Return(&models.PositionAssignment{
			PositionID: f.vp.ID,
			EmployeeID: f.managerID,
			Employee:   &models.Employee{BaseModel: models.BaseModel{ID: f.managerID}, FullName: "Morgan Manager"},
		}, nil).
		Times(1)
	// only the worker has an in-window score; the manager stays unscored
	suite.mockScoreRepo.EXPECT().
		LatestForEmployees(gomock.Any(), from, to).
		Return([]models.Score{
			{
				BaseModel:  models.BaseModel{ID: uuid.New(), CreatedAt: ratedAt},
				EmployeeID: worker,
				Efficiency: 5,
				Engagement: 4,
				Competency: 3,
			},
		}, nil).
		Times(1)

	tree, err := suite.orgTreeService.OrgTree(context.Background(), f.managerID, from, to, true)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), tree)
	require.NotNil(suite.T(), tree.Occupant)
	assert.Nil(suite.T(), tree.Occupant.Score)

	var scored *hierarchy.TreeNode
	for _, child := range tree.Children {
		if child.PositionID == f.eng1.ID {
			scored = child
		}
	}
	require.NotNil(suite.T(), scored)
	require.NotNil(suite.T(), scored.Occupant)
	require.NotNil(suite.T(), scored.Occupant.Score)
	assert.Equal(suite.T(), 5, scored.Occupant.Score.Efficiency)
	assert.Equal(suite.T(), ratedAt, scored.Occupant.Score.RatedAt)
}

// TestOrgTreeInvertedWindow tests rejecting from > to on score-enriched reads
func (suite *OrgTreeServiceTestSuite) TestOrgTreeInvertedWindow() {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tree, err := suite.orgTreeService.OrgTree(context.Background(), uuid.New(), from, to, true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidScoreWindow)
	assert.Nil(suite.T(), tree)
}

// TestOrgTreeHeldPositionDeleted tests a manager whose held position was
// soft-deleted underneath the open assignment
func (suite *OrgTreeServiceTestSuite) TestOrgTreeHeldPositionDeleted() {
	f := newOrgFixture()

	suite.mockEmployeeRepo.EXPECT().
		GetByID(f.managerID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: f.managerID}}, nil).
		Times(1)
	suite.mockPositionAssignRepo.EXPECT().
		GetOpenByEmployee(f.managerID).
		Return(&models.PositionAssignment{PositionID: f.vp.ID, EmployeeID: f.managerID}, nil).
		Times(1)
	suite.mockPositionRepo.EXPECT().
		GetByID(f.vp.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	tree, err := suite.orgTreeService.OrgTree(context.Background(), f.managerID, time.Time{}, time.Now(), false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPositionNotFound)
	assert.Nil(suite.T(), tree)
}

// TestOrgTreeServiceTestSuite runs the test suite
func TestOrgTreeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrgTreeServiceTestSuite))
}
