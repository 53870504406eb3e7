package repository

import (
	"math/rand"
	"testing"
	"time"

	"performance-portal-backend/internal/database/models"
	"performance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PositionAssignmentRepositoryTestSuite tests the PositionAssignmentRepository
type PositionAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PositionAssignmentRepository
	factories     *testutils.FactorySet

	company  *models.Company
	employee *models.Employee
	position *models.Position
}

// SetupSuite runs before all tests in the suite
func (suite *PositionAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPositionAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PositionAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds the company, one employee and one position every ledger
// row needs
func (suite *PositionAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(NewCompanyRepository(suite.baseTestSuite.DB).Create(suite.company))

	suite.employee = suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(suite.employee))

	suite.position = suite.factories.Position.WithCompany(suite.company.ID)
	suite.NoError(NewPositionRepository(suite.baseTestSuite.DB).Create(suite.position))
}

// TearDownTest runs after each test
func (suite *PositionAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// newEmployee persists another employee in the suite company
func (suite *PositionAssignmentRepositoryTestSuite) newEmployee() *models.Employee {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(employee))
	return employee
}

// newPosition persists another position in the suite company
func (suite *PositionAssignmentRepositoryTestSuite) newPosition() *models.Position {
	position := suite.factories.Position.WithCompany(suite.company.ID)
	suite.NoError(NewPositionRepository(suite.baseTestSuite.DB).Create(position))
	return position
}

// TestCreate tests appending an open interval
func (suite *PositionAssignmentRepositoryTestSuite) TestCreate() {
	assignment := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)

	err := suite.repo.Create(assignment)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, assignment.ID)
	suite.Nil(assignment.EndDate)
}

// TestCreateSecondOpenForEmployee tests that the partial unique index rejects
// a second open interval for the same employee
func (suite *PositionAssignmentRepositoryTestSuite) TestCreateSecondOpenForEmployee() {
	first := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Assignment.OpenPosition(suite.newPosition().ID, suite.employee.ID, 5)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCreateOpenAfterClosed tests that a closed interval does not block a new
// open one for the same employee
func (suite *PositionAssignmentRepositoryTestSuite) TestCreateOpenAfterClosed() {
	closed := suite.factories.Assignment.ClosedPosition(suite.position.ID, suite.employee.ID, 100, 50)
	suite.NoError(suite.repo.Create(closed))

	open := suite.factories.Assignment.OpenPosition(suite.newPosition().ID, suite.employee.ID, 10)
	err := suite.repo.Create(open)

	suite.NoError(err)
}

// TestGetOpenByEmployee tests resolving the employee's current position
func (suite *PositionAssignmentRepositoryTestSuite) TestGetOpenByEmployee() {
	closed := suite.factories.Assignment.ClosedPosition(suite.newPosition().ID, suite.employee.ID, 100, 50)
	suite.NoError(suite.repo.Create(closed))
	open := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)
	suite.NoError(suite.repo.Create(open))

	retrieved, err := suite.repo.GetOpenByEmployee(suite.employee.ID)

	suite.NoError(err)
	suite.Equal(open.ID, retrieved.ID)
	suite.Equal(suite.position.ID, retrieved.PositionID)
}

// TestGetOpenByEmployeeNone tests an employee with only closed intervals
func (suite *PositionAssignmentRepositoryTestSuite) TestGetOpenByEmployeeNone() {
	closed := suite.factories.Assignment.ClosedPosition(suite.position.ID, suite.employee.ID, 100, 50)
	suite.NoError(suite.repo.Create(closed))

	retrieved, err := suite.repo.GetOpenByEmployee(suite.employee.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetOpenByPosition tests resolving a position's current holder with the
// employee preloaded
func (suite *PositionAssignmentRepositoryTestSuite) TestGetOpenByPosition() {
	open := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)
	suite.NoError(suite.repo.Create(open))

	retrieved, err := suite.repo.GetOpenByPosition(suite.position.ID)

	suite.NoError(err)
	suite.Equal(suite.employee.ID, retrieved.EmployeeID)
	suite.NotNil(retrieved.Employee)
	suite.Equal(suite.employee.FullName, retrieved.Employee.FullName)
}

// TestGetOpenByPositionVacant tests a position with no open interval
func (suite *PositionAssignmentRepositoryTestSuite) TestGetOpenByPositionVacant() {
	retrieved, err := suite.repo.GetOpenByPosition(suite.position.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetOpenByPositionIDs tests the batch occupancy load
func (suite *PositionAssignmentRepositoryTestSuite) TestGetOpenByPositionIDs() {
	pos2 := suite.newPosition()
	pos3 := suite.newPosition()
	emp2 := suite.newEmployee()

	suite.NoError(suite.repo.Create(suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)))
	suite.NoError(suite.repo.Create(suite.factories.Assignment.OpenPosition(pos2.ID, emp2.ID, 5)))
	// pos3 stays vacant; a closed interval on it must not surface
	emp3 := suite.newEmployee()
	suite.NoError(suite.repo.Create(suite.factories.Assignment.ClosedPosition(pos3.ID, emp3.ID, 100, 50)))

	assignments, err := suite.repo.GetOpenByPositionIDs([]uuid.UUID{suite.position.ID, pos2.ID, pos3.ID})

	suite.NoError(err)
	suite.Len(assignments, 2)
	for _, a := range assignments {
		suite.NotNil(a.Employee)
		suite.Nil(a.EndDate)
	}
}

// TestGetOpenByPositionIDsEmpty tests the empty id set fast path
func (suite *PositionAssignmentRepositoryTestSuite) TestGetOpenByPositionIDsEmpty() {
	assignments, err := suite.repo.GetOpenByPositionIDs(nil)

	suite.NoError(err)
	suite.Nil(assignments)
}

// TestGetByEmployee tests the history read, most recent interval first
func (suite *PositionAssignmentRepositoryTestSuite) TestGetByEmployee() {
	old := suite.factories.Assignment.ClosedPosition(suite.newPosition().ID, suite.employee.ID, 200, 100)
	suite.NoError(suite.repo.Create(old))
	recent := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)
	suite.NoError(suite.repo.Create(recent))

	history, err := suite.repo.GetByEmployee(suite.employee.ID)

	suite.NoError(err)
	suite.Len(history, 2)
	suite.Equal(recent.ID, history[0].ID)
	suite.Equal(old.ID, history[1].ID)
	suite.NotNil(history[0].Position)
}

// TestClose tests closing the open interval
func (suite *PositionAssignmentRepositoryTestSuite) TestClose() {
	open := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)
	suite.NoError(suite.repo.Create(open))

	end := time.Now().UTC().Truncate(24 * time.Hour)
	err := suite.repo.Close(suite.position.ID, suite.employee.ID, end)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(open.ID)
	suite.NoError(err)
	suite.NotNil(retrieved.EndDate)

	// The employee is free again
	_, err = suite.repo.GetOpenByEmployee(suite.employee.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCloseNoOpenInterval tests closing when nothing is open
func (suite *PositionAssignmentRepositoryTestSuite) TestCloseNoOpenInterval() {
	err := suite.repo.Close(suite.position.ID, suite.employee.ID, time.Now())

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCloseWrongPosition tests closing against a position the employee does
// not hold
func (suite *PositionAssignmentRepositoryTestSuite) TestCloseWrongPosition() {
	open := suite.factories.Assignment.OpenPosition(suite.position.ID, suite.employee.ID, 10)
	suite.NoError(suite.repo.Create(open))

	err := suite.repo.Close(suite.newPosition().ID, suite.employee.ID, time.Now())

	suite.Equal(gorm.ErrRecordNotFound, err)

	// The open interval is untouched
	retrieved, err := suite.repo.GetOpenByEmployee(suite.employee.ID)
	suite.NoError(err)
	suite.Equal(open.ID, retrieved.ID)
}

// TestRandomAssignCloseSequences drives a random interleaving of assigns and
// closes across several employees and positions, and checks after every step
// that no employee ever ends up with more than one open interval.
func (suite *PositionAssignmentRepositoryTestSuite) TestRandomAssignCloseSequences() {
	rng := rand.New(rand.NewSource(42))

	employees := []*models.Employee{suite.employee, suite.newEmployee(), suite.newEmployee()}
	positions := []*models.Position{suite.position, suite.newPosition(), suite.newPosition(), suite.newPosition()}

	// expected current position per employee, mirrored alongside the DB
	held := make(map[uuid.UUID]uuid.UUID)

	for step := 0; step < 200; step++ {
		employee := employees[rng.Intn(len(employees))]
		position := positions[rng.Intn(len(positions))]
		day := time.Now().UTC().AddDate(0, 0, -rng.Intn(365)).Truncate(24 * time.Hour)

		if rng.Intn(2) == 0 {
			err := suite.repo.Create(suite.factories.Assignment.OpenPosition(position.ID, employee.ID, rng.Intn(365)))
			if _, open := held[employee.ID]; open {
				suite.Error(err, "step %d: second open interval must be rejected", step)
			} else {
				suite.NoError(err, "step %d", step)
				held[employee.ID] = position.ID
			}
		} else {
			err := suite.repo.Close(position.ID, employee.ID, day)
			if current, open := held[employee.ID]; open && current == position.ID {
				suite.NoError(err, "step %d", step)
				delete(held, employee.ID)
			} else {
				suite.Equal(gorm.ErrRecordNotFound, err, "step %d", step)
			}
		}

		for _, e := range employees {
			var openRows int64
			suite.NoError(suite.baseTestSuite.DB.Model(&models.PositionAssignment{}).
				Where("employee_id = ? AND end_date IS NULL", e.ID).
				Count(&openRows).Error)
			suite.LessOrEqual(openRows, int64(1), "step %d: employee %s", step, e.ID)
		}
	}
}

// Run the test suite
func TestPositionAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PositionAssignmentRepositoryTestSuite))
}
