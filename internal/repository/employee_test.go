package repository

import (
	"testing"

	"performance-portal-backend/internal/database/models"
	"performance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	factories     *testutils.FactorySet

	company *models.Company
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(NewCompanyRepository(suite.baseTestSuite.DB).Create(suite.company))
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new employee
func (suite *EmployeeRepositoryTestSuite) TestCreate() {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)

	err := suite.repo.Create(employee)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, employee.ID)
	suite.True(employee.IsActive)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *EmployeeRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.Employee.WithCompany(suite.company.ID)
	first.Email = "taken@test.com"
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Employee.WithCompany(suite.company.ID)
	second.Email = "taken@test.com"
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving an employee by ID
func (suite *EmployeeRepositoryTestSuite) TestGetByID() {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(employee))

	retrieved, err := suite.repo.GetByID(employee.ID)

	suite.NoError(err)
	suite.Equal(employee.ID, retrieved.ID)
	suite.Equal(employee.Email, retrieved.Email)
}

// TestGetByIDNotFound tests retrieving a non-existent employee
func (suite *EmployeeRepositoryTestSuite) TestGetByIDNotFound() {
	employee, err := suite.repo.GetByID(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(employee)
}

// TestGetByEmail tests retrieving an employee by email
func (suite *EmployeeRepositoryTestSuite) TestGetByEmail() {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	employee.Email = "findme@test.com"
	suite.NoError(suite.repo.Create(employee))

	retrieved, err := suite.repo.GetByEmail("findme@test.com")

	suite.NoError(err)
	suite.Equal(employee.ID, retrieved.ID)
}

// TestGetByCompanyID tests listing a company's employees with pagination
func (suite *EmployeeRepositoryTestSuite) TestGetByCompanyID() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Employee.WithCompany(suite.company.ID)))
	}
	// Another company's employee must not leak in
	other := suite.factories.Company.Create()
	suite.NoError(NewCompanyRepository(suite.baseTestSuite.DB).Create(other))
	suite.NoError(suite.repo.Create(suite.factories.Employee.WithCompany(other.ID)))

	employees, total, err := suite.repo.GetByCompanyID(suite.company.ID, 2, 0)
	suite.NoError(err)
	suite.Len(employees, 2)
	suite.Equal(int64(3), total)

	employees, total, err = suite.repo.GetByCompanyID(suite.company.ID, 2, 2)
	suite.NoError(err)
	suite.Len(employees, 1)
	suite.Equal(int64(3), total)
}

// TestGetByIDs tests the batch load
func (suite *EmployeeRepositoryTestSuite) TestGetByIDs() {
	emp1 := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(emp1))
	emp2 := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(emp2))

	employees, err := suite.repo.GetByIDs([]uuid.UUID{emp1.ID, emp2.ID, uuid.New()})

	suite.NoError(err)
	suite.Len(employees, 2)
}

// TestGetByIDsEmpty tests the empty id set fast path
func (suite *EmployeeRepositoryTestSuite) TestGetByIDsEmpty() {
	employees, err := suite.repo.GetByIDs(nil)

	suite.NoError(err)
	suite.Nil(employees)
}

// TestUpdate tests updating an employee
func (suite *EmployeeRepositoryTestSuite) TestUpdate() {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(employee))

	employee.FullName = "Renamed Person"
	employee.IsActive = false
	err := suite.repo.Update(employee)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal("Renamed Person", retrieved.FullName)
	suite.False(retrieved.IsActive)
}

// TestDelete tests deleting an employee
func (suite *EmployeeRepositoryTestSuite) TestDelete() {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(employee))

	err := suite.repo.Delete(employee.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(employee.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
