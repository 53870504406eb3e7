package repository

import (
	"testing"

	"performance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests the CompanyRepository
type CompanyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CompanyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CompanyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompanyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CompanyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new company
func (suite *CompanyRepositoryTestSuite) TestCreate() {
	company := suite.factories.Company.Create()

	err := suite.repo.Create(company)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, company.ID)
	suite.NotZero(company.CreatedAt)
}

// TestCreateDuplicateName tests the unique name constraint
func (suite *CompanyRepositoryTestSuite) TestCreateDuplicateName() {
	first := suite.factories.Company.WithName("Acme Corp")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Company.WithName("Acme Corp")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a company by ID
func (suite *CompanyRepositoryTestSuite) TestGetByID() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	retrieved, err := suite.repo.GetByID(company.ID)

	suite.NoError(err)
	suite.Equal(company.ID, retrieved.ID)
	suite.Equal(company.Name, retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent company
func (suite *CompanyRepositoryTestSuite) TestGetByIDNotFound() {
	company, err := suite.repo.GetByID(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(company)
}

// TestGetByName tests retrieving a company by name
func (suite *CompanyRepositoryTestSuite) TestGetByName() {
	company := suite.factories.Company.WithName("Lookup Target")
	suite.NoError(suite.repo.Create(company))

	retrieved, err := suite.repo.GetByName("Lookup Target")

	suite.NoError(err)
	suite.Equal(company.ID, retrieved.ID)
}

// TestGetAll tests listing companies with pagination
func (suite *CompanyRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Company.Create()))
	}

	companies, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(companies, 2)
	suite.Equal(int64(5), total)

	companies, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(companies, 1)
	suite.Equal(int64(5), total)
}

// TestUpdate tests updating a company
func (suite *CompanyRepositoryTestSuite) TestUpdate() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	company.Description = "Updated description"
	err := suite.repo.Update(company)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(company.ID)
	suite.NoError(err)
	suite.Equal("Updated description", retrieved.Description)
}

// TestDelete tests deleting a company
func (suite *CompanyRepositoryTestSuite) TestDelete() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	err := suite.repo.Delete(company.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(company.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestCompanyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryTestSuite))
}
