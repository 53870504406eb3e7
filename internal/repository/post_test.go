package repository

import (
	"testing"

	"performance-portal-backend/internal/database/models"
	"performance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PostRepositoryTestSuite tests the PostRepository
type PostRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PostRepository
	factories     *testutils.FactorySet

	company *models.Company
}

// SetupSuite runs before all tests in the suite
func (suite *PostRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPostRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PostRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PostRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(NewCompanyRepository(suite.baseTestSuite.DB).Create(suite.company))
}

// TearDownTest runs after each test
func (suite *PostRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new post
func (suite *PostRepositoryTestSuite) TestCreate() {
	post := suite.factories.Post.WithCompany(suite.company.ID)

	err := suite.repo.Create(post)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, post.ID)
}

// TestCreateDuplicateNameSameCompany tests the per-company unique name
func (suite *PostRepositoryTestSuite) TestCreateDuplicateNameSameCompany() {
	first := suite.factories.Post.WithCompany(suite.company.ID)
	first.Name = "Senior Engineer"
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Post.WithCompany(suite.company.ID)
	second.Name = "Senior Engineer"
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCreateSameNameDifferentCompany tests that the name is only unique
// within a company
func (suite *PostRepositoryTestSuite) TestCreateSameNameDifferentCompany() {
	other := suite.factories.Company.Create()
	suite.NoError(NewCompanyRepository(suite.baseTestSuite.DB).Create(other))

	first := suite.factories.Post.WithCompany(suite.company.ID)
	first.Name = "Senior Engineer"
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Post.WithCompany(other.ID)
	second.Name = "Senior Engineer"
	err := suite.repo.Create(second)

	suite.NoError(err)
}

// TestGetByName tests retrieving a post by name within a company
func (suite *PostRepositoryTestSuite) TestGetByName() {
	post := suite.factories.Post.WithCompany(suite.company.ID)
	post.Name = "Staff Engineer"
	suite.NoError(suite.repo.Create(post))

	retrieved, err := suite.repo.GetByName(suite.company.ID, "Staff Engineer")

	suite.NoError(err)
	suite.Equal(post.ID, retrieved.ID)

	_, err = suite.repo.GetByName(uuid.New(), "Staff Engineer")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByCompanyID tests listing a company's posts with pagination
func (suite *PostRepositoryTestSuite) TestGetByCompanyID() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Post.WithCompany(suite.company.ID)))
	}

	posts, total, err := suite.repo.GetByCompanyID(suite.company.ID, 2, 0)
	suite.NoError(err)
	suite.Len(posts, 2)
	suite.Equal(int64(3), total)

	posts, total, err = suite.repo.GetByCompanyID(suite.company.ID, 2, 2)
	suite.NoError(err)
	suite.Len(posts, 1)
	suite.Equal(int64(3), total)
}

// TestUpdate tests updating a post
func (suite *PostRepositoryTestSuite) TestUpdate() {
	post := suite.factories.Post.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(post))

	post.Grade = 7
	post.Description = "Updated description"
	err := suite.repo.Update(post)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(post.ID)
	suite.NoError(err)
	suite.Equal(7, retrieved.Grade)
	suite.Equal("Updated description", retrieved.Description)
}

// TestDelete tests deleting a post
func (suite *PostRepositoryTestSuite) TestDelete() {
	post := suite.factories.Post.WithCompany(suite.company.ID)
	suite.NoError(suite.repo.Create(post))

	err := suite.repo.Delete(post.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(post.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestPostRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostRepositoryTestSuite))
}
