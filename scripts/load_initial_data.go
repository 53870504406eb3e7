package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"performance-portal-backend/internal/config"
	"performance-portal-backend/internal/database"
	"performance-portal-backend/internal/database/models"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type EmployeeData struct {
	CompanyName string `yaml:"company_name"`
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone,omitempty"`
	HireDate    string `yaml:"hire_date,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type PostData struct {
	CompanyName string `yaml:"company_name"`
	Name        string `yaml:"name"`
	Grade       int    `yaml:"grade"`
	Description string `yaml:"description"`
}

type PositionData struct {
	CompanyName string `yaml:"company_name"`
	Title       string `yaml:"title"`
	ParentTitle string `yaml:"parent_title,omitempty"`
}

type PositionAssignmentData struct {
	EmployeeEmail string `yaml:"employee_email"`
	CompanyName   string `yaml:"company_name"`
	PositionTitle string `yaml:"position_title"`
	StartDate     string `yaml:"start_date"`
	EndDate       string `yaml:"end_date,omitempty"`
}

type PostAssignmentData struct {
	EmployeeEmail string `yaml:"employee_email"`
	CompanyName   string `yaml:"company_name"`
	PostName      string `yaml:"post_name"`
	StartDate     string `yaml:"start_date"`
	EndDate       string `yaml:"end_date,omitempty"`
}

type ScoreData struct {
	EmployeeEmail string `yaml:"employee_email"`
	AuthorEmail   string `yaml:"author_email"`
	Efficiency    int    `yaml:"efficiency"`
	Engagement    int    `yaml:"engagement"`
	Competency    int    `yaml:"competency"`
	RatedAt       string `yaml:"rated_at,omitempty"`
}

// File structures
type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type PostsFile struct {
	Posts []PostData `yaml:"posts"`
}

type PositionsFile struct {
	Positions []PositionData `yaml:"positions"`
}

type AssignmentsFile struct {
	PositionAssignments []PositionAssignmentData `yaml:"position_assignments"`
	PostAssignments     []PostAssignmentData     `yaml:"post_assignments"`
}

type ScoresFile struct {
	Scores []ScoreData `yaml:"scores"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	companies, err := loadCompanies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	posts, err := loadPosts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	positions, err := loadPositions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load positions: %w", err)
	}

	positionAssignments, postAssignments, err := loadAssignments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	scores, err := loadScores(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	// Create companies first
	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for _, companyData := range companies {
		company, created, err := createCompany(db, companyData)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
		}
		companyMap[companyData.Name] = company
		if created {
			companyCreated++
		}
	}
	log.Printf("📋 Companies: %d created, %d total", companyCreated, len(companies))

	// Create employees
	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, employeeData := range employees {
		employee, created, err := createEmployee(db, employeeData, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.Email, err)
		}
		employeeMap[employeeData.Email] = employee
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employees))

	// Create posts
	postMap := make(map[string]*models.Post)
	postCreated := 0
	for _, postData := range posts {
		post, created, err := createPost(db, postData, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create post %s: %w", postData.Name, err)
		}
		postMap[postKey(postData.CompanyName, postData.Name)] = post
		if created {
			postCreated++
		}
	}
	log.Printf("📋 Posts: %d created, %d total", postCreated, len(posts))

	// Create positions. Parents must be listed before their children so the
	// parent lookup can resolve within a single pass.
	positionMap := make(map[string]*models.Position)
	positionCreated := 0
	for _, positionData := range positions {
		position, created, err := createPosition(db, positionData, companyMap, positionMap)
		if err != nil {
			return fmt.Errorf("failed to create position %s: %w", positionData.Title, err)
		}
		positionMap[positionKey(positionData.CompanyName, positionData.Title)] = position
		if created {
			positionCreated++
		}
	}
	log.Printf("📋 Positions: %d created, %d total", positionCreated, len(positions))

	// Create position assignments
	positionAssignmentCreated := 0
	for _, assignmentData := range positionAssignments {
		created, err := createPositionAssignment(db, assignmentData, employeeMap, positionMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create position assignment for %s: %v", assignmentData.EmployeeEmail, err)
			continue // Continue with other assignments
		}
		if created {
			positionAssignmentCreated++
		}
	}
	log.Printf("📋 Position assignments: %d created, %d total", positionAssignmentCreated, len(positionAssignments))

	// Create post assignments
	postAssignmentCreated := 0
	for _, assignmentData := range postAssignments {
		created, err := createPostAssignment(db, assignmentData, employeeMap, postMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create post assignment for %s: %v", assignmentData.EmployeeEmail, err)
			continue // Continue with other assignments
		}
		if created {
			postAssignmentCreated++
		}
	}
	log.Printf("📋 Post assignments: %d created, %d total", postAssignmentCreated, len(postAssignments))

	// Create scores (requires position assignments so the rated position resolves)
	scoreCreated := 0
	for _, scoreData := range scores {
		created, err := createScore(db, scoreData, employeeMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create score for %s: %v", scoreData.EmployeeEmail, err)
			continue // Continue with other scores
		}
		if created {
			scoreCreated++
		}
	}
	log.Printf("📋 Scores: %d created, %d total", scoreCreated, len(scores))

	return nil
}

func postKey(companyName, postName string) string {
	return companyName + "/" + postName
}

func positionKey(companyName, title string) string {
	return companyName + "/" + title
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func loadCompanies(dataDir string) ([]CompanyData, error) {
	var allCompanies []CompanyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "companies") {
			var file CompaniesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCompanies = append(allCompanies, file.Companies...)
		}
		return nil
	})

	return allCompanies, err
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadPosts(dataDir string) ([]PostData, error) {
	var allPosts []PostData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "posts") {
			var file PostsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPosts = append(allPosts, file.Posts...)
		}
		return nil
	})

	return allPosts, err
}

func loadPositions(dataDir string) ([]PositionData, error) {
	var allPositions []PositionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "positions") {
			var file PositionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPositions = append(allPositions, file.Positions...)
		}
		return nil
	})

	return allPositions, err
}

func loadAssignments(dataDir string) ([]PositionAssignmentData, []PostAssignmentData, error) {
	var allPositionAssignments []PositionAssignmentData
	var allPostAssignments []PostAssignmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "assignments") {
			var file AssignmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPositionAssignments = append(allPositionAssignments, file.PositionAssignments...)
			allPostAssignments = append(allPostAssignments, file.PostAssignments...)
		}
		return nil
	})

	return allPositionAssignments, allPostAssignments, err
}

func loadScores(dataDir string) ([]ScoreData, error) {
	var allScores []ScoreData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "scores") {
			var file ScoresFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allScores = append(allScores, file.Scores...)
		}
		return nil
	})

	return allScores, err
}

func createCompany(db *gorm.DB, companyData CompanyData) (*models.Company, bool, error) {
	var company models.Company
	if err := db.Where("name = ?", companyData.Name).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			company = models.Company{
				Name:        companyData.Name,
				Description: companyData.Description,
			}

			if err := db.Create(&company).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create company: %w", err)
			}
			return &company, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query company: %w", err)
		}
	}

	return &company, false, nil // created = false (existing)
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, companyMap map[string]*models.Company) (*models.Employee, bool, error) {
	company := companyMap[employeeData.CompanyName]
	if company == nil {
		return nil, false, fmt.Errorf("company %s not found for employee %s", employeeData.CompanyName, employeeData.Email)
	}

	var employee models.Employee
	if err := db.Where("email = ?", employeeData.Email).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var hireDate *time.Time
			if employeeData.HireDate != "" {
				parsed, err := parseDate(employeeData.HireDate)
				if err != nil {
					return nil, false, fmt.Errorf("invalid hire date %q: %w", employeeData.HireDate, err)
				}
				hireDate = &parsed
			}

			employee = models.Employee{
				CompanyID: company.ID,
				FullName:  employeeData.FullName,
				Email:     employeeData.Email,
				Phone:     employeeData.Phone,
				HireDate:  hireDate,
				IsActive:  employeeData.IsActive,
			}

			if err := db.Create(&employee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}
			return &employee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}
	}

	return &employee, false, nil // created = false (existing)
}

func createPost(db *gorm.DB, postData PostData, companyMap map[string]*models.Company) (*models.Post, bool, error) {
	company := companyMap[postData.CompanyName]
	if company == nil {
		return nil, false, fmt.Errorf("company %s not found for post %s", postData.CompanyName, postData.Name)
	}

	var post models.Post
	if err := db.Where("name = ? AND company_id = ?", postData.Name, company.ID).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			post = models.Post{
				CompanyID:   company.ID,
				Name:        postData.Name,
				Grade:       postData.Grade,
				Description: postData.Description,
			}

			if err := db.Create(&post).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create post: %w", err)
			}
			return &post, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query post: %w", err)
		}
	}

	return &post, false, nil // created = false (existing)
}

func createPosition(db *gorm.DB, positionData PositionData, companyMap map[string]*models.Company, positionMap map[string]*models.Position) (*models.Position, bool, error) {
	company := companyMap[positionData.CompanyName]
	if company == nil {
		return nil, false, fmt.Errorf("company %s not found for position %s", positionData.CompanyName, positionData.Title)
	}

	var parentID *uuid.UUID
	if positionData.ParentTitle != "" {
		parent := positionMap[positionKey(positionData.CompanyName, positionData.ParentTitle)]
		if parent == nil {
			return nil, false, fmt.Errorf("parent position %s not found for position %s", positionData.ParentTitle, positionData.Title)
		}
		parentID = &parent.ID
	}

	var position models.Position
	if err := db.Where("title = ? AND company_id = ?", positionData.Title, company.ID).First(&position).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			position = models.Position{
				CompanyID: company.ID,
				ParentID:  parentID,
				Title:     positionData.Title,
			}

			if err := db.Create(&position).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create position: %w", err)
			}
			return &position, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query position: %w", err)
		}
	}

	return &position, false, nil // created = false (existing)
}

func createPositionAssignment(db *gorm.DB, assignmentData PositionAssignmentData, employeeMap map[string]*models.Employee, positionMap map[string]*models.Position) (bool, error) {
	employee := employeeMap[assignmentData.EmployeeEmail]
	if employee == nil {
		return false, fmt.Errorf("employee %s not found", assignmentData.EmployeeEmail)
	}

	position := positionMap[positionKey(assignmentData.CompanyName, assignmentData.PositionTitle)]
	if position == nil {
		return false, fmt.Errorf("position %s not found", assignmentData.PositionTitle)
	}

	startDate, err := parseDate(assignmentData.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start date %q: %w", assignmentData.StartDate, err)
	}

	var endDate *time.Time
	if assignmentData.EndDate != "" {
		parsed, err := parseDate(assignmentData.EndDate)
		if err != nil {
			return false, fmt.Errorf("invalid end date %q: %w", assignmentData.EndDate, err)
		}
		endDate = &parsed
	}

	var existing models.PositionAssignment
	err = db.Where("employee_id = ? AND position_id = ? AND start_date = ?", employee.ID, position.ID, startDate).First(&existing).Error
	if err == nil {
		return false, nil // created = false (existing)
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query position assignment: %w", err)
	}

	assignment := models.PositionAssignment{
		PositionID: position.ID,
		EmployeeID: employee.ID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if err := db.Create(&assignment).Error; err != nil {
		return false, fmt.Errorf("failed to create position assignment: %w", err)
	}

	return true, nil
}

func createPostAssignment(db *gorm.DB, assignmentData PostAssignmentData, employeeMap map[string]*models.Employee, postMap map[string]*models.Post) (bool, error) {
	employee := employeeMap[assignmentData.EmployeeEmail]
	if employee == nil {
		return false, fmt.Errorf("employee %s not found", assignmentData.EmployeeEmail)
	}

	post := postMap[postKey(assignmentData.CompanyName, assignmentData.PostName)]
	if post == nil {
		return false, fmt.Errorf("post %s not found", assignmentData.PostName)
	}

	startDate, err := parseDate(assignmentData.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start date %q: %w", assignmentData.StartDate, err)
	}

	var endDate *time.Time
	if assignmentData.EndDate != "" {
		parsed, err := parseDate(assignmentData.EndDate)
		if err != nil {
			return false, fmt.Errorf("invalid end date %q: %w", assignmentData.EndDate, err)
		}
		endDate = &parsed
	}

	var existing models.PostAssignment
	err = db.Where("employee_id = ? AND post_id = ? AND start_date = ?", employee.ID, post.ID, startDate).First(&existing).Error
	if err == nil {
		return false, nil // created = false (existing)
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query post assignment: %w", err)
	}

	assignment := models.PostAssignment{
		PostID:     post.ID,
		EmployeeID: employee.ID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if err := db.Create(&assignment).Error; err != nil {
		return false, fmt.Errorf("failed to create post assignment: %w", err)
	}

	return true, nil
}

func createScore(db *gorm.DB, scoreData ScoreData, employeeMap map[string]*models.Employee) (bool, error) {
	employee := employeeMap[scoreData.EmployeeEmail]
	if employee == nil {
		return false, fmt.Errorf("employee %s not found", scoreData.EmployeeEmail)
	}

	author := employeeMap[scoreData.AuthorEmail]
	if author == nil {
		return false, fmt.Errorf("author %s not found", scoreData.AuthorEmail)
	}

	// Resolve the position the employee currently holds; a score is always
	// recorded against a position.
	var open models.PositionAssignment
	if err := db.Where("employee_id = ? AND end_date IS NULL", employee.ID).First(&open).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, fmt.Errorf("employee %s holds no position", scoreData.EmployeeEmail)
		}
		return false, fmt.Errorf("failed to query open position assignment: %w", err)
	}

	score := models.Score{
		EmployeeID: employee.ID,
		AuthorID:   author.ID,
		PositionID: open.PositionID,
		Efficiency: scoreData.Efficiency,
		Engagement: scoreData.Engagement,
		Competency: scoreData.Competency,
	}

	if scoreData.RatedAt != "" {
		ratedAt, err := parseDate(scoreData.RatedAt)
		if err != nil {
			return false, fmt.Errorf("invalid rated_at date %q: %w", scoreData.RatedAt, err)
		}

		var existing models.Score
		err = db.Where("employee_id = ? AND author_id = ? AND created_at = ?", employee.ID, author.ID, ratedAt).First(&existing).Error
		if err == nil {
			return false, nil // created = false (existing)
		}
		if err != gorm.ErrRecordNotFound {
			return false, fmt.Errorf("failed to query score: %w", err)
		}

		score.CreatedAt = ratedAt
		score.UpdatedAt = ratedAt
	}

	if err := db.Create(&score).Error; err != nil {
		return false, fmt.Errorf("failed to create score: %w", err)
	}

	return true, nil
}
