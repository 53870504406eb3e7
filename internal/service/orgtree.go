package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/cache"
	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/hierarchy"
	"performance-portal-backend/internal/logger"
	"performance-portal-backend/internal/repository"
)

// OrgTreeService is the hierarchy & temporal-assignment resolution engine.
// One resolution is a read-only pipeline of independent queries: structural
// subtree, then occupancy overlay, then score enrichment, then merge. It
// runs outside any transaction; a position added mid-pipeline simply misses
// that response.
type OrgTreeService struct {
	positionRepo       repository.PositionRepositoryInterface
	positionAssignRepo repository.PositionAssignmentRepositoryInterface
	employeeRepo       repository.EmployeeRepositoryInterface
	scoreRepo          repository.ScoreRepositoryInterface
	treeCache          *cache.TreeCache
}

// NewOrgTreeService creates a new org-tree service
func NewOrgTreeService(
	positionRepo repository.PositionRepositoryInterface,
	positionAssignRepo repository.PositionAssignmentRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	scoreRepo repository.ScoreRepositoryInterface,
	treeCache *cache.TreeCache,
) *OrgTreeService {
	return &OrgTreeService{
		positionRepo:       positionRepo,
		positionAssignRepo: positionAssignRepo,
		employeeRepo:       employeeRepo,
		scoreRepo:          scoreRepo,
		treeCache:          treeCache,
	}
}

// Subordinates resolves the structural subtree below a position
func (s *OrgTreeService) Subordinates(positionID uuid.UUID, includeDeleted bool) ([]hierarchy.Node, error) {
	position, err := s.positionRepo.GetByID(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	var positions []models.Position
	if includeDeleted {
		positions, err = s.positionRepo.GetByCompanyIDIncludingDeleted(position.CompanyID)
	} else {
		positions, err = s.positionRepo.GetByCompanyID(position.CompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load company positions: %w", err)
	}

	return hierarchy.Subordinates(positionID, positions)
}

// CurrentOccupantsUnder resolves the currently staffed positions below the
// manager's own current position. Levels come from the structural walk
// relative to that position, not recomputed per occupant: structure and
// staffing change independently, and unstaffed slots must not shift levels.
func (s *OrgTreeService) CurrentOccupantsUnder(managerEmployeeID uuid.UUID) ([]hierarchy.OccupiedPosition, error) {
	_, subtree, err := s.resolveManagerSubtree(managerEmployeeID)
	if err != nil {
		return nil, err
	}

	occupants, err := s.loadOccupants(subtree)
	if err != nil {
		return nil, err
	}

	return hierarchy.Overlay(subtree, occupants), nil
}

// OrgTree resolves the full presentation tree below the manager's current
// position: structural subtree, occupancy overlay and, when includeScores
// is set, each occupant's latest score inside [windowFrom, windowTo].
func (s *OrgTreeService) OrgTree(ctx context.Context, managerEmployeeID uuid.UUID, windowFrom, windowTo time.Time, includeScores bool) (*hierarchy.TreeNode, error) {
	if includeScores && windowFrom.After(windowTo) {
		return nil, apperrors.ErrInvalidScoreWindow
	}

	root, subtree, err := s.resolveManagerSubtree(managerEmployeeID)
	if err != nil {
		return nil, err
	}

	key := cache.Key(root.CompanyID.String(), managerEmployeeID.String(), windowFrom, windowTo)
	if includeScores {
		var cached hierarchy.TreeNode
		if s.treeCache.Get(ctx, key, &cached) {
			return &cached, nil
		}
	}

	occupants, err := s.loadOccupants(subtree)
	if err != nil {
		return nil, err
	}
	// The manager's own node renders with its occupant too.
	if open, err := s.positionAssignRepo.GetOpenByPosition(root.ID); err == nil {
		occ := hierarchy.Occupant{EmployeeID: open.EmployeeID}
		if open.Employee != nil {
			occ.FullName = open.Employee.FullName
		}
		occupants[root.ID] = occ
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load root occupant: %w", err)
	}

	if includeScores {
		if err := s.enrichWithScores(occupants, windowFrom, windowTo); err != nil {
			return nil, err
		}
	}

	tree := hierarchy.BuildPresentationTree(root.ID, root.Title, subtree, occupants)

	if includeScores {
		s.treeCache.Set(ctx, key, tree)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"manager":   managerEmployeeID,
		"positions": len(subtree),
		"occupied":  len(occupants),
	}).Debug("resolved org tree")

	return tree, nil
}

// resolveManagerSubtree finds the manager's current position and the
// structural subtree below it. A manager without an open assignment is a
// NoCurrentPosition failure, distinct from NotFound: the employee exists.
func (s *OrgTreeService) resolveManagerSubtree(managerEmployeeID uuid.UUID) (*models.Position, []hierarchy.Node, error) {
	if _, err := s.employeeRepo.GetByID(managerEmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrEmployeeNotFound
		}
		return nil, nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	open, err := s.positionAssignRepo.GetOpenByEmployee(managerEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NewNoCurrentPositionError(managerEmployeeID.String())
		}
		return nil, nil, fmt.Errorf("failed to resolve current position: %w", err)
	}

	root, err := s.positionRepo.GetByID(open.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The held position was soft-deleted under the occupant.
			return nil, nil, apperrors.ErrPositionNotFound
		}
		return nil, nil, fmt.Errorf("failed to load current position: %w", err)
	}

	positions, err := s.positionRepo.GetByCompanyID(root.CompanyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load company positions: %w", err)
	}

	subtree, err := hierarchy.Subordinates(root.ID, positions)
	if err != nil {
		return nil, nil, err
	}
	return root, subtree, nil
}

// loadOccupants batch-loads the open assignments of a subtree into an
// occupancy map keyed by position id.
func (s *OrgTreeService) loadOccupants(subtree []hierarchy.Node) (map[uuid.UUID]hierarchy.Occupant, error) {
	ids := make([]uuid.UUID, 0, len(subtree))
	for _, node := range subtree {
		ids = append(ids, node.PositionID)
	}

	open, err := s.positionAssignRepo.GetOpenByPositionIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load open assignments: %w", err)
	}

	occupants := make(map[uuid.UUID]hierarchy.Occupant, len(open))
	for i := range open {
		occ := hierarchy.Occupant{EmployeeID: open[i].EmployeeID}
		if open[i].Employee != nil {
			occ.FullName = open[i].Employee.FullName
		}
		occupants[open[i].PositionID] = occ
	}
	return occupants, nil
}

// enrichWithScores attaches each occupant's latest in-window score. Missing
// scores leave the occupant unscored; the tree never fails over score
// absence.
func (s *OrgTreeService) enrichWithScores(occupants map[uuid.UUID]hierarchy.Occupant, from, to time.Time) error {
	if len(occupants) == 0 {
		return nil
	}

	employeeIDs := make([]uuid.UUID, 0, len(occupants))
	for _, occ := range occupants {
		employeeIDs = append(employeeIDs, occ.EmployeeID)
	}

	scores, err := s.scoreRepo.LatestForEmployees(employeeIDs, from, to)
	if err != nil {
		return fmt.Errorf("failed to load latest scores: %w", err)
	}

	byEmployee := make(map[uuid.UUID]*models.Score, len(scores))
	for i := range scores {
		byEmployee[scores[i].EmployeeID] = &scores[i]
	}

	for positionID, occ := range occupants {
		score, ok := byEmployee[occ.EmployeeID]
		if !ok {
			continue
		}
		occ.Score = &hierarchy.ScoreSummary{
			Efficiency: score.Efficiency,
			Engagement: score.Engagement,
			Competency: score.Competency,
			RatedAt:    score.CreatedAt,
		}
		occupants[positionID] = occ
	}
	return nil
}
