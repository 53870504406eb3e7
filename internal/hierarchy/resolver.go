// Package hierarchy holds the pure tree computations of the resolution
// engine: the structural subtree walk, the cycle check used by reparent
// validation, and the presentation-tree merge. Nothing here touches the
// database; callers load positions and occupancy first and pass them in.
package hierarchy

import (
	"github.com/google/uuid"

	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/database/models"
)

// maxDepth caps the BFS in case stored data is cyclic despite the write-time
// checks. A corporate tree deeper than this is not a real org chart.
const maxDepth = 512

// Node is one position in a resolved subtree. Level is the graph distance
// from the requested root; direct children have level 1.
type Node struct {
	PositionID uuid.UUID  `json:"position_id"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	Title      string     `json:"title"`
	Level      int        `json:"level"`
}

// OccupiedPosition pairs a structural node with its current holder.
type OccupiedPosition struct {
	Node
	EmployeeID uuid.UUID `json:"employee_id"`
	FullName   string    `json:"full_name"`
}

// Subordinates resolves the subtree rooted at rootID over the given position
// set. The root itself is excluded; levels are graph distance from the root.
// Sibling order is whatever the walk yields and callers must not depend on
// it. Returns ErrPositionNotFound when rootID is not in the set.
//
// The walk is breadth-first with a visited set, so it terminates even on
// cyclic data.
func Subordinates(rootID uuid.UUID, positions []models.Position) ([]Node, error) {
	byID := make(map[uuid.UUID]*models.Position, len(positions))
	children := make(map[uuid.UUID][]*models.Position, len(positions))
	for i := range positions {
		p := &positions[i]
		byID[p.ID] = p
		if p.ParentID != nil {
			children[*p.ParentID] = append(children[*p.ParentID], p)
		}
	}

	if _, ok := byID[rootID]; !ok {
		return nil, apperrors.ErrPositionNotFound
	}

	var result []Node
	visited := map[uuid.UUID]bool{rootID: true}

	frontier := []uuid.UUID{rootID}
	for level := 1; len(frontier) > 0 && level <= maxDepth; level++ {
		var next []uuid.UUID
		for _, id := range frontier {
			for _, child := range children[id] {
				if visited[child.ID] {
					continue
				}
				visited[child.ID] = true
				result = append(result, Node{
					PositionID: child.ID,
					ParentID:   child.ParentID,
					Title:      child.Title,
					Level:      level,
				})
				next = append(next, child.ID)
			}
		}
		frontier = next
	}

	return result, nil
}

// WouldCreateCycle reports whether repointing nodeID under newParentID would
// make the node its own ancestor. Walking the parent chain upward from the
// candidate parent is enough: a cycle appears exactly when that chain passes
// through the node being moved.
func WouldCreateCycle(nodeID, newParentID uuid.UUID, positions []models.Position) bool {
	if nodeID == newParentID {
		return true
	}

	parents := make(map[uuid.UUID]*uuid.UUID, len(positions))
	for i := range positions {
		parents[positions[i].ID] = positions[i].ParentID
	}

	seen := make(map[uuid.UUID]bool)
	cur := newParentID
	for {
		if cur == nodeID {
			return true
		}
		if seen[cur] {
			// pre-existing cycle in stored data; refuse to make it worse
			return true
		}
		seen[cur] = true
		parent, ok := parents[cur]
		if !ok || parent == nil {
			return false
		}
		cur = *parent
	}
}

// Overlay joins a structural subtree against the open-assignment rows of its
// positions. Only staffed positions survive; levels are taken from the
// structural walk, never recomputed, because structure and staffing change
// independently.
func Overlay(subtree []Node, occupants map[uuid.UUID]Occupant) []OccupiedPosition {
	var result []OccupiedPosition
	for _, node := range subtree {
		occ, ok := occupants[node.PositionID]
		if !ok {
			continue
		}
		result = append(result, OccupiedPosition{
			Node:       node,
			EmployeeID: occ.EmployeeID,
			FullName:   occ.FullName,
		})
	}
	return result
}
