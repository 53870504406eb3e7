package hierarchy

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ScoreSummary carries the three latest sub-scores of an occupant inside the
// presentation tree.
type ScoreSummary struct {
	Efficiency int       `json:"efficiency"`
	Engagement int       `json:"engagement"`
	Competency int       `json:"competency"`
	RatedAt    time.Time `json:"rated_at"`
}

// Occupant describes the current holder of a position, optionally enriched
// with the latest score in the caller's window. A nil Score on an occupied
// node means "occupied but unscored", which renders differently from an
// unoccupied node (nil Occupant).
type Occupant struct {
	EmployeeID uuid.UUID     `json:"employee_id"`
	FullName   string        `json:"full_name"`
	Score      *ScoreSummary `json:"score,omitempty"`
}

// TreeNode is one node of the merged presentation tree.
type TreeNode struct {
	PositionID uuid.UUID   `json:"position_id"`
	Title      string      `json:"title"`
	Level      int         `json:"level"`
	Occupant   *Occupant   `json:"occupant,omitempty"`
	Children   []*TreeNode `json:"children,omitempty"`
}

// BuildPresentationTree merges the structural subtree with the occupancy map
// into a new tree rooted at the given root position. Inputs are never
// mutated. Children are sorted by position id, which is the determinism
// guarantee: the subtree walk itself does not promise sibling order, the
// merge does.
func BuildPresentationTree(rootID uuid.UUID, rootTitle string, subtree []Node, occupants map[uuid.UUID]Occupant) *TreeNode {
	byParent := make(map[uuid.UUID][]Node)
	for _, node := range subtree {
		if node.ParentID == nil {
			continue
		}
		byParent[*node.ParentID] = append(byParent[*node.ParentID], node)
	}

	root := &TreeNode{
		PositionID: rootID,
		Title:      rootTitle,
		Level:      0,
	}
	if occ, ok := occupants[rootID]; ok {
		root.Occupant = cloneOccupant(occ)
	}
	attachChildren(root, byParent, occupants, map[uuid.UUID]bool{rootID: true})
	return root
}

func attachChildren(parent *TreeNode, byParent map[uuid.UUID][]Node, occupants map[uuid.UUID]Occupant, visited map[uuid.UUID]bool) {
	nodes := byParent[parent.PositionID]
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PositionID.String() < sorted[j].PositionID.String()
	})

	for _, node := range sorted {
		if visited[node.PositionID] {
			continue
		}
		visited[node.PositionID] = true

		child := &TreeNode{
			PositionID: node.PositionID,
			Title:      node.Title,
			Level:      node.Level,
		}
		if occ, ok := occupants[node.PositionID]; ok {
			child.Occupant = cloneOccupant(occ)
		}
		attachChildren(child, byParent, occupants, visited)
		parent.Children = append(parent.Children, child)
	}
}

func cloneOccupant(occ Occupant) *Occupant {
	out := &Occupant{
		EmployeeID: occ.EmployeeID,
		FullName:   occ.FullName,
	}
	if occ.Score != nil {
		score := *occ.Score
		out.Score = &score
	}
	return out
}
