package hierarchy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
)

func position(id uuid.UUID, parentID *uuid.UUID, title string) models.Position {
	return models.Position{
		BaseModel: models.BaseModel{ID: id},
		ParentID:  parentID,
		Title:     title,
	}
}

// buildForest returns ceo -> (vp1, vp2), vp1 -> (eng1, eng2), vp2 -> eng3
func buildForest() (ids map[string]uuid.UUID, positions []models.Position) {
	ids = map[string]uuid.UUID{
		"ceo": uuid.New(), "vp1": uuid.New(), "vp2": uuid.New(),
		"eng1": uuid.New(), "eng2": uuid.New(), "eng3": uuid.New(),
	}
	ceo, vp1, vp2 := ids["ceo"], ids["vp1"], ids["vp2"]
	positions = []models.Position{
		position(ceo, nil, "CEO"),
		position(vp1, &ceo, "VP Engineering"),
		position(vp2, &ceo, "VP Sales"),
		position(ids["eng1"], &vp1, "Engineer 1"),
		position(ids["eng2"], &vp1, "Engineer 2"),
		position(ids["eng3"], &vp2, "Account Exec"),
	}
	return ids, positions
}

func TestSubordinates(t *testing.T) {
	t.Run("full subtree with levels", func(t *testing.T) {
		ids, positions := buildForest()

		nodes, err := Subordinates(ids["ceo"], positions)
		require.NoError(t, err)
		require.Len(t, nodes, 5)

		levels := map[uuid.UUID]int{}
		for _, n := range nodes {
			levels[n.PositionID] = n.Level
		}
		assert.Equal(t, 1, levels[ids["vp1"]])
		assert.Equal(t, 1, levels[ids["vp2"]])
		assert.Equal(t, 2, levels[ids["eng1"]])
		assert.Equal(t, 2, levels[ids["eng2"]])
		assert.Equal(t, 2, levels[ids["eng3"]])
	})

	t.Run("root is excluded", func(t *testing.T) {
		ids, positions := buildForest()

		nodes, err := Subordinates(ids["ceo"], positions)
		require.NoError(t, err)
		for _, n := range nodes {
			assert.NotEqual(t, ids["ceo"], n.PositionID)
		}
	})

	t.Run("mid-tree root sees only its branch", func(t *testing.T) {
		ids, positions := buildForest()

		nodes, err := Subordinates(ids["vp1"], positions)
		require.NoError(t, err)
		require.Len(t, nodes, 2)
		for _, n := range nodes {
			assert.Equal(t, 1, n.Level)
		}
	})

	t.Run("leaf has no subordinates", func(t *testing.T) {
		ids, positions := buildForest()

		nodes, err := Subordinates(ids["eng1"], positions)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("unknown root", func(t *testing.T) {
		_, positions := buildForest()

		_, err := Subordinates(uuid.New(), positions)
		assert.ErrorIs(t, err, apperrors.ErrPositionNotFound)
	})

	t.Run("terminates on cyclic data", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		// a -> b -> c -> a, broken data that the write path should prevent
		positions := []models.Position{
			position(a, &c, "A"),
			position(b, &a, "B"),
			position(c, &b, "C"),
		}

		nodes, err := Subordinates(a, positions)
		require.NoError(t, err)
		assert.Len(t, nodes, 2)
	})

	t.Run("dangling parent reference is tolerated", func(t *testing.T) {
		root := uuid.New()
		orphanParent := uuid.New()
		child := uuid.New()
		positions := []models.Position{
			position(root, nil, "Root"),
			position(child, &orphanParent, "Orphan child"),
		}

		nodes, err := Subordinates(root, positions)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})
}

func TestWouldCreateCycle(t *testing.T) {
	t.Run("self parent", func(t *testing.T) {
		id := uuid.New()
		assert.True(t, WouldCreateCycle(id, id, nil))
	})

	t.Run("moving under own descendant", func(t *testing.T) {
		ids, positions := buildForest()
		assert.True(t, WouldCreateCycle(ids["vp1"], ids["eng1"], positions))
		assert.True(t, WouldCreateCycle(ids["ceo"], ids["eng3"], positions))
	})

	t.Run("moving to a sibling branch", func(t *testing.T) {
		ids, positions := buildForest()
		assert.False(t, WouldCreateCycle(ids["eng1"], ids["vp2"], positions))
	})

	t.Run("moving under an ancestor", func(t *testing.T) {
		ids, positions := buildForest()
		assert.False(t, WouldCreateCycle(ids["eng1"], ids["ceo"], positions))
	})

	t.Run("pre-existing cycle in stored data is refused", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		positions := []models.Position{
			position(a, &b, "A"),
			position(b, &a, "B"),
		}
		assert.True(t, WouldCreateCycle(uuid.New(), a, positions))
	})
}

func TestOverlay(t *testing.T) {
	t.Run("keeps only staffed nodes with structural levels", func(t *testing.T) {
		ids, positions := buildForest()
		subtree, err := Subordinates(ids["ceo"], positions)
		require.NoError(t, err)

		alice, bob := uuid.New(), uuid.New()
		occupants := map[uuid.UUID]Occupant{
			ids["vp1"]:  {EmployeeID: alice, FullName: "Alice"},
			ids["eng2"]: {EmployeeID: bob, FullName: "Bob"},
		}

		result := Overlay(subtree, occupants)
		require.Len(t, result, 2)

		byPosition := map[uuid.UUID]OccupiedPosition{}
		for _, op := range result {
			byPosition[op.PositionID] = op
		}
		assert.Equal(t, "Alice", byPosition[ids["vp1"]].FullName)
		assert.Equal(t, 1, byPosition[ids["vp1"]].Level)
		// eng2 keeps its structural level even though its manager chain
		// includes vacant positions
		assert.Equal(t, bob, byPosition[ids["eng2"]].EmployeeID)
		assert.Equal(t, 2, byPosition[ids["eng2"]].Level)
	})

	t.Run("no occupants yields empty result", func(t *testing.T) {
		ids, positions := buildForest()
		subtree, err := Subordinates(ids["ceo"], positions)
		require.NoError(t, err)

		assert.Empty(t, Overlay(subtree, nil))
	})
}
