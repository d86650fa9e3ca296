// Package tree provides the fitted-state representation of the tree-ensemble
// model family and its characteristic definitions.
package tree

// Family is the identity tag of the tree-ensemble model family.
const Family = "tree_ensemble"

// Characteristic names reported by this family.
const (
	CharNumTrees  = "num_trees"
	CharNumLeaves = "num_leaves"
	CharMaxDepth  = "max_depth"
)

// TreeStats summarizes the structure of a single fitted tree.
type TreeStats struct {
	NumLeaves int
	Depth     int
}

// Ensemble is the fitted state of a tree ensemble (boosted or bagged).
// Only structure is retained; split rules live with the fitting layer.
type Ensemble struct {
	trees []TreeStats
}

// NewEnsemble wraps the per-tree structure of a fitted ensemble.
// The slice is copied.
func NewEnsemble(trees []TreeStats) *Ensemble {
	t := make([]TreeStats, len(trees))
	copy(t, trees)
	return &Ensemble{trees: t}
}

// Family returns the model-family identity tag.
func (e *Ensemble) Family() string { return Family }

// NumTrees returns the number of trees in the ensemble.
func (e *Ensemble) NumTrees() int { return len(e.trees) }

// Characteristics reports total leaf count, maximum depth, and tree count.
func (e *Ensemble) Characteristics() map[string]float64 {
	leaves := 0
	maxDepth := 0
	for _, t := range e.trees {
		leaves += t.NumLeaves
		if t.Depth > maxDepth {
			maxDepth = t.Depth
		}
	}
	return map[string]float64{
		CharNumTrees:  float64(len(e.trees)),
		CharNumLeaves: float64(leaves),
		CharMaxDepth:  float64(maxDepth),
	}
}
