package sentiment

import "fmt"

// Tree is one fitted decision tree in array form. Node i is a leaf when
// ChildrenLeft[i] == -1.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// RandomForest averages the class probabilities of its trees.
type RandomForest struct {
	Type     string   `json:"type"`
	Labels   []string `json:"classes"`
	Features int      `json:"n_features"`
	Trees    []Tree   `json:"trees"`
}

func (f *RandomForest) init() error {
	if len(f.Labels) < 2 {
		return fmt.Errorf("%w: need at least two classes, got %d", ErrIncompatibleModel, len(f.Labels))
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: forest has no trees", ErrIncompatibleModel)
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(len(f.Labels), f.Features); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

func (t *Tree) validate(nClasses, nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("%w: empty tree", ErrIncompatibleModel)
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("%w: node arrays differ in length", ErrIncompatibleModel)
	}
	for i := 0; i < n; i++ {
		if len(t.Value[i]) != nClasses {
			return fmt.Errorf("%w: node %d has %d class weights, want %d", ErrIncompatibleModel, i, len(t.Value[i]), nClasses)
		}
		if t.ChildrenLeft[i] == -1 {
			continue
		}
		// Children always come after their parent, so walks terminate.
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l <= i || l >= n || r <= i || r >= n {
			return fmt.Errorf("%w: node %d has bad children %d/%d", ErrIncompatibleModel, i, l, r)
		}
		if t.Feature[i] < 0 || (nFeatures > 0 && t.Feature[i] >= nFeatures) {
			return fmt.Errorf("%w: node %d splits on feature %d", ErrIncompatibleModel, i, t.Feature[i])
		}
	}
	return nil
}

// leaf walks x down the tree and returns the leaf's class weights.
func (t *Tree) leaf(x SparseVector) []float64 {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		// Fitted trees compare float32 features against float64 thresholds.
		if float64(float32(x[t.Feature[node]])) <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// Proba returns the averaged class probabilities for x, ordered like Classes.
func (f *RandomForest) Proba(x SparseVector) []float64 {
	proba := make([]float64, len(f.Labels))
	for i := range f.Trees {
		weights := f.Trees[i].leaf(x)
		var total float64
		for _, w := range weights {
			total += w
		}
		if total == 0 {
			continue
		}
		for c, w := range weights {
			proba[c] += w / total
		}
	}
	for c := range proba {
		proba[c] /= float64(len(f.Trees))
	}
	return proba
}

func (f *RandomForest) Predict(x SparseVector) (Prediction, error) {
	proba := f.Proba(x)
	best := argmax(proba)
	return Prediction{Class: f.Labels[best], Confidence: proba[best]}, nil
}

func (f *RandomForest) Classes() []string { return f.Labels }

func (f *RandomForest) NumFeatures() int { return f.Features }
