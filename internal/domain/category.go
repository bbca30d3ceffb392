package domain

// Category is one slice of the catalog taxonomy that excludeCat rules
// refer to.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// CategoryFinder resolves the categories a model belongs to. It is the
// only external lookup the evaluation engine performs.
type CategoryFinder interface {
	FindByModelID(modelID int64) []Category
}

// CategoryIndex is an in-memory CategoryFinder keyed by model id.
type CategoryIndex map[int64][]Category

func (idx CategoryIndex) FindByModelID(modelID int64) []Category {
	return idx[modelID]
}
