package schema

// RecallTable represents the 'core.recall' table
type RecallTable struct {
	Table    string
	RecallID string
	ModelID  string
	Quantity string
	Defect   string
	Fix      string
	Center   string
}

// Recall is the schema definition for core.recall
//
// Quantity and the three text columns are nullable at the storage level;
// queries normalize them (0 / empty string) before anything leaves the store.
var Recall = RecallTable{
	Table:    "core.recall",
	RecallID: "recall_id",
	ModelID:  "model_id",
	Quantity: "recall_quantity",
	Defect:   "defect_desc",
	Fix:      "fix_method",
	Center:   "recall_center",
}

func (t RecallTable) Columns() []string {
	return []string{t.RecallID, t.ModelID, t.Quantity, t.Defect, t.Fix, t.Center}
}
