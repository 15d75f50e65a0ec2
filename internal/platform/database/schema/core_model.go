package schema

// ModelTable represents the 'core.model' table
type ModelTable struct {
	Table     string
	ModelID   string
	MakerID   string
	Name      string
	StartDate string
	EndDate   string
}

// Model is the schema definition for core.model
//
// StartDate/EndDate bound the production period (inclusive). Year filtering
// tests overlap against this range, never equality.
var Model = ModelTable{
	Table:     "core.model",
	ModelID:   "model_id",
	MakerID:   "maker_id",
	Name:      "model_name",
	StartDate: "start_date",
	EndDate:   "end_date",
}

func (t ModelTable) Columns() []string {
	return []string{t.ModelID, t.MakerID, t.Name, t.StartDate, t.EndDate}
}
