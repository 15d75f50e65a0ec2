package schema

// ManufacturerTable represents the 'core.manufacturer' table
type ManufacturerTable struct {
	Table    string
	MakerID  string
	Name     string
	RegionAt string
}

// Manufacturer is the schema definition for core.manufacturer
var Manufacturer = ManufacturerTable{
	Table:    "core.manufacturer",
	MakerID:  "maker_id",
	Name:     "maker_name",
	RegionAt: "region_at",
}

func (t ManufacturerTable) Columns() []string {
	return []string{t.MakerID, t.Name, t.RegionAt}
}
