package model

// Taxonomy is the shared shape of the named lookup tables. Names are unique
// per table ignoring case, and rows are created on first reference keeping
// the first spelling seen.
type Taxonomy struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:,expression:LOWER(name)"`
}

// TaxonomyName returns the stored spelling.
func (t *Taxonomy) TaxonomyName() string {
	return t.Name
}

// CategoryModel mirrors the 'categories' table, e.g. "Italian".
type CategoryModel struct {
	Taxonomy
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// AmbianceModel mirrors the 'ambiances' table, e.g. "Romantic".
type AmbianceModel struct {
	Taxonomy
}

// TableName explicitly sets the table name for GORM.
func (AmbianceModel) TableName() string {
	return "ambiances"
}

// ZoneModel mirrors the 'zones' table, a neighbourhood of the city.
type ZoneModel struct {
	Taxonomy
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}
