package model

// Tag represents a row in tags. Names are unique per project, case-insensitively.
type Tag struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID string `gorm:"column:project_id;type:uuid;not null;index" json:"project_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Color     string `gorm:"size:32;not null" json:"color"`
}

// TableName specifies the table name for GORM
func (Tag) TableName() string {
	return "tags"
}
