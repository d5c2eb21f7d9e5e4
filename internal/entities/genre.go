package entities

// Genre groups books. A genre that still owns books cannot be deleted.
type Genre struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:60;not null" json:"name"`
	Version uint   `gorm:"not null" json:"version"`
	Books   []Book `gorm:"foreignKey:GenreID" json:"books,omitempty"`
}
