package model

type Category struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
}

func (Category) TableName() string {
	return "categories"
}

type Topic struct {
	BaseModel
	CategoryID  uint   `gorm:"index" json:"categoryId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Topic) TableName() string {
	return "topics"
}
