package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name string `gorm:"size:200;unique;not null" json:"name"`
}

func (Subject) TableName() string {
	return "subjects"
}
