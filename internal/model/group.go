package model

type Group struct {
	ID          int64   `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Leader      string  `gorm:"column:leader" json:"leader"`
	Schedule    string  `gorm:"column:schedule" json:"schedule"`
	Location    string  `gorm:"column:location" json:"location"`
	Capacity    *int    `gorm:"column:capacity" json:"capacity,omitempty"`
	ImageURL    *string `gorm:"column:image_url" json:"imageUrl,omitempty"`
	CreatorID   *int64  `gorm:"column:creator_id" json:"creatorId,omitempty"`
}

func (g Group) TableName() string {
	return "groups"
}
