package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Subject     string `gorm:"size:200"`
	Description string `gorm:"type:text"`
	Priority    string `gorm:"size:20;index"`
	Status      string `gorm:"size:20;index"`
	Category    string `gorm:"size:50;index"`
	UserID      *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
