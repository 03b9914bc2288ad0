package models

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;index"`
	Name      string `gorm:"size:100"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
