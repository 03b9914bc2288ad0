package models

type KnowledgeEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"type:text"`
	Answer    string `gorm:"type:text"`
	Category  string `gorm:"size:50;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (KnowledgeEntryModel) TableName() string {
	return "knowledge_base"
}
