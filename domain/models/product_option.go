package models

type ProductOption struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index;not null"`
	Name      string `gorm:"size:150;not null"`
	Required  bool   `gorm:"default:false"`
	Multiple  bool   `gorm:"default:false"`
	// MaxSelections มีความหมายเฉพาะตอน Multiple=true เท่านั้น
	// ถ้า Multiple=false ต้องถูกเคลียร์เป็น null เสมอ
	MaxSelections *int

	// Relations
	Items []OptionItem `gorm:"foreignKey:OptionID"`
	Tags  []Tag        `gorm:"many2many:option_tags;joinForeignKey:OptionID"`
}

func (ProductOption) TableName() string {
	return "product_options"
}

type OptionItem struct {
	ID       uint   `gorm:"primaryKey"`
	OptionID uint   `gorm:"index;not null"`
	Name     string `gorm:"size:150;not null"`
	// PriceAddition เป็นลบ/ศูนย์/บวกได้
	PriceAddition float64 `gorm:"type:numeric(10,2);default:0"`
	Available     bool    `gorm:"default:true"`
	ImageURL      string

	Tags []Tag `gorm:"many2many:item_tags;joinForeignKey:ItemID"`
}

func (OptionItem) TableName() string {
	return "option_items"
}
