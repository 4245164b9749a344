package entity

type Finding struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	ReportID uint   `gorm:"index;not null" json:"-"`
	Rule     string `json:"rule"`
	Level    string `json:"level"`
	File     string `json:"file"`
	Line     string `json:"line"`
	Message  string `json:"message"`
}
