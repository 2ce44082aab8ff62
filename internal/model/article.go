package model

// Category groups articles by subject.
type Category string

const (
	CategoryFormula1 Category = "Formula 1"
	CategoryNASCAR   Category = "NASCAR"
	CategoryGaming   Category = "Gaming"
)

// Categories lists the known categories in display order.
var Categories = []Category{CategoryFormula1, CategoryNASCAR, CategoryGaming}

// IsKnown reports whether c is one of Categories.
func (c Category) IsKnown() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Article is a published piece shown on the portfolio. Date is free text.
type Article struct {
	ID          string   `json:"id"          yaml:"id"          validate:"required"`
	Category    Category `json:"category"    yaml:"category"    validate:"required,oneof='Formula 1' NASCAR Gaming"`
	Title       string   `json:"title"       yaml:"title"       validate:"required"`
	Publication string   `json:"publication" yaml:"publication" validate:"required"`
	Date        string   `json:"date"        yaml:"date"`
	Excerpt     string   `json:"excerpt"     yaml:"excerpt"`
	Thumbnail   string   `json:"thumbnail"   yaml:"thumbnail"   validate:"omitempty,url"`
	URL         string   `json:"url"         yaml:"url"         validate:"required,url"`
}
