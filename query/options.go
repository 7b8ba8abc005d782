package query

import "optica-vista-me/models"

// FrameSortOptions declares the sortable keys of the frame catalog. A
// missing creation date is reported as nil so those records land last.
func FrameSortOptions() []SortOption[models.Frame] {
	return []SortOption[models.Frame]{
		{Key: "name", Label: "Name", Kind: KindString, Value: func(f models.Frame) interface{} { return f.Name }},
		{Key: "brand", Label: "Brand", Kind: KindString, Value: func(f models.Frame) interface{} { return f.Brand }},
		{Key: "price", Label: "Price", Kind: KindNumber, Value: func(f models.Frame) interface{} { return f.Price }},
		{Key: "createdAt", Label: "Date added", Kind: KindDate, Value: func(f models.Frame) interface{} {
			if f.CreatedAt == "" {
				return nil
			}
			return f.CreatedAt
		}},
		{Key: "inStock", Label: "Availability", Kind: KindBool, Value: func(f models.Frame) interface{} { return f.InStock }},
	}
}

// SunglassesSortOptions mirrors FrameSortOptions for the sunglasses catalog
func SunglassesSortOptions() []SortOption[models.Sunglasses] {
	return []SortOption[models.Sunglasses]{
		{Key: "name", Label: "Name", Kind: KindString, Value: func(s models.Sunglasses) interface{} { return s.Name }},
		{Key: "brand", Label: "Brand", Kind: KindString, Value: func(s models.Sunglasses) interface{} { return s.Brand }},
		{Key: "price", Label: "Price", Kind: KindNumber, Value: func(s models.Sunglasses) interface{} { return s.Price }},
		{Key: "createdAt", Label: "Date added", Kind: KindDate, Value: func(s models.Sunglasses) interface{} {
			if s.CreatedAt == "" {
				return nil
			}
			return s.CreatedAt
		}},
		{Key: "inStock", Label: "Availability", Kind: KindBool, Value: func(s models.Sunglasses) interface{} { return s.InStock }},
	}
}
