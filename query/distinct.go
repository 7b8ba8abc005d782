package query

import (
	"sort"
	"strings"

	"optica-vista-me/models"
)

// Distinct collects the unique non-empty values produced by extract,
// sorted case-insensitively. The first-seen casing of each value wins;
// values differing only in case collapse to one entry. Used to populate
// the filter dropdowns (brand, category, material, shape, color).
func Distinct[T any](items []T, extract func(T) string) []string {
	seen := make(map[string]string)
	for _, item := range items {
		v := strings.TrimSpace(extract(item))
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; !ok {
			seen[key] = v
		}
	}

	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Per-field shortcuts for the catalog dropdowns

func DistinctBrands(items []models.Frame) []string {
	return Distinct(items, func(f models.Frame) string { return f.Brand })
}

func DistinctCategories(items []models.Frame) []string {
	return Distinct(items, func(f models.Frame) string { return f.Category })
}

func DistinctMaterials(items []models.Frame) []string {
	return Distinct(items, func(f models.Frame) string { return f.Material })
}

func DistinctShapes(items []models.Frame) []string {
	return Distinct(items, func(f models.Frame) string { return f.Shape })
}

func DistinctColors(items []models.Frame) []string {
	return Distinct(items, func(f models.Frame) string { return f.Color })
}
