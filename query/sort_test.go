package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica-vista-me/query"
)

type row struct {
	Name  string
	Price float64
	Stock bool
	Added string
	Rank  *int
}

func rowOptions() []query.SortOption[row] {
	return []query.SortOption[row]{
		{Key: "name", Kind: query.KindString, Value: func(r row) interface{} { return r.Name }},
		{Key: "price", Kind: query.KindNumber, Value: func(r row) interface{} { return r.Price }},
		{Key: "stock", Kind: query.KindBool, Value: func(r row) interface{} { return r.Stock }},
		{Key: "added", Kind: query.KindDate, Value: func(r row) interface{} { return r.Added }},
		{Key: "rank", Kind: query.KindNumber, Value: func(r row) interface{} {
			if r.Rank == nil {
				return nil
			}
			return *r.Rank
		}},
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := []row{{Name: "b"}, {Name: "a"}}

	out := query.Sort(in, "name", query.Asc, rowOptions())

	assert.Equal(t, []string{"b", "a"}, names(in))
	assert.Equal(t, []string{"a", "b"}, names(out))
}

func TestSort_StringCaseInsensitive(t *testing.T) {
	in := []row{{Name: "zeta"}, {Name: "Alpha"}, {Name: "beta"}}

	out := query.Sort(in, "name", query.Asc, rowOptions())

	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, names(out))
}

func TestSort_StringLocaleCollation(t *testing.T) {
	// Byte order would push "Émile" past "zeta"; collation keeps accented
	// letters with their base letter.
	in := []row{{Name: "zeta"}, {Name: "Émile"}, {Name: "apple"}}

	out := query.Sort(in, "name", query.Asc, rowOptions())

	assert.Equal(t, []string{"apple", "Émile", "zeta"}, names(out))
}

func TestSort_Stability(t *testing.T) {
	// Three items tie on price; their input order must survive in both
	// directions.
	in := []row{
		{Name: "first", Price: 100},
		{Name: "expensive", Price: 300},
		{Name: "second", Price: 100},
		{Name: "third", Price: 100},
		{Name: "cheap", Price: 50},
	}

	asc := query.Sort(in, "price", query.Asc, rowOptions())
	require.Equal(t, []string{"cheap", "first", "second", "third", "expensive"}, names(asc))

	desc := query.Sort(in, "price", query.Desc, rowOptions())
	require.Equal(t, []string{"expensive", "first", "second", "third", "cheap"}, names(desc))
}

func TestSort_NilValuesSortLastBothDirections(t *testing.T) {
	one, three := 1, 3
	in := []row{
		{Name: "unranked-a"},
		{Name: "third", Rank: &three},
		{Name: "unranked-b"},
		{Name: "first", Rank: &one},
	}

	asc := query.Sort(in, "rank", query.Asc, rowOptions())
	assert.Equal(t, []string{"first", "third", "unranked-a", "unranked-b"}, names(asc))

	desc := query.Sort(in, "rank", query.Desc, rowOptions())
	assert.Equal(t, []string{"third", "first", "unranked-a", "unranked-b"}, names(desc))
}

func TestSort_BoolFalseBeforeTrue(t *testing.T) {
	in := []row{{Name: "stocked", Stock: true}, {Name: "out", Stock: false}}

	out := query.Sort(in, "stock", query.Asc, rowOptions())

	assert.Equal(t, []string{"out", "stocked"}, names(out))
}

func TestSort_DatesByEpoch(t *testing.T) {
	in := []row{
		{Name: "newer", Added: "2026-03-01T10:00:00Z"},
		{Name: "older", Added: "2025-01-15T08:30:00Z"},
	}

	out := query.Sort(in, "added", query.Asc, rowOptions())

	assert.Equal(t, []string{"older", "newer"}, names(out))
}

func TestSort_UnknownKeyReturnsCopyUnchanged(t *testing.T) {
	in := []row{{Name: "b"}, {Name: "a"}}

	out := query.Sort(in, "nope", query.Asc, rowOptions())

	assert.Equal(t, names(in), names(out))
}

func TestSortState_Select(t *testing.T) {
	t.Run("new key resets to ascending", func(t *testing.T) {
		s := query.SortState{Key: "price", Direction: query.Desc}
		s.Select("name")
		assert.Equal(t, "name", s.Key)
		assert.Equal(t, query.Asc, s.Direction)
	})

	t.Run("re-selecting active key toggles direction", func(t *testing.T) {
		s := query.SortState{Key: "price", Direction: query.Asc}
		s.Select("price")
		assert.Equal(t, query.Desc, s.Direction)
		s.Select("price")
		assert.Equal(t, query.Asc, s.Direction)
	})
}
