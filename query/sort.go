package query

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction selects ascending or descending order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ValueKind tells the sorter how to compare extracted values
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindDate
	KindBool
)

// SortOption declares one sortable key: how to extract the value from an
// item and how to compare it. A nil Value extractor is not allowed.
type SortOption[T any] struct {
	Key   string
	Label string
	Kind  ValueKind
	Value func(T) interface{}
}

// Sort returns a new slice ordered by the named key. The input is never
// mutated. Items whose extracted value is nil sort after all defined
// values in both directions; ties keep their input order (stable sort).
func Sort[T any](items []T, key string, dir Direction, opts []SortOption[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	var opt *SortOption[T]
	for i := range opts {
		if opts[i].Key == key {
			opt = &opts[i]
			break
		}
	}
	if opt == nil || opt.Value == nil {
		return out
	}

	// Collators buffer internally and are not safe to share across
	// goroutines, so each sort gets its own.
	var col *collate.Collator
	if opt.Kind == KindString {
		col = collate.New(language.Und, collate.IgnoreCase)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := opt.Value(out[i])
		b := opt.Value(out[j])

		// Nil placement is direction-independent: nils always sort last.
		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}

		c := compare(a, b, opt.Kind, col)
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

// compare orders two non-nil values of the declared kind. Strings use
// case-insensitive locale collation, not byte order. Values of an
// unexpected dynamic type compare equal.
func compare(a, b interface{}, kind ValueKind, col *collate.Collator) int {
	switch kind {
	case KindString:
		as, aok := a.(string)
		bs, bok := b.(string)
		if !aok || !bok {
			return 0
		}
		return col.CompareString(as, bs)
	case KindNumber:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if !aok || !bok {
			return 0
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case KindDate:
		at, aok := toTime(a)
		bt, bok := toTime(b)
		if !aok || !bok {
			return 0
		}
		am := at.UnixMilli()
		bm := bt.UnixMilli()
		switch {
		case am < bm:
			return -1
		case am > bm:
			return 1
		}
		return 0
	case KindBool:
		ab, aok := a.(bool)
		bb, bok := b.(bool)
		if !aok || !bok {
			return 0
		}
		// false orders before true
		switch {
		case !ab && bb:
			return -1
		case ab && !bb:
			return 1
		}
		return 0
	}
	return 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toTime(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		t, err := time.Parse(time.RFC3339, d)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// SortState is the transient UI sort selection: one active key plus a
// direction. It is not persisted.
type SortState struct {
	Key       string
	Direction Direction
}

// Select applies the key-selection rule: re-selecting the active key
// toggles direction, selecting a new key resets to ascending.
func (s *SortState) Select(key string) {
	if s.Key == key {
		if s.Direction == Asc {
			s.Direction = Desc
		} else {
			s.Direction = Asc
		}
		return
	}
	s.Key = key
	s.Direction = Asc
}

// Apply sorts items by the state's current key and direction
func Apply[T any](s SortState, items []T, opts []SortOption[T]) []T {
	return Sort(items, s.Key, s.Direction, opts)
}
