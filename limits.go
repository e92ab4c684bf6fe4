package elementpager

import (
	"math"
	"reflect"

	"github.com/samber/lo"
)

const DefaultItemsPerPage = 1

// IsNormalizedItemsPerPage returns the effective page size and whether the
// input was already valid. Non-positive sizes fall back to DefaultItemsPerPage.
func IsNormalizedItemsPerPage(itemsPerPage int) (int, bool) {
	if itemsPerPage <= 0 {
		return DefaultItemsPerPage, false
	}

	return itemsPerPage, true
}

func NormalizeItemsPerPage(itemsPerPage int) int {
	ret, _ := IsNormalizedItemsPerPage(itemsPerPage)
	return ret
}

// PageCount returns ceil(elementCount / itemsPerPage). itemsPerPage is
// normalized first.
func PageCount(elementCount, itemsPerPage int) int {
	if elementCount <= 0 {
		return 0
	}
	itemsPerPage = NormalizeItemsPerPage(itemsPerPage)

	return (elementCount + itemsPerPage - 1) / itemsPerPage
}

// IsNormalizedPage clamps page into [0, pageCount-1] and reports whether it
// was already in range. With no pages at all the result is always 0.
func IsNormalizedPage(page, pageCount int) (int, bool) {
	if pageCount <= 0 {
		return 0, page == 0
	}

	ret := lo.Clamp(page, 0, pageCount-1)

	return ret, ret == page
}

func NormalizePage(page, pageCount int) int {
	ret, _ := IsNormalizedPage(page, pageCount)
	return ret
}

// LimitPageNumber resolves an arbitrary value to a page index in
// [0, pageCount-1]:
//   - integer and unsigned kinds are clamped to the nearest bound;
//   - float kinds are truncated and clamped, NaN resolves to 0;
//   - everything else (strings included) resolves to 0.
func LimitPageNumber(v any, pageCount int) int {
	if pageCount <= 0 {
		return 0
	}
	maxPage := pageCount - 1

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return 0
		} else if n > int64(maxPage) {
			return maxPage
		}

		return int(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > uint64(maxPage) {
			return maxPage
		}

		return int(u)

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return 0
		}

		f = math.Trunc(f)
		if f < 0 {
			return 0
		} else if f > float64(maxPage) {
			return maxPage
		}

		return int(f)

	default:
		return 0
	}
}

// PageBounds returns the half-open element range [start, end) of page within
// a sequence of elementCount elements. The last page may be short.
func PageBounds(page, itemsPerPage, elementCount int) (start, end int) {
	itemsPerPage = NormalizeItemsPerPage(itemsPerPage)
	page = NormalizePage(page, PageCount(elementCount, itemsPerPage))

	start = page * itemsPerPage
	end = min(start+itemsPerPage, max(elementCount, 0))

	return min(start, end), end
}
