package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortNameAsc   SortKey = "nameAsc"
	SortNameDesc  SortKey = "nameDesc"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Criteria fully determines the display list for a given catalog. It is
// stateless: the same catalog and criteria always produce the same list.
type Criteria struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortKey
}

// ParseCriteria builds Criteria from raw query values. Non-numeric price
// bounds are treated as unset, unknown sort keys fall back to default.
func ParseCriteria(search, category, minPrice, maxPrice, sortKey string) Criteria {
	cr := Criteria{
		Search:   search,
		Category: category,
		MinPrice: parseBound(minPrice),
		MaxPrice: parseBound(maxPrice),
		Sort:     SortDefault,
	}
	if cr.Category == "" {
		cr.Category = CategoryAll
	}
	switch SortKey(sortKey) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		cr.Sort = SortKey(sortKey)
	}
	return cr
}

func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Apply runs the filter/sort pipeline over the catalog: text filter,
// category filter, price range, then a stable sort. The source slice is
// never mutated and no state survives between calls, so applying the
// pipeline to its own output is a fixed point.
func Apply(catalog []entity.Product, cr Criteria) []entity.Product {
	out := make([]entity.Product, 0, len(catalog))

	q := strings.ToLower(strings.TrimSpace(cr.Search))
	cat := strings.ToLower(strings.TrimSpace(cr.Category))

	for _, p := range catalog {
		if q != "" && !strings.Contains(strings.ToLower(p.DisplayTitle()), q) {
			continue
		}
		if cat != "" && cat != CategoryAll && strings.ToLower(p.Category) != cat {
			continue
		}
		price := float64(p.Price)
		if cr.MinPrice != nil && price < *cr.MinPrice {
			continue
		}
		if cr.MaxPrice != nil && price > *cr.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, cr.Sort)
	return out
}

func sortProducts(list []entity.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case SortNameAsc:
		cl := newCollator()
		sort.SliceStable(list, func(i, j int) bool {
			return cl.CompareString(list[i].DisplayTitle(), list[j].DisplayTitle()) < 0
		})
	case SortNameDesc:
		cl := newCollator()
		sort.SliceStable(list, func(i, j int) bool {
			return cl.CompareString(list[i].DisplayTitle(), list[j].DisplayTitle()) > 0
		})
	}
	// SortDefault keeps catalog order.
}

func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
