package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

func fixture() []entity.Product {
	return []entity.Product{
		{ID: 1, Title: "Mouse", Price: 999, Category: "electronics"},
		{ID: 2, Title: "Laptop", Price: 40000, Category: "electronics"},
		{ID: 3, Title: "Desk", Price: 5000, Category: "furniture"},
		{ID: 4, Name: "mouse pad", Price: 300, Category: "Electronics"},
	}
}

func ids(list []entity.Product) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyPriceRangeScenario(t *testing.T) {
	cr := ParseCriteria("", "all", "1000", "", "priceAsc")

	got := Apply(fixture(), cr)

	require.Len(t, got, 2)
	assert.Equal(t, []int64{3, 2}, ids(got))
}

func TestApplyTextFilterCaseInsensitive(t *testing.T) {
	got := Apply(fixture(), Criteria{Search: "MOUSE", Category: CategoryAll})
	assert.Equal(t, []int64{1, 4}, ids(got))
}

func TestApplyEmptySearchPassesThrough(t *testing.T) {
	got := Apply(fixture(), Criteria{Category: CategoryAll})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestApplyCategoryCaseInsensitive(t *testing.T) {
	got := Apply(fixture(), Criteria{Category: "ELECTRONICS"})
	assert.Equal(t, []int64{1, 2, 4}, ids(got))
}

func TestApplySortKeys(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int64
	}{
		{SortDefault, []int64{1, 2, 3, 4}},
		{SortPriceAsc, []int64{4, 1, 3, 2}},
		{SortPriceDesc, []int64{2, 3, 1, 4}},
		{SortNameAsc, []int64{3, 2, 1, 4}},
		{SortNameDesc, []int64{4, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := Apply(fixture(), Criteria{Category: CategoryAll, Sort: tt.key})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	cr := Criteria{Search: "o", Category: "electronics", Sort: SortPriceDesc}

	once := Apply(fixture(), cr)
	twice := Apply(once, cr)

	assert.Equal(t, once, twice)
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := fixture()
	Apply(src, Criteria{Category: CategoryAll, Sort: SortPriceAsc})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(src))
}

func TestParseCriteriaBounds(t *testing.T) {
	cr := ParseCriteria("", "", "abc", "250.5", "bogus")

	assert.Nil(t, cr.MinPrice, "non-numeric min is unset")
	require.NotNil(t, cr.MaxPrice)
	assert.Equal(t, 250.5, *cr.MaxPrice)
	assert.Equal(t, CategoryAll, cr.Category)
	assert.Equal(t, SortDefault, cr.Sort)
}
