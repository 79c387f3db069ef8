package store_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colonnade/store"
	"colonnade/store/memo"
)

func newAdapter(t *testing.T) (*store.Adapter, *memo.Memo) {
	t.Helper()
	mm := memo.New()
	return store.New(context.Background(), mm, nil), mm
}

func TestAdapterGetDefaults(t *testing.T) {
	tests := []struct {
		name  string
		items map[string]string
	}{
		{name: "nothing stored"},
		{name: "malformed json", items: map[string]string{"TABLE_HEADER_CONFIG": "{not json"}},
		{name: "not an object", items: map[string]string{"TABLE_HEADER_CONFIG": `["a"]`}},
		{name: "other key only", items: map[string]string{"TABLE_HEADER_CONFIG": `{"other":["a"]}`}},
		{name: "empty item", items: map[string]string{"TABLE_HEADER_CONFIG": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adp, mm := newAdapter(t)
			for name, val := range tt.items {
				require.NoError(t, mm.SetItem(name, val))
			}

			got := adp.Get(store.HeaderCategory, "mine", "fallback")
			assert.Equal(t, "fallback", got)
		})
	}
}

func TestAdapterSetKeepsOtherKeys(t *testing.T) {
	adp, mm := newAdapter(t)

	adp.Set(store.HeaderCategory, "one", []string{"a"})
	adp.Set(store.HeaderCategory, "two", []string{"b", "c"})

	items := mm.Items()
	assert.JSONEq(t, `{"one":["a"],"two":["b","c"]}`, items["TABLE_HEADER_CONFIG"])
	assert.Len(t, items, 1)

	assert.Equal(t, []string{"a"}, store.Visible(adp, "one"))
	assert.Equal(t, []string{"b", "c"}, store.Visible(adp, "two"))
}

func TestAdapterSetReplacesMalformed(t *testing.T) {
	adp, mm := newAdapter(t)
	require.NoError(t, mm.SetItem("TABLE_HEADER_SORT_CONFIG", "]]"))

	store.SetOrder(adp, "mine", []string{"b", "a"})

	assert.Equal(t, []string{"b", "a"}, store.Order(adp, "mine"))
}

func TestAdapterSetIgnoresEmptyKey(t *testing.T) {
	adp, mm := newAdapter(t)

	adp.Set(store.WidthCategory, "", map[string]int{"a": 1})

	assert.Empty(t, mm.Items())
}

type brokenMedium struct {
	sets int
}

func (bm *brokenMedium) GetItem(name string) (string, bool, error) {
	return "", false, errors.New("medium unavailable")
}

func (bm *brokenMedium) SetItem(name, value string) error {
	bm.sets++
	return errors.New("medium unavailable")
}

func TestAdapterMediumFailures(t *testing.T) {
	bm := &brokenMedium{}
	adp := store.New(context.Background(), bm, nil)

	assert.Equal(t, 7, store.PageSize(adp, "mine", 7))

	store.SetPageSize(adp, "mine", 20)
	assert.Zero(t, bm.sets, "no write after a failed read")
}

func TestWidths(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		exp    map[string]int
	}{
		{
			name:   "numbers",
			stored: `{"k":{"a":150,"b":80.9}}`,
			exp:    map[string]int{"a": 150, "b": 80},
		},
		{
			name:   "non numeric coerced to zero",
			stored: `{"k":{"a":"wide","b":"42","c":null}}`,
			exp:    map[string]int{"a": 0, "b": 42, "c": 0},
		},
		{
			name:   "not a mapping",
			stored: `{"k":[1,2]}`,
			exp:    map[string]int{},
		},
		{
			name: "absent",
			exp:  map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adp, mm := newAdapter(t)
			if tt.stored != "" {
				require.NoError(t, mm.SetItem("TABLE_COL_WIDTH_CONFIG", tt.stored))
			}

			assert.Equal(t, tt.exp, store.Widths(adp, "k"))
		})
	}
}

func TestVisibleAbsentVersusEmpty(t *testing.T) {
	adp, _ := newAdapter(t)

	assert.Nil(t, store.Visible(adp, "k"))

	store.SetVisible(adp, "k", nil)
	got := store.Visible(adp, "k")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrderDropsNonStrings(t *testing.T) {
	adp, mm := newAdapter(t)
	require.NoError(t, mm.SetItem("TABLE_HEADER_SORT_CONFIG", `{"k":["a",3,"",null,"b"]}`))

	assert.Equal(t, []string{"a", "b"}, store.Order(adp, "k"))
}

func TestPageSize(t *testing.T) {
	adp, mm := newAdapter(t)

	assert.Equal(t, store.DefaultPageSize, store.PageSize(adp, "k", store.DefaultPageSize))

	store.SetPageSize(adp, "k", 25)
	assert.Equal(t, 25, store.PageSize(adp, "k", store.DefaultPageSize))
	assert.JSONEq(t, `{"k":25}`, mm.Items()["pageSizeKey"])

	require.NoError(t, mm.SetItem("pageSizeKey", `{"k":"lots"}`))
	assert.Equal(t, 10, store.PageSize(adp, "k", 10))
}
