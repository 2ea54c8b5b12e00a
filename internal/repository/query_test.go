package repository

import (
	"testing"

	"github.com/adminboard/adminboard/internal/types"
	"github.com/stretchr/testify/assert"
)

type listItem struct {
	name     string
	location string
	status   types.Status
}

func newListPlan() listPlan[listItem] {
	return listPlan[listItem]{
		status: func(i listItem) types.Status {
			return i.status
		},
		searchFields: func(i listItem) []string {
			return []string{i.name, i.location}
		},
	}
}

func sampleItems() []listItem {
	return []listItem{
		{name: "John Doe", location: "New York", status: types.StatusActive},
		{name: "Jane Smith", location: "Chicago", status: types.StatusActive},
		{name: "Mike Johnson", location: "Seattle", status: types.StatusInactive},
		{name: "Sarah Connor", location: "Los Angeles", status: types.StatusActive},
	}
}

func TestListPlanFilter(t *testing.T) {
	plan := newListPlan()

	testCases := []struct {
		name     string
		filter   *types.QueryFilter
		expected []string
	}{
		{
			name:     "nil_filter_returns_everything",
			filter:   nil,
			expected: []string{"John Doe", "Jane Smith", "Mike Johnson", "Sarah Connor"},
		},
		{
			name:     "empty_filter_returns_everything",
			filter:   &types.QueryFilter{},
			expected: []string{"John Doe", "Jane Smith", "Mike Johnson", "Sarah Connor"},
		},
		{
			name:     "status_active",
			filter:   &types.QueryFilter{Status: types.StatusActive},
			expected: []string{"John Doe", "Jane Smith", "Sarah Connor"},
		},
		{
			name:     "status_inactive",
			filter:   &types.QueryFilter{Status: types.StatusInactive},
			expected: []string{"Mike Johnson"},
		},
		{
			name:     "search_is_case_insensitive",
			filter:   &types.QueryFilter{Search: "JOHN"},
			expected: []string{"John Doe", "Mike Johnson"},
		},
		{
			name:     "search_matches_any_field",
			filter:   &types.QueryFilter{Search: "chicago"},
			expected: []string{"Jane Smith"},
		},
		{
			name:     "status_then_search",
			filter:   &types.QueryFilter{Status: types.StatusActive, Search: "john"},
			expected: []string{"John Doe"},
		},
		{
			name:     "whitespace_search_is_ignored",
			filter:   &types.QueryFilter{Search: "   "},
			expected: []string{"John Doe", "Jane Smith", "Mike Johnson", "Sarah Connor"},
		},
		{
			name:     "no_match",
			filter:   &types.QueryFilter{Search: "boston"},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := plan.filter(sampleItems(), tc.filter)
			names := make([]string, 0, len(got))
			for _, item := range got {
				names = append(names, item.name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestListPlanRun(t *testing.T) {
	plan := newListPlan()

	t.Run("total_reflects_filtered_set_not_page", func(t *testing.T) {
		page, total := plan.run(sampleItems(), &types.QueryFilter{
			Status: types.StatusActive,
			Limit:  "2",
		})
		assert.Len(t, page, 2)
		assert.Equal(t, 3, total)
	})

	t.Run("second_page_holds_remainder", func(t *testing.T) {
		page, total := plan.run(sampleItems(), &types.QueryFilter{
			Status: types.StatusActive,
			Page:   "2",
			Limit:  "2",
		})
		assert.Len(t, page, 1)
		assert.Equal(t, "Sarah Connor", page[0].name)
		assert.Equal(t, 3, total)
	})

	t.Run("page_past_end_is_empty", func(t *testing.T) {
		page, total := plan.run(sampleItems(), &types.QueryFilter{Page: "99"})
		assert.Empty(t, page)
		assert.Equal(t, 4, total)
	})

	t.Run("nil_filter_skips_pagination", func(t *testing.T) {
		page, total := plan.run(sampleItems(), nil)
		assert.Len(t, page, 4)
		assert.Equal(t, 4, total)
	})
}
