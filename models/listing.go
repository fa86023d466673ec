// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package models

import "strings"

// Listing sort key constants
const (
	SortNewest   = "newest"
	SortTrending = "trending"
	SortPopular  = "popular"
)

// CategoryAll is the sentinel category value matching every category
const CategoryAll = "All"

// ListingFilter holds the common filter options of the listing endpoints
type ListingFilter struct {
	Category string // exact match; empty or "All" matches everything
	Search   string // case-insensitive substring match over name/title and description
	Sort     string // one of the Sort* keys; anything else behaves as SortNewest
	Limit    int
	Offset   int
}

// DefaultListingFilter returns a filter with sensible defaults
func DefaultListingFilter() ListingFilter {
	return ListingFilter{
		Sort:   SortNewest,
		Limit:  12,
		Offset: 0,
	}
}

// HasCategoryFilter reports whether a concrete category restriction applies.
// The "All" sentinel is matched case-insensitively since both spellings
// occur in client code.
func (f *ListingFilter) HasCategoryFilter() bool {
	return f.Category != "" && !strings.EqualFold(f.Category, CategoryAll)
}

// HasSearchFilter reports whether a search term restriction applies
func (f *ListingFilter) HasSearchFilter() bool {
	return f.Search != ""
}

// NormalizedSort maps the filter's sort key to a known one, falling back
// to SortNewest for anything unrecognized.
func (f *ListingFilter) NormalizedSort() string {
	switch f.Sort {
	case SortTrending, SortPopular:
		return f.Sort
	default:
		return SortNewest
	}
}
