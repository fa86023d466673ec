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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCategoryFilter(t *testing.T) {
	tests := []struct {
		category string
		expected bool
	}{
		{"", false},
		{"All", false},
		{"all", false},
		{"ALL", false},
		{"Finance", true},
		{"Automation", true},
	}

	for _, tt := range tests {
		filter := ListingFilter{Category: tt.category}
		assert.Equal(t, tt.expected, filter.HasCategoryFilter(), "category %q", tt.category)
	}
}

func TestNormalizedSort(t *testing.T) {
	tests := []struct {
		sort     string
		expected string
	}{
		{SortNewest, SortNewest},
		{SortTrending, SortTrending},
		{SortPopular, SortPopular},
		{"", SortNewest},
		{"garbage", SortNewest},
	}

	for _, tt := range tests {
		filter := ListingFilter{Sort: tt.sort}
		assert.Equal(t, tt.expected, filter.NormalizedSort(), "sort %q", tt.sort)
	}
}

func TestIsValidAgentCategory(t *testing.T) {
	for _, category := range AgentCategories {
		assert.True(t, IsValidAgentCategory(category), "category %q", category)
	}

	assert.False(t, IsValidAgentCategory(""))
	assert.False(t, IsValidAgentCategory("All"))
	assert.False(t, IsValidAgentCategory("finance"))
}
