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

package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bvsbharat/ai-agent-platform/models"
)

func TestParseListingParams(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedPage   int
		expectedFilter models.ListingFilter
	}{
		{
			name:         "defaults when no params given",
			url:          "/agents",
			expectedPage: 1,
			expectedFilter: models.ListingFilter{
				Sort:   models.SortNewest,
				Limit:  12,
				Offset: 0,
			},
		},
		{
			name:         "explicit page and limit",
			url:          "/agents?page=3&limit=20",
			expectedPage: 3,
			expectedFilter: models.ListingFilter{
				Sort:   models.SortNewest,
				Limit:  20,
				Offset: 40,
			},
		},
		{
			name:         "zero and negative values fall back to defaults",
			url:          "/agents?page=0&limit=-5",
			expectedPage: 1,
			expectedFilter: models.ListingFilter{
				Sort:   models.SortNewest,
				Limit:  12,
				Offset: 0,
			},
		},
		{
			name:         "limit clamped to maximum",
			url:          "/agents?page=2&limit=5000",
			expectedPage: 2,
			expectedFilter: models.ListingFilter{
				Sort:   models.SortNewest,
				Limit:  100,
				Offset: 100,
			},
		},
		{
			name:         "malformed numbers fall back to defaults",
			url:          "/agents?page=abc&limit=xyz",
			expectedPage: 1,
			expectedFilter: models.ListingFilter{
				Sort:   models.SortNewest,
				Limit:  12,
				Offset: 0,
			},
		},
		{
			name:         "category search and sort pass through",
			url:          "/agents?category=Finance&search=trading&sort=popular",
			expectedPage: 1,
			expectedFilter: models.ListingFilter{
				Category: "Finance",
				Search:   "trading",
				Sort:     models.SortPopular,
				Limit:    12,
				Offset:   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			filter, page := parseListingParams(r)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedFilter, filter)
		})
	}
}
