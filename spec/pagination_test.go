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

package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int64
		expected Pagination
	}{
		{
			name:  "empty result set",
			page:  1,
			limit: 12,
			total: 0,
			expected: Pagination{
				Page: 1, Limit: 12, Total: 0, TotalPages: 0,
				HasNext: false, HasPrev: false,
			},
		},
		{
			name:  "single partial page",
			page:  1,
			limit: 12,
			total: 5,
			expected: Pagination{
				Page: 1, Limit: 12, Total: 5, TotalPages: 1,
				HasNext: false, HasPrev: false,
			},
		},
		{
			name:  "exact multiple of limit",
			page:  1,
			limit: 10,
			total: 30,
			expected: Pagination{
				Page: 1, Limit: 10, Total: 30, TotalPages: 3,
				HasNext: true, HasPrev: false,
			},
		},
		{
			name:  "middle page has both neighbors",
			page:  2,
			limit: 10,
			total: 25,
			expected: Pagination{
				Page: 2, Limit: 10, Total: 25, TotalPages: 3,
				HasNext: true, HasPrev: true,
			},
		},
		{
			name:  "last page",
			page:  3,
			limit: 10,
			total: 25,
			expected: Pagination{
				Page: 3, Limit: 10, Total: 25, TotalPages: 3,
				HasNext: false, HasPrev: true,
			},
		},
		{
			name:  "page beyond the end",
			page:  9,
			limit: 10,
			total: 25,
			expected: Pagination{
				Page: 9, Limit: 10, Total: 25, TotalPages: 3,
				HasNext: false, HasPrev: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}
