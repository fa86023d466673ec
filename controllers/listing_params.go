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
	"net/http"
	"strconv"

	"github.com/bvsbharat/ai-agent-platform/models"
)

// Listing query parameter defaults and bounds
const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 100
)

// getIntQueryParam parses an integer query parameter, falling back to def
// when the parameter is absent or malformed.
func getIntQueryParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// parseListingParams reads the common listing query parameters. Out-of-range
// page and limit values are clamped rather than rejected.
func parseListingParams(r *http.Request) (models.ListingFilter, int) {
	query := r.URL.Query()

	page := getIntQueryParam(r, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := getIntQueryParam(r, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := models.ListingFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Sort:     query.Get("sort"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	if filter.Sort == "" {
		filter.Sort = models.SortNewest
	}
	return filter, page
}
