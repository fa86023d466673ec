// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// HttpRequest describes an outbound HTTP request to be sent via SendRequest.
type HttpRequest struct {
	// Name identifies the request in log lines.
	Name        string
	Method      string
	URL         string
	QueryParams url.Values
	Headers     map[string]string
	// Body, when non-nil, is JSON-encoded into the request body.
	Body any
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	reqURL := r.URL
	if len(r.QueryParams) > 0 {
		parsed, err := url.Parse(r.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid request URL: %w", err)
		}
		query := parsed.Query()
		for key, values := range r.QueryParams {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		parsed.RawQuery = query.Encode()
		reqURL = parsed.String()
	}

	var body *bytes.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.Method, reqURL, body)
	if err != nil {
		return nil, err
	}
	if r.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range r.Headers {
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}

// HttpError represents a non-success HTTP response.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
