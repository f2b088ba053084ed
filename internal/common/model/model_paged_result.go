/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package model

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// DefaultPageSize is the upstream page size used by the length heuristic:
// a bare-array page with at least this many rows is assumed to have a
// successor page.
const DefaultPageSize = 10

// Envelope is the upstream response wrapper common to all list endpoints.
// Message is kept raw because its shape varies per endpoint and per
// deployment (bare array, paging envelope, or a single object).
type Envelope struct {
	Code       int                  `json:"code,omitempty"`
	Status     string               `json:"status,omitempty"`
	TotalCount int                  `json:"totalCount,omitempty"`
	Message    jsoniter.RawMessage  `json:"message,omitempty"`
}

// Page is one decoded page of upstream rows.
type Page[T any] struct {
	Items         []T
	Last          bool // meaningful only when HasLast is true
	HasLast       bool // envelope carried an explicit last flag
	TotalElements int
}

// HasMore reports whether a successor page should be assumed: the explicit
// last flag wins when present, otherwise the page-size heuristic applies.
func (p Page[T]) HasMore() bool {
	if p.HasLast {
		return !p.Last
	}
	return len(p.Items) >= DefaultPageSize
}

// DecodePage decodes a raw message that is either a bare array of rows, a
// paging envelope {content, last, totalElements}, or a single object
// (treated as a one-row page). A nil or unreadable message decodes to an
// empty page rather than an error; row-level decode failures drop only the
// affected row.
func DecodePage[T any](raw jsoniter.RawMessage) Page[T] {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var page Page[T]

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return page
	}

	if trimmed[0] == '[' {
		var raws []jsoniter.RawMessage
		if err := json.Unmarshal(raw, &raws); err != nil {
			return page
		}
		page.Items = decodeRows[T](raws)
		page.TotalElements = len(page.Items)
		return page
	}

	var envelope struct {
		Content       []jsoniter.RawMessage `json:"content"`
		Last          *bool                 `json:"last"`
		TotalElements int                   `json:"totalElements"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Content != nil {
		page.Items = decodeRows[T](envelope.Content)
		if envelope.Last != nil {
			page.Last = *envelope.Last
			page.HasLast = true
		}
		page.TotalElements = envelope.TotalElements
		if page.TotalElements == 0 {
			page.TotalElements = len(page.Items)
		}
		return page
	}

	// Single object fallback.
	var one T
	if err := json.Unmarshal(raw, &one); err == nil {
		page.Items = []T{one}
		page.TotalElements = 1
	}
	return page
}

func decodeRows[T any](raws []jsoniter.RawMessage) []T {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	items := make([]T, 0, len(raws))
	for _, r := range raws {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}
