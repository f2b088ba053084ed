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

// Package client talks to the upstream AAS repository API. Responses are
// decoded tolerantly: the upstream wraps payloads in a {code, message}
// envelope whose message shape varies per endpoint and deployment, and
// broken rows are dropped instead of failing the request.
package client

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
)

// allSubmodelsPageSize is the upstream page size of the submodel listing,
// used as the has-more heuristic when the envelope carries no totalCount.
const allSubmodelsPageSize = 60

// maxListPages caps full-listing loops against upstreams that keep
// serving the same page forever.
const maxListPages = 200

// Client is the upstream AAS repository client.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	json    jsoniter.API
}

// New creates a repository client. cache may be nil to disable the
// read-through submodel cache.
func New(cfg *common.Config, cache *Cache) *Client {
	timeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		json:    jsoniter.ConfigCompatibleWithStandardLibrary,
	}
}

// get performs a GET and returns the decoded envelope. A response without
// the envelope wrapper is returned as an envelope whose message is the
// whole body.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*model.Envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.NewErrUpstream(fmt.Sprintf("GET %s: %v", path, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewErrUpstream(fmt.Sprintf("GET %s: read body: %v", path, err))
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, common.NewErrNotFound(path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.NewErrUpstream(fmt.Sprintf("GET %s: status %d", path, resp.StatusCode))
	}

	var envelope model.Envelope
	if err := c.json.Unmarshal(body, &envelope); err != nil || len(envelope.Message) == 0 {
		envelope = model.Envelope{Message: body}
	}
	return &envelope, nil
}

func pageQuery(page int, keyword string) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if keyword != "" {
		query.Set("keyword", keyword)
	}
	return query
}

// ListShells fetches one page of shells, optionally narrowed by keyword.
func (c *Client) ListShells(ctx context.Context, page int, keyword string) (model.Page[model.AssetAdministrationShell], error) {
	envelope, err := c.get(ctx, "/aas", pageQuery(page, keyword))
	if err != nil {
		return model.Page[model.AssetAdministrationShell]{}, err
	}
	return model.DecodePage[model.AssetAdministrationShell](envelope.Message), nil
}

// ListAllShells pages through the whole shell listing, for dashboards and
// menu counts. It stops at the first empty page.
func (c *Client) ListAllShells(ctx context.Context) ([]model.AssetAdministrationShell, error) {
	var all []model.AssetAdministrationShell
	for page := 1; page <= maxListPages; page++ {
		result, err := c.ListShells(ctx, page, "")
		if err != nil {
			return nil, err
		}
		if len(result.Items) == 0 {
			break
		}
		all = append(all, result.Items...)
	}
	log.Printf("📋 Loaded %d shells from the repository", len(all))
	return all, nil
}

// GetShell fetches one shell by identifier.
func (c *Client) GetShell(ctx context.Context, id string) (*model.AssetAdministrationShell, error) {
	envelope, err := c.get(ctx, "/aas/"+common.EncodeString(id), nil)
	if err != nil {
		return nil, err
	}
	var shell model.AssetAdministrationShell
	if err := c.json.Unmarshal(envelope.Message, &shell); err != nil {
		return nil, common.NewErrUpstream("decode shell: " + err.Error())
	}
	return &shell, nil
}

// ListShellSubmodels fetches the submodel bodies referenced by one shell.
// The upstream answers with either one submodel or an array.
func (c *Client) ListShellSubmodels(ctx context.Context, aasID string) ([]model.Submodel, error) {
	envelope, err := c.get(ctx, "/aas/submodel/"+common.EncodeString(aasID), nil)
	if err != nil {
		return nil, err
	}
	return model.DecodePage[model.Submodel](envelope.Message).Items, nil
}

// ListSubmodels fetches one page of the submodel listing. The returned
// total count is the envelope's, not the page's.
func (c *Client) ListSubmodels(ctx context.Context, page int) (model.Page[model.Submodel], int, error) {
	envelope, err := c.get(ctx, "/submodel", pageQuery(page, ""))
	if err != nil {
		return model.Page[model.Submodel]{}, 0, err
	}
	return model.DecodePage[model.Submodel](envelope.Message), envelope.TotalCount, nil
}

// ListAllSubmodels pages through the whole submodel listing. Progress is
// bounded by the envelope's totalCount when present and by the upstream
// page size heuristic otherwise.
func (c *Client) ListAllSubmodels(ctx context.Context) ([]model.Submodel, error) {
	var all []model.Submodel
	for page := 1; page <= maxListPages; page++ {
		result, totalCount, err := c.ListSubmodels(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(result.Items) == 0 {
			break
		}
		all = append(all, result.Items...)

		if totalCount > 0 {
			if len(all) >= totalCount {
				break
			}
		} else if len(result.Items) < allSubmodelsPageSize {
			break
		}
	}
	log.Printf("📋 Loaded %d submodels from the repository", len(all))
	return all, nil
}

// GetSubmodel fetches one submodel body by identifier, through the
// read-through cache when one is configured.
func (c *Client) GetSubmodel(ctx context.Context, id string) (*model.Submodel, error) {
	if c.cache != nil {
		if cached := c.cache.Get(id); cached != nil {
			var sm model.Submodel
			if err := c.json.Unmarshal(cached, &sm); err == nil {
				return &sm, nil
			}
			// Unreadable cache entries are dropped and refetched.
			c.cache.Delete(id)
		}
	}

	envelope, err := c.get(ctx, "/submodel/"+common.EncodeString(id), nil)
	if err != nil {
		return nil, err
	}
	var sm model.Submodel
	if err := c.json.Unmarshal(envelope.Message, &sm); err != nil {
		return nil, common.NewErrUpstream("decode submodel: " + err.Error())
	}

	if c.cache != nil {
		if err := c.cache.Put(id, envelope.Message); err != nil {
			log.Printf("⚠️ Failed to cache submodel %s: %v", id, err)
		}
	}
	return &sm, nil
}

// ListConceptDescriptions fetches one page of concept descriptions,
// optionally narrowed by keyword.
func (c *Client) ListConceptDescriptions(ctx context.Context, page int, keyword string) (model.Page[model.ConceptDescription], error) {
	envelope, err := c.get(ctx, "/concept/description", pageQuery(page, keyword))
	if err != nil {
		return model.Page[model.ConceptDescription]{}, err
	}
	return model.DecodePage[model.ConceptDescription](envelope.Message), nil
}

// GetConceptDescription fetches one concept description by identifier.
func (c *Client) GetConceptDescription(ctx context.Context, id string) (*model.ConceptDescription, error) {
	envelope, err := c.get(ctx, "/concept/description/"+common.EncodeString(id), nil)
	if err != nil {
		return nil, err
	}
	var concept model.ConceptDescription
	if err := c.json.Unmarshal(envelope.Message, &concept); err != nil {
		return nil, common.NewErrUpstream("decode concept description: " + err.Error())
	}
	return &concept, nil
}

// SearchCombined runs the combined shell search: idShort keyword scoped by
// a globalAssetId process tag.
func (c *Client) SearchCombined(ctx context.Context, keyword, globalAssetID string, page int) (model.Page[model.AssetAdministrationShell], error) {
	query := pageQuery(page, keyword)
	if globalAssetID != "" {
		query.Set("globalAssetId", globalAssetID)
	}
	envelope, err := c.get(ctx, "/aas/search/combined", query)
	if err != nil {
		return model.Page[model.AssetAdministrationShell]{}, err
	}
	return model.DecodePage[model.AssetAdministrationShell](envelope.Message), nil
}

// SearchGlobalAssetID runs the globalAssetId shell search.
func (c *Client) SearchGlobalAssetID(ctx context.Context, keyword string, page int) (model.Page[model.AssetAdministrationShell], error) {
	envelope, err := c.get(ctx, "/aas/search/globalAssetId", pageQuery(page, keyword))
	if err != nil {
		return model.Page[model.AssetAdministrationShell]{}, err
	}
	return model.DecodePage[model.AssetAdministrationShell](envelope.Message), nil
}

// SearchRepository runs an attribute search under /repository, e.g.
// "welding/search/inputpowervoltage" or "search/aas". An empty value is
// allowed: some endpoints list everything then.
func (c *Client) SearchRepository(ctx context.Context, filterPath, value string) (model.RepositorySearchResult, error) {
	query := url.Values{}
	if value != "" {
		query.Set("value", value)
	}
	envelope, err := c.get(ctx, "/repository/"+filterPath, query)
	if err != nil {
		return model.RepositorySearchResult{}, err
	}
	return model.DecodeRepositorySearch(envelope.Message), nil
}

// SearchEntities runs the ALL-menu keyword search over one entity kind:
// "aas", "submodel" or "conceptdescription".
func (c *Client) SearchEntities(ctx context.Context, entityType, keyword string, page int) (*model.Envelope, error) {
	endpoint := entityType
	if entityType == "conceptdescription" {
		endpoint = "concept/description"
	}
	switch endpoint {
	case "aas", "submodel", "concept/description":
	default:
		return nil, common.NewErrBadRequest("invalid entity type for keyword search: " + entityType)
	}
	return c.get(ctx, "/"+endpoint, pageQuery(page, keyword))
}

// Health reports whether the upstream answers its health endpoint.
func (c *Client) Health(ctx context.Context) bool {
	_, err := c.get(ctx, "/health", nil)
	return err == nil
}
