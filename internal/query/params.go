// Package query carries list-page state: pagination, search and named filter
// criteria. Params round-trip losslessly through url.Values, so a list view
// can be reproduced from a shared link.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100 // server-enforced page cap
)

// Reserved query keys; everything else is an entity filter field.
const (
	keyPage    = "page"
	keyLimit   = "limit"
	keySearch  = "q"
	keySortBy  = "sortBy"
	keySortDir = "sortDir"
)

// ListParams is the decoded state of one list page. An empty Fields entry
// never exists: absent means "no constraint".
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	SortBy  string
	SortDir string
	Fields  map[string]string
}

// Parse decodes url.Values into normalized ListParams. fieldNames whitelists
// the entity filter keys; unknown keys are ignored. Absent or empty fields
// decode to "not set", never to an empty map entry.
func Parse(values url.Values, fieldNames ...string) ListParams {
	p := ListParams{
		Page:   1,
		Limit:  DefaultLimit,
		Fields: map[string]string{},
	}

	if n, err := strconv.Atoi(strings.TrimSpace(values.Get(keyPage))); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(values.Get(keyLimit))); err == nil && n >= 1 {
		p.Limit = n
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	p.Search = strings.TrimSpace(values.Get(keySearch))
	p.SortBy = strings.TrimSpace(values.Get(keySortBy))
	dir := strings.ToLower(strings.TrimSpace(values.Get(keySortDir)))
	if dir == "asc" || dir == "desc" {
		p.SortDir = dir
	}

	for _, name := range fieldNames {
		v := strings.TrimSpace(values.Get(name))
		if v != "" {
			p.Fields[name] = v
		}
	}
	return p
}

// Encode serializes params back into url.Values. Defaults and unset fields
// are omitted entirely so the encoded form stays readable; a cleared filter
// disappears from the URL instead of lingering as an empty string.
func (p ListParams) Encode() url.Values {
	values := url.Values{}
	if p.Page > 1 {
		values.Set(keyPage, strconv.Itoa(p.Page))
	}
	if p.Limit > 0 && p.Limit != DefaultLimit {
		limit := p.Limit
		if limit > MaxLimit {
			limit = MaxLimit
		}
		values.Set(keyLimit, strconv.Itoa(limit))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		values.Set(keySearch, s)
	}
	if s := strings.TrimSpace(p.SortBy); s != "" {
		values.Set(keySortBy, s)
	}
	if s := strings.TrimSpace(p.SortDir); s == "asc" || s == "desc" {
		values.Set(keySortDir, s)
	}
	for name, v := range p.Fields {
		if strings.TrimSpace(v) != "" {
			values.Set(name, strings.TrimSpace(v))
		}
	}
	return values
}

// WithField merges one criterion into a copy of p. An empty value clears the
// field entirely (it will be absent from the next Encode).
func (p ListParams) WithField(name, value string) ListParams {
	fields := make(map[string]string, len(p.Fields)+1)
	for k, v := range p.Fields {
		fields[k] = v
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(fields, name)
	} else {
		fields[name] = value
	}
	p.Fields = fields
	return p
}

// Field returns the named criterion or "" when unset.
func (p ListParams) Field(name string) string {
	return p.Fields[name]
}

// IntField parses the named criterion as an integer identifier.
func (p ListParams) IntField(name string) (int64, bool) {
	v, ok := p.Fields[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// EnumField returns the lowercased criterion when it is one of allowed.
func (p ListParams) EnumField(name string, allowed ...string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(p.Fields[name]))
	if v == "" {
		return "", false
	}
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}

// Offset converts page/limit into a SQL offset.
func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.CappedLimit()
}

// CappedLimit applies the default and the server cap.
func (p ListParams) CappedLimit() int {
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}

// PageMeta is the pagination block returned with every list response.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Meta builds pagination metadata from a total row count.
func (p ListParams) Meta(total int64) PageMeta {
	limit := p.CappedLimit()
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
