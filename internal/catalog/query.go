package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Share-link query parameter names. The full filter/sort state round-trips
// through these so a catalog view can be reproduced from a URL.
const (
	paramSearch   = "search"
	paramStatus   = "status"
	paramTypes    = "types"
	paramAreaMin  = "area_min"
	paramAreaMax  = "area_max"
	paramPriceMin = "price_min"
	paramPriceMax = "price_max"
	paramSize     = "size"
	paramSort     = "sort"
	paramView     = "view"
)

// ParseQuery decodes filter/sort state from URL query parameters. Unknown or
// malformed values are ignored, never an error: a stale share link still loads.
func ParseQuery(values url.Values) FilterParams {
	p := FilterParams{
		Search: values.Get(paramSearch),
		View:   values.Get(paramView),
	}
	switch StatusBucket(values.Get(paramStatus)) {
	case BucketAvailable, BucketReserved, BucketSold:
		p.Status = StatusBucket(values.Get(paramStatus))
	}
	if raw := values.Get(paramTypes); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				p.Types = append(p.Types, t)
			}
		}
	}
	p.AreaMin = parseFloatParam(values.Get(paramAreaMin))
	p.AreaMax = parseFloatParam(values.Get(paramAreaMax))
	p.PriceMin = parseIntParam(values.Get(paramPriceMin))
	p.PriceMax = parseIntParam(values.Get(paramPriceMax))
	switch SizeBucket(values.Get(paramSize)) {
	case SizeSmall, SizeMedium, SizeLarge:
		p.Size = SizeBucket(values.Get(paramSize))
	}
	switch SortOrder(values.Get(paramSort)) {
	case SortByName, SortByPrice, SortByUnits, SortByLocation:
		p.SortBy = SortOrder(values.Get(paramSort))
	}
	return p
}

// QueryValues encodes the filter/sort state back into query parameters,
// omitting inactive dimensions. ParseQuery(p.QueryValues()) == p.
func (p FilterParams) QueryValues() url.Values {
	values := url.Values{}
	if p.Search != "" {
		values.Set(paramSearch, p.Search)
	}
	if p.Status != "" {
		values.Set(paramStatus, string(p.Status))
	}
	if len(p.Types) > 0 {
		values.Set(paramTypes, strings.Join(p.Types, ","))
	}
	if p.AreaMin != nil {
		values.Set(paramAreaMin, strconv.FormatFloat(*p.AreaMin, 'f', -1, 64))
	}
	if p.AreaMax != nil {
		values.Set(paramAreaMax, strconv.FormatFloat(*p.AreaMax, 'f', -1, 64))
	}
	if p.PriceMin != nil {
		values.Set(paramPriceMin, strconv.FormatInt(*p.PriceMin, 10))
	}
	if p.PriceMax != nil {
		values.Set(paramPriceMax, strconv.FormatInt(*p.PriceMax, 10))
	}
	if p.Size != "" {
		values.Set(paramSize, string(p.Size))
	}
	if p.SortBy != "" {
		values.Set(paramSort, string(p.SortBy))
	}
	if p.View != "" {
		values.Set(paramView, p.View)
	}
	return values
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntParam(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
