package restclient

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Params holds query parameters for a request. Values may be strings,
// numbers, booleans, or slices of those; nil and empty-string values are
// omitted and slices serialize as repeated keys.
type Params map[string]any

// Encode serializes the parameters in stable key order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		for _, s := range stringify(p[k]) {
			values.Add(k, s)
		}
	}
	return values.Encode()
}

// stringify flattens a parameter value into zero or more strings,
// dropping values that should be omitted.
func stringify(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []int:
		out := make([]string, 0, len(val))
		for _, n := range val {
			out = append(out, strconv.Itoa(n))
		}
		return out
	case []int64:
		out := make([]string, 0, len(val))
		for _, n := range val {
			out = append(out, strconv.FormatInt(n, 10))
		}
		return out
	case int:
		return []string{strconv.Itoa(val)}
	case int64:
		return []string{strconv.FormatInt(val, 10)}
	case bool:
		return []string{strconv.FormatBool(val)}
	default:
		return []string{fmt.Sprintf("%v", val)}
	}
}

// PageParams builds pagination query parameters. Values at their
// defaults (page <= 1 with no explicit request, pageSize <= 0) are
// omitted per the wire contract.
func PageParams(page, pageSize int) Params {
	p := Params{}
	if page > 1 {
		p["page"] = page
	}
	if pageSize > 0 {
		p["pageSize"] = pageSize
	}
	return p
}

// Merge returns a copy of p with overrides applied on top.
func (p Params) Merge(overrides Params) Params {
	merged := Params{}
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
