// Package domain holds the records the client works with: requests,
// responses, collections, and environments.
package domain

import (
	"fmt"
	"strings"
)

// Method is an HTTP request method.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// ParseMethod maps a user-supplied method name onto a known Method.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToUpper(s)) {
	case MethodGet:
		return MethodGet, nil
	case MethodPost:
		return MethodPost, nil
	case MethodPut:
		return MethodPut, nil
	case MethodPatch:
		return MethodPatch, nil
	case MethodDelete:
		return MethodDelete, nil
	case MethodHead:
		return MethodHead, nil
	case MethodOptions:
		return MethodOptions, nil
	default:
		return "", fmt.Errorf("invalid HTTP method: %s", s)
	}
}

// Header is a single request header. A slice of headers preserves order and
// allows repeats, unlike a map.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Request describes one HTTP request before it is sent.
type Request struct {
	Method          Method
	URL             string
	Headers         []Header
	Body            Body
	TimeoutSeconds  int // 0 means the client default
	FollowRedirects bool
}

// NewRequest creates a request with the default redirect policy.
func NewRequest(method Method, url string) *Request {
	return &Request{
		Method:          method,
		URL:             url,
		Body:            NoBody{},
		FollowRedirects: true,
	}
}

// AddHeader appends a header without replacing existing ones.
func (r *Request) AddHeader(name, value string) {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
}

// GetHeader returns the first header with the given name, case-insensitively.
func (r *Request) GetHeader(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// ContentType returns the explicit Content-Type header, if any.
func (r *Request) ContentType() (string, bool) {
	return r.GetHeader("Content-Type")
}
