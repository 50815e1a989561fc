package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Response is the outcome of a sent request.
type Response struct {
	Status     int
	StatusText string
	Headers    map[string]string
	Body       []byte
	Elapsed    time.Duration
	URL        string
}

func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

func (r *Response) IsRedirect() bool {
	return r.Status >= 300 && r.Status < 400
}

func (r *Response) IsClientError() bool {
	return r.Status >= 400 && r.Status < 500
}

func (r *Response) IsServerError() bool {
	return r.Status >= 500 && r.Status < 600
}

// BodyString returns the body as text, or false if it is not valid UTF-8.
func (r *Response) BodyString() (string, bool) {
	if !utf8.Valid(r.Body) {
		return "", false
	}
	return string(r.Body), true
}

// GetHeader looks a response header up case-insensitively.
func (r *Response) GetHeader(name string) (string, bool) {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// ContentType returns the Content-Type header, if present.
func (r *Response) ContentType() (string, bool) {
	return r.GetHeader("content-type")
}

func (r *Response) IsJSON() bool {
	ct, ok := r.ContentType()
	return ok && strings.Contains(ct, "application/json")
}

func (r *Response) IsHTML() bool {
	ct, ok := r.ContentType()
	return ok && strings.Contains(ct, "text/html")
}

func (r *Response) IsXML() bool {
	ct, ok := r.ContentType()
	return ok && strings.Contains(ct, "xml")
}

// ContentLength parses the content-length header, if present and numeric.
func (r *Response) ContentLength() (int, bool) {
	v, ok := r.GetHeader("content-length")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
