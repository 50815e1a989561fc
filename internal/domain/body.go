package domain

import "net/url"

// Body is the request payload, a closed union over the supported kinds.
type Body interface {
	isBody()
}

// NoBody marks a request without a payload.
type NoBody struct{}

// TextBody is a plain-text payload.
type TextBody string

// JSONBody is a payload sent as application/json. The text is passed through
// verbatim; it is not validated against the parser's dialect.
type JSONBody string

// FormBody is an application/x-www-form-urlencoded payload.
type FormBody map[string]string

// BinaryBody is an opaque byte payload.
type BinaryBody []byte

func (NoBody) isBody()     {}
func (TextBody) isBody()   {}
func (JSONBody) isBody()   {}
func (FormBody) isBody()   {}
func (BinaryBody) isBody() {}

// Encode renders the form as a percent-encoded query string.
func (f FormBody) Encode() string {
	values := url.Values{}
	for k, v := range f {
		values.Set(k, v)
	}
	return values.Encode()
}

// BodyText returns the textual payload of a body, if it has one.
// Used when persisting requests into collections and history.
func BodyText(b Body) (string, bool) {
	switch body := b.(type) {
	case TextBody:
		return string(body), true
	case JSONBody:
		return string(body), true
	default:
		return "", false
	}
}
