package storage

import (
	"crypto/rand"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"saffron/internal/domain"
)

const bodyPreviewLimit = 500

// HistoryEntry records one completed send.
type HistoryEntry struct {
	ID         string          `json:"id"`
	Timestamp  int64           `json:"timestamp"`
	Request    HistoryRequest  `json:"request"`
	Response   HistoryResponse `json:"response"`
	DurationMS int64           `json:"duration_ms"`
}

// HistoryRequest is the request half of a history entry.
type HistoryRequest struct {
	Method  string          `json:"method"`
	URL     string          `json:"url"`
	Headers []domain.Header `json:"headers"`
	Body    string          `json:"body,omitempty"`
}

// HistoryResponse is the response half of a history entry. Only a short body
// preview is stored inline; the full body lives in the body cache.
type HistoryResponse struct {
	Status      int               `json:"status"`
	StatusText  string            `json:"status_text"`
	Headers     map[string]string `json:"headers"`
	BodyPreview string            `json:"body_preview"`
}

// NewHistoryEntry snapshots a send into a history entry with a fresh id.
func NewHistoryEntry(req *domain.Request, resp *domain.Response) HistoryEntry {
	histReq := HistoryRequest{
		Method:  string(req.Method),
		URL:     req.URL,
		Headers: append([]domain.Header(nil), req.Headers...),
	}
	if text, ok := domain.BodyText(req.Body); ok {
		histReq.Body = text
	}

	return HistoryEntry{
		ID:         newEntryID(),
		Timestamp:  time.Now().Unix(),
		Request:    histReq,
		Response:   historyResponseFrom(resp),
		DurationMS: resp.Elapsed.Milliseconds(),
	}
}

func historyResponseFrom(resp *domain.Response) HistoryResponse {
	return HistoryResponse{
		Status:      resp.Status,
		StatusText:  resp.StatusText,
		Headers:     resp.Headers,
		BodyPreview: previewBody(resp.Body),
	}
}

func previewBody(body []byte) string {
	if !utf8.Valid(body) {
		return "<binary data>"
	}
	s := string(body)
	if len(s) > bodyPreviewLimit {
		cut := bodyPreviewLimit
		// back off to a rune boundary
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut] + "..."
	}
	return s
}

// FormatTimestamp renders the entry time for display.
func (e HistoryEntry) FormatTimestamp() string {
	return time.Unix(e.Timestamp, 0).Format("2006-01-02 15:04:05")
}

func newEntryID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
