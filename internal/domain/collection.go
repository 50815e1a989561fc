package domain

// Collection is a named group of saved requests, optionally organized into
// nested folders. Collections are persisted as JSON files.
type Collection struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Folders     []Folder       `json:"folders"`
	Requests    []SavedRequest `json:"requests"`
}

// Folder groups requests inside a collection; folders may nest.
type Folder struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Requests    []SavedRequest `json:"requests"`
	Folders     []Folder       `json:"folders"`
}

// SavedRequest is the persisted form of a request.
type SavedRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Method         string   `json:"method"`
	URL            string   `json:"url"`
	Headers        []Header `json:"headers"`
	Body           string   `json:"body,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
}

// NewCollection creates an empty collection.
func NewCollection(name string) *Collection {
	return &Collection{
		Name:     name,
		Folders:  []Folder{},
		Requests: []SavedRequest{},
	}
}

// AddRequest appends a request at the collection's top level.
func (c *Collection) AddRequest(req SavedRequest) {
	c.Requests = append(c.Requests, req)
}

// FindRequest locates a request by id or name, searching folders recursively.
func (c *Collection) FindRequest(key string) (*SavedRequest, bool) {
	if r, ok := findIn(c.Requests, key); ok {
		return r, true
	}
	for i := range c.Folders {
		if r, ok := c.Folders[i].FindRequest(key); ok {
			return r, true
		}
	}
	return nil, false
}

// FindRequest locates a request by id or name inside this folder tree.
func (f *Folder) FindRequest(key string) (*SavedRequest, bool) {
	if r, ok := findIn(f.Requests, key); ok {
		return r, true
	}
	for i := range f.Folders {
		if r, ok := f.Folders[i].FindRequest(key); ok {
			return r, true
		}
	}
	return nil, false
}

func findIn(requests []SavedRequest, key string) (*SavedRequest, bool) {
	for i := range requests {
		if requests[i].ID == key || requests[i].Name == key {
			return &requests[i], true
		}
	}
	return nil, false
}

// AllRequests returns every request in the collection, folders included.
func (c *Collection) AllRequests() []SavedRequest {
	out := append([]SavedRequest(nil), c.Requests...)
	for i := range c.Folders {
		out = append(out, c.Folders[i].allRequests()...)
	}
	return out
}

func (f *Folder) allRequests() []SavedRequest {
	out := append([]SavedRequest(nil), f.Requests...)
	for i := range f.Folders {
		out = append(out, f.Folders[i].allRequests()...)
	}
	return out
}

// NewSavedRequest snapshots a request under an id and display name.
func NewSavedRequest(id, name string, req *Request) SavedRequest {
	saved := SavedRequest{
		ID:             id,
		Name:           name,
		Method:         string(req.Method),
		URL:            req.URL,
		Headers:        append([]Header(nil), req.Headers...),
		TimeoutSeconds: req.TimeoutSeconds,
	}
	if text, ok := BodyText(req.Body); ok {
		saved.Body = text
	}
	return saved
}

// ToRequest rebuilds a sendable request from its persisted form.
// Unknown methods fall back to GET, matching the permissive load path.
func (s *SavedRequest) ToRequest() *Request {
	method, err := ParseMethod(s.Method)
	if err != nil {
		method = MethodGet
	}

	req := NewRequest(method, s.URL)
	req.Headers = append([]Header(nil), s.Headers...)
	req.TimeoutSeconds = s.TimeoutSeconds
	if s.Body != "" {
		req.Body = TextBody(s.Body)
	}
	return req
}
