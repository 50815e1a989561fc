package domain

import "strings"

// Environment is a named set of {{variable}} substitutions.
type Environment struct {
	Name      string            `json:"name"`
	Variables map[string]string `json:"variables"`
}

// NewEnvironment creates an empty environment.
func NewEnvironment(name string) *Environment {
	return &Environment{Name: name, Variables: map[string]string{}}
}

// Set stores a variable.
func (e *Environment) Set(key, value string) {
	if e.Variables == nil {
		e.Variables = map[string]string{}
	}
	e.Variables[key] = value
}

// Get looks a variable up.
func (e *Environment) Get(key string) (string, bool) {
	v, ok := e.Variables[key]
	return v, ok
}

// Resolve replaces every {{key}} placeholder with its variable value.
// Unknown placeholders are left untouched.
func (e *Environment) Resolve(template string) string {
	result := template
	for key, val := range e.Variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", val)
	}
	return result
}

// ResolveRequest resolves templates in a request's URL, headers, and textual
// body, returning a resolved copy. The original request is not modified.
func (e *Environment) ResolveRequest(req *Request) *Request {
	out := *req
	out.URL = e.Resolve(req.URL)
	out.Headers = make([]Header, len(req.Headers))
	for i, h := range req.Headers {
		out.Headers[i] = Header{Name: e.Resolve(h.Name), Value: e.Resolve(h.Value)}
	}
	switch body := req.Body.(type) {
	case TextBody:
		out.Body = TextBody(e.Resolve(string(body)))
	case JSONBody:
		out.Body = JSONBody(e.Resolve(string(body)))
	}
	return &out
}

// EnvironmentSet is the persisted set of environments plus the active one.
type EnvironmentSet struct {
	Active       string        `json:"active,omitempty"`
	Environments []Environment `json:"environments"`
}

// NewEnvironmentSet creates an empty set.
func NewEnvironmentSet() *EnvironmentSet {
	return &EnvironmentSet{Environments: []Environment{}}
}

// Add appends an environment.
func (s *EnvironmentSet) Add(env Environment) {
	s.Environments = append(s.Environments, env)
}

// Get returns the environment with the given name.
func (s *EnvironmentSet) Get(name string) (*Environment, bool) {
	for i := range s.Environments {
		if s.Environments[i].Name == name {
			return &s.Environments[i], true
		}
	}
	return nil, false
}

// Remove deletes the environment with the given name.
func (s *EnvironmentSet) Remove(name string) bool {
	for i := range s.Environments {
		if s.Environments[i].Name == name {
			s.Environments = append(s.Environments[:i], s.Environments[i+1:]...)
			if s.Active == name {
				s.Active = ""
			}
			return true
		}
	}
	return false
}

// SetActive marks an environment as the default for sends.
func (s *EnvironmentSet) SetActive(name string) {
	s.Active = name
}

// GetActive returns the active environment, if one is set and still exists.
func (s *EnvironmentSet) GetActive() (*Environment, bool) {
	if s.Active == "" {
		return nil, false
	}
	return s.Get(s.Active)
}
