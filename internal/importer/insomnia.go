package importer

import (
	"fmt"
	"strconv"
	"strings"

	"saffron/internal/domain"
	"saffron/internal/parser"
	"saffron/internal/value"
)

// insomniaResource is one entry of an Insomnia v4 "resources" array.
type insomniaResource struct {
	id       string
	name     string
	parentID string
	kind     string

	description string
	method      string
	url         string
	headers     []domain.Header
	body        string
	data        map[string]string
}

// CanImportInsomnia reports whether the content looks like an Insomnia export.
func CanImportInsomnia(content string) bool {
	return strings.Contains(content, `"__export_format"`) && strings.Contains(content, `"resources"`)
}

// ImportInsomnia parses an Insomnia v4 export and converts its workspaces
// into collections. Exported environments are returned alongside so they can
// be merged into the environment set.
func ImportInsomnia(content string) (*Result, error) {
	root, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	obj, ok := root.(value.Object)
	if !ok {
		return nil, fmt.Errorf("invalid format: root must be an object")
	}

	version, ok := exportFormat(obj)
	if !ok {
		return nil, fmt.Errorf("missing required field: __export_format")
	}
	if version != "4" {
		return nil, fmt.Errorf("unsupported version: Insomnia v%s (only v4 supported)", version)
	}

	resourcesValue := obj.Get("resources")
	if resourcesValue == nil {
		return nil, fmt.Errorf("missing required field: resources")
	}
	resourcesArray, ok := resourcesValue.(value.Array)
	if !ok {
		return nil, fmt.Errorf("invalid format: resources must be an array")
	}

	resources, err := readResources(resourcesArray)
	if err != nil {
		return nil, err
	}
	return convert(resources), nil
}

// exportFormat accepts the version both as a number and as a string.
func exportFormat(obj value.Object) (string, bool) {
	if n, ok := obj.GetNumber("__export_format"); ok {
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	if s, ok := obj.GetString("__export_format"); ok {
		return s, true
	}
	return "", false
}

func readResources(arr value.Array) ([]insomniaResource, error) {
	var resources []insomniaResource

	for _, item := range arr {
		obj, ok := item.(value.Object)
		if !ok {
			continue
		}

		id, ok := obj.GetString("_id")
		if !ok {
			return nil, fmt.Errorf("missing required field: _id")
		}
		name, ok := obj.GetString("name")
		if !ok {
			return nil, fmt.Errorf("missing required field: name")
		}
		kind, ok := obj.GetString("_type")
		if !ok {
			return nil, fmt.Errorf("missing required field: _type")
		}

		res := insomniaResource{id: id, name: name, kind: kind}
		res.parentID, _ = obj.GetString("parentId")
		res.description, _ = obj.GetString("description")

		switch kind {
		case "workspace", "request_group":
			// nothing beyond the common fields
		case "request":
			method, ok := obj.GetString("method")
			if !ok {
				return nil, fmt.Errorf("missing required field: method")
			}
			url, ok := obj.GetString("url")
			if !ok {
				return nil, fmt.Errorf("missing required field: url")
			}
			res.method = method
			res.url = url
			res.headers = readHeaders(obj)
			if body, ok := obj.GetObject("body"); ok {
				res.body, _ = body.GetString("text")
			}
		case "environment":
			res.data = map[string]string{}
			if data, ok := obj.GetObject("data"); ok {
				for key, v := range data {
					if s, ok := v.(value.String); ok {
						res.data[key] = string(s)
					}
				}
			}
		default:
			continue // skip unknown resource types
		}

		resources = append(resources, res)
	}

	return resources, nil
}

func readHeaders(obj value.Object) []domain.Header {
	arr, ok := obj.GetArray("headers")
	if !ok {
		return nil
	}
	var headers []domain.Header
	for _, item := range arr {
		h, ok := item.(value.Object)
		if !ok {
			continue
		}
		name, nameOK := h.GetString("name")
		val, valueOK := h.GetString("value")
		if nameOK && valueOK {
			headers = append(headers, domain.Header{Name: name, Value: val})
		}
	}
	return headers
}

// convert groups requests under their workspaces. Requests nested inside
// request groups are attached to the group's enclosing workspace.
func convert(resources []insomniaResource) *Result {
	parentOf := make(map[string]string, len(resources))
	workspaces := make(map[string]*Collection)
	var order []string

	for _, res := range resources {
		parentOf[res.id] = res.parentID
		if res.kind == "workspace" {
			workspaces[res.id] = &Collection{Name: res.name, Description: res.description}
			order = append(order, res.id)
		}
	}

	result := &Result{}

	for _, res := range resources {
		switch res.kind {
		case "request":
			wsID, ok := owningWorkspace(res.parentID, parentOf, workspaces)
			if !ok {
				continue
			}
			workspaces[wsID].Requests = append(workspaces[wsID].Requests, Request{
				ID:          res.id,
				Name:        res.name,
				Description: res.description,
				Method:      res.method,
				URL:         res.url,
				Headers:     res.headers,
				Body:        res.body,
			})
		case "environment":
			env := domain.Environment{Name: res.name, Variables: res.data}
			result.Environments = append(result.Environments, env)
		}
	}

	for _, id := range order {
		result.Collections = append(result.Collections, *workspaces[id])
	}
	return result
}

// owningWorkspace climbs the parent chain until it reaches a workspace.
func owningWorkspace(parentID string, parentOf map[string]string, workspaces map[string]*Collection) (string, bool) {
	for i := 0; parentID != "" && i < len(parentOf)+1; i++ {
		if _, ok := workspaces[parentID]; ok {
			return parentID, true
		}
		parentID = parentOf[parentID]
	}
	return "", false
}
