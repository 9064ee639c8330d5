package api

import (
	"net/http"
	"regexp"
	"strings"
)

var pathParam = regexp.MustCompile(`\{([a-z_]+)\}`)

// buildOpenAPIDoc returns an OpenAPI 3.1 document covering the operator routes.
func buildOpenAPIDoc(routes []route) map[string]any {
	paths := map[string]any{}

	for _, rt := range routes {
		item, _ := paths[rt.pattern].(map[string]any)
		if item == nil {
			item = map[string]any{}
			paths[rt.pattern] = item
		}
		item[strings.ToLower(rt.method)] = buildOperation(rt)
	}

	return map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":   "hookrelay operator API",
			"version": "1.0",
		},
		"paths": paths,
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"BearerAuth": map[string]any{
					"type":   "http",
					"scheme": "bearer",
				},
			},
			"schemas": map[string]any{
				"RotateSecretRequest": map[string]any{
					"type":     "object",
					"required": []string{"secret"},
					"properties": map[string]any{
						"secret": map[string]any{"type": "string"},
					},
				},
				"SetActiveRequest": map[string]any{
					"type":     "object",
					"required": []string{"active"},
					"properties": map[string]any{
						"active": map[string]any{"type": "boolean"},
					},
				},
			},
		},
	}
}

func buildOperation(rt route) map[string]any {
	params := []any{}
	for _, m := range pathParam.FindAllStringSubmatch(rt.pattern, -1) {
		params = append(params, map[string]any{
			"name":     m[1],
			"in":       "path",
			"required": true,
			"schema":   map[string]any{"type": "string"},
		})
	}

	op := map[string]any{
		"summary":    rt.summary,
		"parameters": params,
		"responses": map[string]any{
			"200": map[string]any{"description": "OK"},
			"401": map[string]any{"description": "Missing or invalid bearer token"},
			"403": map[string]any{"description": "Insufficient scope"},
			"404": map[string]any{"description": "Not found"},
		},
		"security":    []any{map[string]any{"BearerAuth": []string{}}},
		"x-scopes":    rt.scopes,
		"operationId": operationID(rt),
	}
	if rt.body != "" {
		op["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": "#/components/schemas/" + rt.body},
				},
			},
		}
	}
	return op
}

// operationID derives "put_providers_secret" style ids from a route.
func operationID(rt route) string {
	parts := []string{strings.ToLower(rt.method)}
	for _, seg := range strings.Split(rt.pattern, "/") {
		if seg == "" || seg == "v1" || strings.HasPrefix(seg, "{") {
			continue
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "_")
}

// handleOpenAPI handles GET /openapi.json (no auth).
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, buildOpenAPIDoc(s.routes()))
}
