package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const redacted = "[redacted]"

// sensitiveKeys are masked by GetPath.
var sensitiveKeys = map[string]bool{
	"api_key":        true,
	"token":          true,
	"signing_secret": true,
	"dsn":            true,
	"redis_url":      true,
}

// GetPath retrieves a value using a dot-notation path such as
// "gateway.ack_deadline". An empty path returns the whole tree. Secrets
// are masked.
func (c *Config) GetPath(path string) (any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	redact(m)
	return getValue(m, path)
}

func redact(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if s, ok := val.(string); ok && sensitiveKeys[k] && s != "" {
				t[k] = redacted
				continue
			}
			redact(val)
		}
	case []any:
		for _, val := range t {
			redact(val)
		}
	}
}

func getValue(m map[string]any, path string) (any, error) {
	var current any = m
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			continue
		}
		node, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("path %q breaks at %q (not a map)", path, part)
		}
		val, exists := node[part]
		if !exists {
			return nil, fmt.Errorf("path %q: key %q not found", path, part)
		}
		current = val
	}
	return current, nil
}
