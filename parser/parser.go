/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads raw token tree documents into ordered trees.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/motiv/fs"
	"bennypowers.dev/motiv/token"
)

// Parser parses raw token tree documents. Key order in the source is
// preserved so that downstream emission order stays deterministic.
type Parser struct{}

// New creates a new token tree parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses JSON (comments tolerated) or YAML token data.
func (p *Parser) Parse(data []byte) (token.Tree, error) {
	if isLikelyJSON(data) {
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		open, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		if open != json.Delim('{') {
			return nil, fmt.Errorf("token document root must be an object")
		}
		tree, err := jsonObject(dec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return tree, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return token.NewTree(), nil
	}
	v, err := yamlValue(root.Content[0])
	if err != nil {
		return nil, err
	}
	tree, ok := token.AsTree(v)
	if !ok {
		return nil, fmt.Errorf("token document root must be an object")
	}
	return tree, nil
}

// ParseFile parses a token tree file.
func (p *Parser) ParseFile(filesystem fs.FileSystem, path string) (token.Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	tree, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return tree, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON documents start with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// jsonObject consumes an object body after its opening brace, building
// tree nodes with source key order intact. The ordered map's own
// unmarshaler is not used here: it decodes nested objects as plain
// maps, which would lose both order and tree shape below the root.
func jsonObject(dec *json.Decoder) (token.Tree, error) {
	tree := token.NewTree()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return tree, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v, expected object key", tok)
		}
		v, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		tree.Set(key, v)
	}
}

// jsonValue consumes one value from the token stream. Objects become
// trees, arrays become slices, scalars keep encoding/json's types
// (numbers are float64).
func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return jsonObject(dec)
	case '[':
		items := []any{}
		for dec.More() {
			v, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// yamlValue converts a yaml AST node into tree values, keeping mapping
// key order. Scalars follow JSON conventions (numbers become float64).
func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		tree := token.NewTree()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			tree.Set(key, v)
		}
		return tree, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := yamlValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		return yamlScalar(node)
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind at line %d", node.Line)
	}
}

func yamlScalar(node *yaml.Node) (any, error) {
	switch node.Tag {
	case "!!int":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q at line %d", node.Value, node.Line)
		}
		return n, nil
	case "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at line %d", node.Value, node.Line)
		}
		return n, nil
	case "!!bool":
		return node.Value == "true", nil
	case "!!null":
		return nil, nil
	default:
		return node.Value, nil
	}
}
