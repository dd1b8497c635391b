package md

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConvertStructured rewrites a JSON or YAML document into the other format.
// Key order is preserved in both directions.
func ConvertStructured(content, from, to string) (string, error) {
	if !ValidFormat(from) || !ValidFormat(to) {
		return "", fmt.Errorf("unsupported conversion %q to %q", from, to)
	}
	if from == to {
		return content, nil
	}

	// JSON is a subset of YAML, so one decoder serves both directions.
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", from, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return "", fmt.Errorf("empty %s document", from)
	}

	if to == LanguageYAML {
		return encodeYAML(&doc)
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, doc.Content[0], 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeYAML(doc *yaml.Node) (string, error) {
	clearFlowStyle(doc)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// clearFlowStyle switches nodes decoded from JSON to block style. Scalars
// lose their quotes; the encoder re-quotes any that need it.
func clearFlowStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearFlowStyle(c)
	}
}

// writeJSON walks the node tree so mapping keys keep their source order,
// which decoding into map[string]interface{} would lose.
func writeJSON(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case yaml.AliasNode:
		return writeJSON(buf, n.Alias, depth)

	case yaml.MappingNode:
		if len(n.Content) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.WriteString(indent + "  ")
			buf.Write(key)
			buf.WriteString(": ")
			if err := writeJSON(buf, n.Content[i+1], depth+1); err != nil {
				return err
			}
			if i+2 < len(n.Content) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(indent + "}")
		return nil

	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, c := range n.Content {
			buf.WriteString(indent + "  ")
			if err := writeJSON(buf, c, depth+1); err != nil {
				return err
			}
			if i+1 < len(n.Content) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(indent + "]")
		return nil

	case yaml.ScalarNode:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("failed to decode scalar %q: %w", n.Value, err)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot represent %q as json: %w", n.Value, err)
		}
		buf.Write(data)
		return nil
	}
	return fmt.Errorf("unexpected yaml node kind %d", n.Kind)
}
