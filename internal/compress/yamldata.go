package compress

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// compressYAML applies the data-interchange sampling rules to YAML documents.
// yaml.Node keeps mapping keys in document order, so sampling picks the first
// keys as written. Unparseable content is returned unchanged.
func (c *Compressor) compressYAML(content string) string {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return content
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		n := len(root.Content)
		if n > 10 {
			if sample := marshalYAMLSequence(root.Content[:3]); sample != "" {
				return fmt.Sprintf("# YAML sequence with %d items. First 3 items:\n%s", n, sample)
			}
		} else if n > 3 && c.cfg.Aggressive {
			if sample := marshalYAMLSequence(root.Content[:1]); sample != "" {
				return fmt.Sprintf("# YAML sequence with %d items. First item:\n%s", n, sample)
			}
		}

	case yaml.MappingNode:
		n := len(root.Content) / 2
		keyLimit := 0
		if n > 20 {
			keyLimit = 5
		} else if n > 5 && c.cfg.Aggressive {
			keyLimit = 3
		}
		if keyLimit > 0 {
			keys := make([]string, 0, keyLimit)
			sample := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for i := 0; i < keyLimit*2 && i+1 < len(root.Content); i += 2 {
				keys = append(keys, root.Content[i].Value)
				sample.Content = append(sample.Content, root.Content[i], root.Content[i+1])
			}
			data, err := yaml.Marshal(sample)
			if err == nil {
				return fmt.Sprintf("# YAML mapping with %d keys. Sample keys: %s...\n%s",
					n, strings.Join(keys, ", "), data)
			}
		}
	}

	if len(content) < 1000 {
		if pretty, err := yaml.Marshal(root); err == nil {
			return string(pretty)
		}
	}

	return content
}

func marshalYAMLSequence(items []*yaml.Node) string {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
	data, err := yaml.Marshal(seq)
	if err != nil {
		return ""
	}
	return string(data)
}
