package compress

import (
	"encoding/json"
	"fmt"
	"strings"
)

// compressJSON samples oversized arrays and objects and re-pretty-prints
// small documents. Invalid JSON is returned unchanged; this step never fails.
func (c *Compressor) compressJSON(content string) string {
	var value interface{}
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return content
	}

	switch v := value.(type) {
	case []interface{}:
		if len(v) > 10 {
			sample, err := json.MarshalIndent(v[:3], "", "  ")
			if err == nil {
				return fmt.Sprintf("// JSON array with %d items. First 3 items:\n%s", len(v), sample)
			}
		} else if len(v) > 3 && c.cfg.Aggressive {
			sample, err := json.MarshalIndent(v[0], "", "  ")
			if err == nil {
				return fmt.Sprintf("// JSON array with %d items. First item:\n%s", len(v), sample)
			}
		}

	case map[string]interface{}:
		keyLimit := 0
		if len(v) > 20 {
			keyLimit = 5
		} else if len(v) > 5 && c.cfg.Aggressive {
			keyLimit = 3
		}
		if keyLimit > 0 {
			keys := topLevelKeyOrder(content)
			if len(keys) > keyLimit {
				keys = keys[:keyLimit]
			}
			sample := make(map[string]interface{}, len(keys))
			for _, k := range keys {
				sample[k] = v[k]
			}
			data, err := json.MarshalIndent(sample, "", "  ")
			if err == nil {
				return fmt.Sprintf("// JSON object with %d keys. Sample keys: %s...\n%s",
					len(v), strings.Join(keys, ", "), data)
			}
		}
	}

	if len(content) < 1000 {
		if pretty, err := json.MarshalIndent(value, "", "  "); err == nil {
			return string(pretty)
		}
	}

	return content
}

// topLevelKeyOrder recovers the document order of a JSON object's top-level
// keys by token scanning, since unmarshaling into a map loses it.
func topLevelKeyOrder(content string) []string {
	dec := json.NewDecoder(strings.NewReader(content))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return keys
		}
		k, ok := kt.(string)
		if !ok {
			return keys
		}
		keys = append(keys, k)
		if err := skipJSONValue(dec); err != nil {
			return keys
		}
	}
	return keys
}

func skipJSONValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}

	for dec.More() {
		if d == '{' {
			if _, err := dec.Token(); err != nil { // key
				return err
			}
		}
		if err := skipJSONValue(dec); err != nil {
			return err
		}
	}

	_, err = dec.Token() // closing delimiter
	return err
}
