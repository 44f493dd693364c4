package compress

import (
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// compressTOML applies the data-interchange sampling rules to TOML documents.
// A TOML document is always a table at the top level; go-toml decodes into a
// map, so key sampling uses sorted order rather than document order.
// Unparseable content is returned unchanged.
func (c *Compressor) compressTOML(content string) string {
	var table map[string]interface{}
	if err := toml.Unmarshal([]byte(content), &table); err != nil {
		return content
	}

	n := len(table)
	keyLimit := 0
	if n > 20 {
		keyLimit = 5
	} else if n > 5 && c.cfg.Aggressive {
		keyLimit = 3
	}

	if keyLimit > 0 {
		keys := make([]string, 0, n)
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > keyLimit {
			keys = keys[:keyLimit]
		}

		sample := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			sample[k] = table[k]
		}
		data, err := toml.Marshal(sample)
		if err == nil {
			return fmt.Sprintf("# TOML table with %d keys. Sample keys: %s...\n%s",
				n, strings.Join(keys, ", "), data)
		}
	}

	if len(content) < 1000 {
		if pretty, err := toml.Marshal(table); err == nil {
			return string(pretty)
		}
	}

	return content
}
