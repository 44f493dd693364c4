package compress

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

var errNotParseable = errors.New("source is not structurally parseable")

var (
	pyImportLineRE = regexp.MustCompile(`(?m)(?:^import.*$|^from.*import.*$)[\n\r]*`)

	listLiteralRE   = regexp.MustCompile(`\[[^\]\n]{50,}?\]`)
	dictLiteralRE   = regexp.MustCompile(`\{[^}\n]{50,}?\}`)
	comprehensionRE = regexp.MustCompile(`\[[^\]\n]{50,}? for [^\]\n]+\]`)

	classDocOpenRE  = regexp.MustCompile(`^\s+['"]`)
	classDocCloseRE = regexp.MustCompile(`['"]$`)
)

// pyImport is one imported name from an import or from-import statement.
type pyImport struct {
	module string // summarized top-level name
}

// pyDefinition is a top-level function or class with its exact source span.
type pyDefinition struct {
	name    string
	source  string
	methods []string // classes only, in declaration order
}

// pyStructure is the result of a successful structural parse.
type pyStructure struct {
	imports   []pyImport
	functions []pyDefinition
	classes   []pyDefinition
}

// compressPython applies generic compaction, then structural passes when the
// content parses, then regex-level literal collapsing either way. Structural
// parse failure is silent: the regex steps still run.
func (c *Compressor) compressPython(content string) string {
	content = c.generic(content)

	if st, err := parsePythonStructure(content); err == nil {
		content = c.summarizePythonImports(content, st)
		if c.cfg.Aggressive {
			content = c.collapsePrivateFunctions(content, st)
		}
		content = c.collapseLargeClasses(content, st)
	}

	content = listLiteralRE.ReplaceAllString(content, "[...]  # List with elements")
	content = dictLiteralRE.ReplaceAllString(content, "{...}  # Dict with key-values")
	content = comprehensionRE.ReplaceAllString(content, "[... for ... in ...]  # List comprehension")

	return content
}

// parsePythonStructure parses content with tree-sitter and extracts imports
// and top-level definitions. A root containing error nodes counts as a parse
// failure so the structural steps are skipped for malformed source.
func parsePythonStructure(content string) (*pyStructure, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(content))
	if err != nil {
		return nil, err
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, errNotParseable
	}

	src := []byte(content)
	st := &pyStructure{}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node == nil {
			continue
		}

		target := node
		if node.Type() == "decorated_definition" {
			if def := node.ChildByFieldName("definition"); def != nil {
				target = def
			}
		}

		switch target.Type() {
		case "import_statement", "import_from_statement":
			st.imports = append(st.imports, importedNames(target, src)...)
		case "function_definition":
			name := fieldText(target, "name", src)
			if name == "" {
				continue
			}
			st.functions = append(st.functions, pyDefinition{
				name:   name,
				source: string(src[node.StartByte():node.EndByte()]),
			})
		case "class_definition":
			name := fieldText(target, "name", src)
			if name == "" {
				continue
			}
			st.classes = append(st.classes, pyDefinition{
				name:    name,
				source:  string(src[node.StartByte():node.EndByte()]),
				methods: methodNames(target, src),
			})
		}
	}

	return st, nil
}

// importedNames yields one entry per imported name. For plain imports the
// summarized module is the first dotted component of the module path; for
// from-imports it is the first dotted component of the imported name itself.
func importedNames(node *sitter.Node, src []byte) []pyImport {
	var out []pyImport
	moduleNode := node.ChildByFieldName("module_name")

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		// Skip the module path of a from-import; only the imported names count.
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() && child.EndByte() == moduleNode.EndByte() {
			continue
		}

		var name string
		switch child.Type() {
		case "dotted_name":
			name = string(src[child.StartByte():child.EndByte()])
		case "aliased_import":
			if n := child.ChildByFieldName("name"); n != nil {
				name = string(src[n.StartByte():n.EndByte()])
			}
		case "wildcard_import":
			name = "*"
		default:
			continue
		}
		if name == "" {
			continue
		}
		out = append(out, pyImport{module: strings.SplitN(name, ".", 2)[0]})
	}

	return out
}

// methodNames collects every function definition in a class subtree, in
// declaration order.
func methodNames(classNode *sitter.Node, src []byte) []string {
	var names []string
	var walk func(*sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if node.Type() == "function_definition" {
			if name := fieldText(node, "name", src); name != "" {
				names = append(names, name)
			}
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			walk(node.NamedChild(i))
		}
	}
	for i := 0; i < int(classNode.NamedChildCount()); i++ {
		walk(classNode.NamedChild(i))
	}
	return names
}

func fieldText(node *sitter.Node, field string, src []byte) string {
	n := node.ChildByFieldName(field)
	if n == nil {
		return ""
	}
	return string(src[n.StartByte():n.EndByte()])
}

// summarizePythonImports replaces all import statements with a single sorted
// summary line once the imported-name count exceeds the threshold.
func (c *Compressor) summarizePythonImports(content string, st *pyStructure) string {
	if len(st.imports) <= c.cfg.ImportSummaryThreshold {
		return content
	}

	seen := make(map[string]bool)
	var modules []string
	for _, imp := range st.imports {
		if !seen[imp.module] {
			seen[imp.module] = true
			modules = append(modules, imp.module)
		}
	}
	sort.Strings(modules)

	content = pyImportLineRE.ReplaceAllString(content, "")
	summary := "# Imports summary: " + strings.Join(modules, ", ")
	return summary + "\n\n" + strings.TrimLeft(content, " \t\n")
}

// collapsePrivateFunctions replaces single-underscore top-level function
// bodies longer than five lines with their signature and a line-count note.
func (c *Compressor) collapsePrivateFunctions(content string, st *pyStructure) string {
	for _, fn := range st.functions {
		if !strings.HasPrefix(fn.name, "_") || strings.HasPrefix(fn.name, "__") {
			continue
		}
		n := len(splitLines(fn.source))
		if n <= 5 {
			continue
		}
		placeholder := fmt.Sprintf("def %s(...):  # Utility function: %d lines", fn.name, n)
		content = strings.Replace(content, fn.source, placeholder, 1)
	}
	return content
}

// collapseLargeClasses summarizes classes whose member count exceeds
// MaxClassMethodsToShow and whose body exceeds 30 lines: the declaration and
// attached docstring survive, followed by the important member names and
// line-count notes.
func (c *Compressor) collapseLargeClasses(content string, st *pyStructure) string {
	for _, cls := range st.classes {
		sourceLines := splitLines(cls.source)
		if len(cls.methods) <= c.cfg.MaxClassMethodsToShow || len(sourceLines) <= 30 {
			continue
		}

		classDefLine := 0
		for i, line := range sourceLines {
			if strings.HasPrefix(strings.TrimSpace(line), "class") {
				classDefLine = i
				break
			}
		}

		docstringEnd := classDefLine + 1
		if len(sourceLines) > classDefLine+1 && classDocOpenRE.MatchString(sourceLines[classDefLine+1]) {
			for i := classDefLine + 1; i < len(sourceLines); i++ {
				if classDocCloseRE.MatchString(sourceLines[i]) {
					docstringEnd = i + 1
					break
				}
			}
		}

		important := []string{"__init__"}
		for _, m := range cls.methods {
			if len(important) > c.cfg.MaxClassMethodsToShow {
				break
			}
			if !strings.HasPrefix(m, "_") {
				important = append(important, m)
			}
		}
		additional := len(cls.methods) - len(important)

		var b strings.Builder
		b.WriteString(strings.Join(sourceLines[:docstringEnd], "\n"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    # Key methods: %s\n", strings.Join(important, ", ")))
		if additional > 0 {
			b.WriteString(fmt.Sprintf("    # + %d more methods\n", additional))
		}
		b.WriteString(fmt.Sprintf("    # Total: %d lines\n", len(sourceLines)))
		b.WriteString("    # ...")

		content = strings.Replace(content, cls.source, b.String(), 1)
	}
	return content
}
