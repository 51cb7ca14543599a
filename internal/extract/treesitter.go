package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ASTExtractor resolves import targets from a real syntax tree instead of
// textual patterns. It handles the same module shapes as RegexExtractor
// (import declarations, re-exports, require calls) but ignores commented-out
// code. Files it cannot parse fall back to the pattern-based extractor, so
// extraction still never fails.
type ASTExtractor struct {
	tsParser      *sitter.Parser
	jsParser      *sitter.Parser
	aliasPrefixes []string
	fallback      *RegexExtractor
}

// NewASTExtractor builds a tree-sitter backed extractor for JS/TS sources.
func NewASTExtractor(aliasPrefixes []string) *ASTExtractor {
	ts := sitter.NewParser()
	ts.SetLanguage(typescript.GetLanguage())

	js := sitter.NewParser()
	js.SetLanguage(javascript.GetLanguage())

	return &ASTExtractor{
		tsParser:      ts,
		jsParser:      js,
		aliasPrefixes: aliasPrefixes,
		fallback:      NewRegexExtractor(aliasPrefixes),
	}
}

func (e *ASTExtractor) Imports(filename string, content []byte) []Reference {
	parser := e.tsParser
	if strings.HasSuffix(filename, ".js") || strings.HasSuffix(filename, ".jsx") ||
		strings.HasSuffix(filename, ".mjs") || strings.HasSuffix(filename, ".cjs") {
		parser = e.jsParser
	}

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return e.fallback.Imports(filename, content)
	}
	defer tree.Close()

	refs := make([]Reference, 0)
	e.collect(tree.RootNode(), content, &refs)
	return refs
}

func (e *ASTExtractor) collect(node *sitter.Node, content []byte, refs *[]Reference) {
	switch node.Type() {
	case "import_statement", "export_statement":
		if source := node.ChildByFieldName("source"); source != nil {
			e.add(source.Content(content), refs)
		}

	case "call_expression":
		if target, ok := requireTarget(node, content); ok {
			e.add(target, refs)
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		e.collect(node.NamedChild(i), content, refs)
	}
}

func (e *ASTExtractor) add(raw string, refs *[]Reference) {
	target := strings.Trim(raw, "'\"`")
	if target == "" {
		return
	}
	*refs = append(*refs, Reference{
		Target: target,
		Kind:   classify(target, e.aliasPrefixes),
	})
}

func requireTarget(node *sitter.Node, content []byte) (string, bool) {
	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != "identifier" || fn.Content(content) != "require" {
		return "", false
	}
	args := node.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return "", false
	}
	first := args.NamedChild(0)
	if first.Type() != "string" {
		return "", false
	}
	return first.Content(content), true
}
