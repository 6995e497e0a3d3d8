package patch

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yunzck8s/paginate/pkg/config"
)

// Page behavior of the injected boilerplate.
const (
	initialPage     = 1
	defaultPageSize = 20
)

// 📊 Outcome is the result classification of a patch attempt
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomePatched         // File was transformed and should be written back
	OutcomeSkipped         // File already paginates, left byte-for-byte unmodified
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePatched:
		return "patched"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 Result contains the outcome of one patch run over a buffer
type Result struct {
	// Outcome classifies what happened
	Outcome Outcome
	// OriginalContent is the buffer before any rewrite
	OriginalContent []byte
	// ModifiedContent is the buffer after all rewrites; equal to
	// OriginalContent when Outcome is Skipped
	ModifiedContent []byte
	// NamespaceReset reports whether the namespace reset effect was added
	NamespaceReset bool
}

// 🔧 Patcher rewrites a single resource list page to paginate its items
type Patcher struct {
	target config.Target

	reactImport  anchor
	hookAppend   anchor
	typesImport  anchor
	componentDef anchor
	itemsBinding anchor
	mapSite      anchor
	closingTags  anchor
}

// 🏭 New creates a patcher for one target page
func New(target config.Target) *Patcher {
	name := regexp.QuoteMeta(target.Name)
	varName := regexp.QuoteMeta(target.Var)

	return &Patcher{
		target:       target,
		reactImport:  newAnchor("react import", `import.*from\s+['"]react['"];`),
		hookAppend:   newAnchor("react hook clause", `(import\s+\{[^}]*?)\s*\}\s+from\s+['"]react['"];`),
		typesImport:  newAnchor("types import", `(import.*from\s+['"].*types['"];)`),
		componentDef: newAnchor("component function", `(export default function `+name+`\(\)\s*\{)`),
		itemsBinding: newAnchor("items binding", `(const `+varName+` = data\?\.items \?\? \[\];)`),
		mapSite:      newAnchor("map call site", `\{`+varName+`\.map\(`),
		closingTags:  newAnchor("closing markup", `(\s*</div>\s*</div>\s*\);\s*\})`),
	}
}

// 🛡️ AlreadyPaginated reports whether a buffer carries pagination markers.
// A buffer with markers must never be rewritten.
func AlreadyPaginated(content []byte) bool {
	return strings.Contains(string(content), "Pagination") ||
		strings.Contains(string(content), "currentPage")
}

// 🏃 Apply runs the transformation pipeline over an in-memory buffer.
// Either every step lands and the fully patched buffer is returned, or the
// first unmatched anchor fails the whole file and the buffer is discarded.
func (p *Patcher) Apply(ctx context.Context, content []byte) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	result := &Result{
		Outcome:         OutcomeUnknown,
		OriginalContent: content,
		ModifiedContent: content,
	}

	// Idempotency guard
	if AlreadyPaginated(content) {
		logger.Debug().Str("target", p.target.Path).Msg("pagination markers present, skipping")
		result.Outcome = OutcomeSkipped
		return result, nil
	}

	buf := string(content)

	buf, err := p.injectImports(buf)
	if err != nil {
		return nil, err
	}

	buf, namespaceReset, err := p.injectState(buf)
	if err != nil {
		return nil, err
	}

	buf, err = p.injectMath(buf)
	if err != nil {
		return nil, err
	}

	buf, err = p.rewriteMapSite(buf)
	if err != nil {
		return nil, err
	}

	buf, err = p.injectWidget(buf)
	if err != nil {
		return nil, err
	}

	result.Outcome = OutcomePatched
	result.ModifiedContent = []byte(buf)
	result.NamespaceReset = namespaceReset

	logger.Debug().
		Str("target", p.target.Path).
		Bool("namespace_reset", namespaceReset).
		Msg("all anchors matched")

	return result, nil
}

// 📦 injectImports ensures the state hooks and the Pagination component are
// imported
func (p *Patcher) injectImports(buf string) (string, error) {
	switch {
	case !strings.Contains(buf, "useState"):
		// No state hooks at all: replace the framework import wholesale
		out, err := p.reactImport.rewriteFirst(buf, "import { useState, useEffect } from 'react';")
		if err != nil {
			return "", err
		}
		buf = out
	case !strings.Contains(buf, "useEffect"):
		// useState is imported, append useEffect into the same clause
		out, err := p.hookAppend.rewriteFirst(buf, "${1}, useEffect } from 'react';")
		if err != nil {
			return "", err
		}
		buf = out
	}

	componentImport := fmt.Sprintf("import Pagination from '%scomponents/common/Pagination';",
		strings.Repeat("../", p.target.ImportDepth))

	return p.typesImport.rewriteFirst(buf, "${1}\n"+componentImport)
}

// 🪝 injectState adds the page state declarations at the top of the
// component body, plus a namespace reset effect when the page is
// namespace-scoped
func (p *Patcher) injectState(buf string) (string, bool, error) {
	stateVars := fmt.Sprintf("\n  const [currentPage, setCurrentPage] = useState(%d);\n"+
		"  const [pageSize, setPageSize] = useState(%d);\n", initialPage, defaultPageSize)

	namespaceReset := strings.Contains(buf, "currentNamespace")
	if namespaceReset {
		stateVars += "\n  // Reset to the first page when the namespace changes\n" +
			"  useEffect(() => {\n" +
			"    setCurrentPage(1);\n" +
			"  }, [currentNamespace]);\n"
	}

	out, err := p.componentDef.rewriteFirst(buf, "${1}"+stateVars)
	if err != nil {
		return "", false, err
	}
	return out, namespaceReset, nil
}

// 🧮 injectMath adds the slice math and the page handlers right after the
// items binding
func (p *Patcher) injectMath(buf string) (string, error) {
	logic := fmt.Sprintf("${1}\n\n"+
		"  // Pagination\n"+
		"  const totalItems = %[1]s.length;\n"+
		"  const totalPages = Math.ceil(totalItems / pageSize);\n"+
		"  const startIndex = (currentPage - 1) * pageSize;\n"+
		"  const endIndex = startIndex + pageSize;\n"+
		"  const current%[2]s = %[1]s.slice(startIndex, endIndex);\n\n"+
		"  const handlePageChange = (page: number) => {\n"+
		"    setCurrentPage(page);\n"+
		"  };\n\n"+
		"  const handlePageSizeChange = (size: number) => {\n"+
		"    setPageSize(size);\n"+
		"    setCurrentPage(1);\n"+
		"  };\n", p.target.Var, p.target.Name)

	return p.itemsBinding.rewriteFirst(buf, logic)
}

// 🔄 rewriteMapSite redirects every render-site iteration from the raw
// array to the current page slice
func (p *Patcher) rewriteMapSite(buf string) (string, error) {
	return p.mapSite.rewriteAll(buf, fmt.Sprintf("{current%s.map(", p.target.Name))
}

// 🖼️ injectWidget renders the Pagination widget just before the closing
// markup, re-emitting the original closing sequence
func (p *Patcher) injectWidget(buf string) (string, error) {
	widget := "\n      {/* Pagination */}\n" +
		"      {totalPages > 1 && (\n" +
		"        <Pagination\n" +
		"          currentPage={currentPage}\n" +
		"          totalPages={totalPages}\n" +
		"          totalItems={totalItems}\n" +
		"          pageSize={pageSize}\n" +
		"          onPageChange={handlePageChange}\n" +
		"          onPageSizeChange={handlePageSizeChange}\n" +
		"        />\n" +
		"      )}"

	return p.closingTags.rewriteFirst(buf, widget+"${1}")
}
