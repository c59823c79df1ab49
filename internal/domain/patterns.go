package domain

import "regexp"

// Pattern pairs a reported issue name with the expression that detects it.
type Pattern struct {
	Name string
	Expr *regexp.Regexp
}

// Registry is an ordered, read-only list of patterns. Order decides the order
// in which matches on the same line are reported.
type Registry []Pattern

// defaultRegistry is compiled once; all expressions are case-sensitive and
// searched anywhere in a single line.
var defaultRegistry = Registry{
	{Name: "eval()", Expr: regexp.MustCompile(`\beval\s*\(`)},
	{Name: "new Function()", Expr: regexp.MustCompile(`\bnew\s+Function\s*\(`)},
	{Name: "setTimeout() with string", Expr: regexp.MustCompile(`\bsetTimeout\s*\(\s*["']`)},
	{Name: "setInterval() with string", Expr: regexp.MustCompile(`\bsetInterval\s*\(\s*["']`)},
	{Name: "innerHTML", Expr: regexp.MustCompile(`\binnerHTML\s*=`)},
	{Name: "document.write()", Expr: regexp.MustCompile(`\bdocument\.write\s*\(`)},
	{Name: "XMLHttpRequest", Expr: regexp.MustCompile(`\bXMLHttpRequest\b`)},
	{Name: "fetch()", Expr: regexp.MustCompile(`\bfetch\s*\(`)},
	{Name: "localStorage", Expr: regexp.MustCompile(`\blocalStorage\b`)},
	{Name: "sessionStorage", Expr: regexp.MustCompile(`\bsessionStorage\b`)},
	// Only a single bare identifier counts as a dynamic require.
	{Name: "require() with variable", Expr: regexp.MustCompile(`\brequire\s*\(\s*\w+\s*\)`)},
	{Name: "child_process.exec()", Expr: regexp.MustCompile(`\bexec\s*\(`)},
	{Name: "child_process.spawn()", Expr: regexp.MustCompile(`\bspawn\s*\(`)},
	{Name: "child_process.execFile()", Expr: regexp.MustCompile(`\bexecFile\s*\(`)},
	{Name: "fs module usage", Expr: regexp.MustCompile(`\bfs\b`)},
	{Name: "process", Expr: regexp.MustCompile(`\bprocess\b`)},
	{Name: "vm module usage", Expr: regexp.MustCompile(`\bvm\b`)},
	{Name: "importScripts()", Expr: regexp.MustCompile(`\bimportScripts\s*\(`)},
	{Name: "postMessage()", Expr: regexp.MustCompile(`\bpostMessage\s*\(`)},
}

// DefaultRegistry returns the built-in pattern list.
func DefaultRegistry() Registry {
	return defaultRegistry
}

// Names lists issue names in registry order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for _, p := range r {
		names = append(names, p.Name)
	}

	return names
}

// MatchLine returns the names of every pattern found in line, each at most
// once, in registry order.
func (r Registry) MatchLine(line string) []string {
	var hits []string

	for _, p := range r {
		if p.Expr.MatchString(line) {
			hits = append(hits, p.Name)
		}
	}

	return hits
}
