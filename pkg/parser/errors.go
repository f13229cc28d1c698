package parser

import "github.com/zoid-lang/zoidc/pkg/diagnostic"

// Errors returns every diagnostic recorded while parsing.
func (p *Parser) Errors() []diagnostic.Diagnostic {
	return p.Diagnostics
}

// Count returns the number of diagnostics recorded.
func (p *Parser) Count() int {
	return len(p.Diagnostics)
}

// First returns the first diagnostic recorded, or false if there were
// none.
func (p *Parser) First() (diagnostic.Diagnostic, bool) {
	if len(p.Diagnostics) == 0 {
		return diagnostic.Diagnostic{}, false
	}
	return p.Diagnostics[0], true
}
