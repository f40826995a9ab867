package astvalidate

import (
	"regexp"
	"strings"

	"surge/internal/ast"
	"surge/internal/diag"
)

// versionTerm matches one comparator+version term of a semver-requirement
// expression, e.g. "^0.8.0", ">=0.7.0", "0.8.19", "~0.8". The grammar this
// accepts is intentionally loose (Solidity's pragma grammar itself is a
// small ad hoc comparator list, not full npm-style semver ranges).
var versionTerm = regexp.MustCompile(`^(\^|~|>=|<=|>|<|=)?\d+(\.\d+){0,2}$`)

func (v *validator) pragma(p *ast.PragmaItem) {
	if p == nil || p.Kind != ast.PragmaSolidityVersion {
		return
	}
	if !isSemverRequirement(p.VersionExpr) {
		v.errorf(diag.SynBadPragmaVersion, p.Span, "pragma solidity version must be a semver requirement expression")
	}
}

func (v *validator) checkSoleLoopBody(body ast.StmtID) {
	st := v.b.Stmts.Get(body)
	if st != nil && st.Kind == ast.SVarDecl {
		v.errorf(diag.SynVarDeclSoleLoopBody, st.Span, "variable declaration cannot be the sole body of a loop")
	}
}

// isSemverRequirement reports whether expr is a space-separated list of
// valid comparator+version terms. collectPragmaTail in the parser joins
// tokens that touch in the source without a separator and puts a single
// space where the source had whitespace, so that's the only separator
// expected here.
func isSemverRequirement(expr string) bool {
	if expr == "" {
		return false
	}
	terms := strings.Fields(expr)
	if len(terms) == 0 {
		return false
	}
	for _, t := range terms {
		if !versionTerm.MatchString(t) {
			return false
		}
	}
	return true
}
