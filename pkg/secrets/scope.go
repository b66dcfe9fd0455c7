// Package secrets holds the helpers shared by the credential stores.
package secrets

import "strings"

// ScopeChain returns the lookup order for scope: the scope itself, each
// enclosing folder, then the global scope "".
func ScopeChain(scope string) []string {
	scope = strings.Trim(scope, "/ ")
	chain := []string{}
	for scope != "" {
		chain = append(chain, scope)
		i := strings.LastIndex(scope, "/")
		if i < 0 {
			break
		}
		scope = strings.TrimRight(scope[:i], "/")
	}
	return append(chain, "")
}

// NormalizeScope trims the separators around scope.
func NormalizeScope(scope string) string {
	return strings.Trim(scope, "/ ")
}
