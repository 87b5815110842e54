package token

import (
	"strings"
	"sync"
)

var (
	registryMu      sync.RWMutex
	nextTokenID     = maxBuiltin
	dynamicTokens   = make(map[TokenType]string)
	dynamicKeywords = make(map[string]TokenType)
)

// Register registers a dynamic keyword token and returns its type.
// Registering the same name twice returns the same type.
func Register(name string) TokenType {
	key := strings.ToLower(name)

	registryMu.Lock()
	defer registryMu.Unlock()

	if t, ok := dynamicKeywords[key]; ok {
		return t
	}
	nextTokenID++
	t := nextTokenID
	dynamicTokens[t] = strings.ToUpper(name)
	dynamicKeywords[key] = t
	return t
}

// RegisterAlias makes name lex as the existing token t.
// REGEXP, for example, is an alias of RLIKE.
func RegisterAlias(name string, t TokenType) {
	registryMu.Lock()
	defer registryMu.Unlock()
	dynamicKeywords[strings.ToLower(name)] = t
}

func getDynamicName(t TokenType) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := dynamicTokens[t]
	return name, ok
}

// LookupDynamicKeyword returns the token type for a dynamic keyword.
// Lookup is case-insensitive. Returns IDENT and false if not registered.
func LookupDynamicKeyword(name string) (TokenType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if tok, ok := dynamicKeywords[strings.ToLower(name)]; ok {
		return tok, true
	}
	return IDENT, false
}

// IsDynamic returns true if the token type is a dynamically registered token.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// RegisteredTokens returns a copy of all registered dynamic tokens.
func RegisteredTokens() map[TokenType]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make(map[TokenType]string, len(dynamicTokens))
	for k, v := range dynamicTokens {
		result[k] = v
	}
	return result
}
