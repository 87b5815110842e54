package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	id1 := Register("TEST_IDEMPOTENT")
	id2 := Register("test_idempotent")

	assert.Equal(t, id1, id2, "same name should return same ID regardless of case")
}

func TestRegisterDifferentNames(t *testing.T) {
	id1 := Register("TEST_NAME_A")
	id2 := Register("TEST_NAME_B")

	assert.NotEqual(t, id1, id2)
}

func TestRegisterConcurrent(t *testing.T) {
	const numGoroutines = 100
	var wg sync.WaitGroup
	ids := make([]TokenType, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("TEST_CONCURRENT")
		}(i)
	}
	wg.Wait()

	for i := 1; i < numGoroutines; i++ {
		require.Equal(t, ids[0], ids[i], "concurrent registration should return same ID")
	}
}

func TestLookupDynamicKeyword(t *testing.T) {
	expectedID := Register("TEST_LOOKUP")

	gotID, ok := LookupDynamicKeyword("test_lookup")
	require.True(t, ok)
	assert.Equal(t, expectedID, gotID)

	_, ok = LookupDynamicKeyword("NONEXISTENT_KEYWORD_12345")
	assert.False(t, ok)
}

func TestRegisterAlias(t *testing.T) {
	id := Register("TEST_ALIASED")
	RegisterAlias("TEST_ALIAS", id)

	got, ok := LookupDynamicKeyword("test_alias")
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, "TEST_ALIASED", got.String(), "alias keeps the registered name")
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, IsDynamic(SELECT))
	assert.False(t, IsDynamic(WITH))
	assert.False(t, IsDynamic(EOF))

	assert.True(t, IsDynamic(Register("TEST_DYNAMIC_CHECK")))
}

func TestRegisteredTokens(t *testing.T) {
	name := "TEST_REGISTERED_TOKENS"
	id := Register(name)

	tokens := RegisteredTokens()
	assert.Equal(t, name, tokens[id])

	tokens[id] = "MODIFIED"
	assert.Equal(t, name, RegisteredTokens()[id], "RegisteredTokens should return a copy")
}
