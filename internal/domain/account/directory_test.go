package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_FindByIdentifier(t *testing.T) {
	accounts := []Account{
		{Identifier: "a@x.com"},
		{Identifier: "b@x.com"},
	}
	dir := NewDirectory(accounts)

	acc, found := dir.FindByIdentifier("b@x.com")
	require.True(t, found)
	assert.Equal(t, "b@x.com", acc.Identifier)

	// Совпадение точное: каталог работает с уже нормализованными идентификаторами
	_, found = dir.FindByIdentifier("B@X.COM")
	assert.False(t, found)

	_, found = dir.FindByIdentifier("missing@x.com")
	assert.False(t, found)
}

func TestDirectory_FindReturnsStoredElement(t *testing.T) {
	accounts := []Account{{Identifier: "a@x.com"}}
	dir := NewDirectory(accounts)

	acc, found := dir.FindByIdentifier("a@x.com")
	require.True(t, found)

	// Возвращается элемент коллекции, а не копия: правки видны в срезе
	acc.Fund = 7.5
	assert.Equal(t, 7.5, accounts[0].Fund)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a@x.com", Normalize(" A@X.Com "))
	assert.Equal(t, "", Normalize("   "))
}
