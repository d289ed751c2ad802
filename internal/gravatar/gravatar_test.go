package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?d=identicon",
		URL("alice@example.com"))
	assert.Equal(t,
		"https://www.gravatar.com/avatar/4b9bb80620f03eb3719e0a061c14283d?d=identicon",
		URL("bob@example.com"))
}

func TestURLIsStable(t *testing.T) {
	assert.Equal(t, URL("alice@example.com"), URL("alice@example.com"))
	assert.NotEqual(t, URL("alice@example.com"), URL("bob@example.com"))
}
