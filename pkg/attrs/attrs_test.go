package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greatglobal/pkg/domain"
)

func TestExtractString(t *testing.T) {
	list := []any{
		"account", domain.Account("0xabc"),
		"subject", "claim:3",
		"amount", domain.NewAmount(50),
		"count", 3,
		"dangling",
	}

	assert.Equal(t, "0xabc", ExtractString(list, "account"))
	assert.Equal(t, "claim:3", ExtractString(list, "subject"))
	assert.Equal(t, "50", ExtractString(list, "amount"))
	assert.Empty(t, ExtractString(list, "count"))
	assert.Empty(t, ExtractString(list, "dangling"))
	assert.Empty(t, ExtractString(list, "missing"))
}
