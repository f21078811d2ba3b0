package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokosakti/pos_ledger_app/internal/utils/pagination"
)

func TestTokenRoundTrip(t *testing.T) {
	recordDate := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 17, 10, 32, 45, 123456789, time.UTC)

	token := pagination.EncodeToken(recordDate, createdAt)
	require.NotEmpty(t, token)

	gotDate, gotCreatedAt, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, recordDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but wrong payload shape
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}
