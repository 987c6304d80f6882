package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()

	assert.False(t, id1.IsEmpty())
	assert.False(t, id2.IsEmpty())
	assert.NotEqual(t, id1, id2, "IDs should be unique")

	// UUID string form: 36 chars with hyphens
	assert.Len(t, id1.String(), 36)
}

func TestParseReportID(t *testing.T) {
	id, err := ParseReportID("abc-123")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id.String())

	_, err = ParseReportID("   ")
	assert.Error(t, err)
}
