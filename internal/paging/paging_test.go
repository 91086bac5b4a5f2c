package paging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFlatShape(t *testing.T) {
	var raw RawPage[string]
	require.NoError(t, json.Unmarshal([]byte(`{
		"content": ["a", "b", "c"],
		"totalElements": 42,
		"totalPages": 14,
		"number": 2,
		"size": 3
	}`), &raw))

	p := Normalize(raw)
	assert.Equal(t, []string{"a", "b", "c"}, p.Items)
	assert.Equal(t, 2, p.PageIndex)
	assert.Equal(t, 3, p.PageSize)
	assert.Equal(t, 42, p.TotalItems)
	assert.Equal(t, 14, p.TotalPages)
}

func TestNormalizeMetadataWinsOverFlatFields(t *testing.T) {
	// Conflicting flat fields must be ignored outright, never merged.
	var raw RawPage[string]
	require.NoError(t, json.Unmarshal([]byte(`{
		"content": ["x"],
		"totalElements": 999,
		"totalPages": 99,
		"number": 9,
		"size": 90,
		"metadata": {"totalElements": 7, "totalPages": 4, "number": 1, "size": 2}
	}`), &raw))

	p := Normalize(raw)
	assert.Equal(t, 1, p.PageIndex)
	assert.Equal(t, 2, p.PageSize)
	assert.Equal(t, 7, p.TotalItems)
	assert.Equal(t, 4, p.TotalPages)
}

func TestNormalizeMissingFieldsDefault(t *testing.T) {
	var raw RawPage[int]
	require.NoError(t, json.Unmarshal([]byte(`{"content": [10, 20]}`), &raw))

	p := Normalize(raw)
	assert.Equal(t, 0, p.PageIndex)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 2, p.TotalItems)
	assert.Equal(t, 2, p.PageSize)
}

func TestNormalizeEmptyPayload(t *testing.T) {
	p := Normalize(RawPage[int]{})
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.PageIndex)
	assert.Equal(t, 0, p.TotalItems)
	assert.Equal(t, 1, p.TotalPages)
}

func TestNormalizePartialMetadata(t *testing.T) {
	// A metadata block that omits fields still gets the defensive
	// defaults; absent must not read as zero.
	var raw RawPage[string]
	require.NoError(t, json.Unmarshal([]byte(`{
		"content": ["a", "b"],
		"totalPages": 99,
		"metadata": {"totalElements": 50}
	}`), &raw))

	p := Normalize(raw)
	assert.Equal(t, 50, p.TotalItems)
	assert.Equal(t, 1, p.TotalPages, "flat totalPages is ignored, default applies")
	assert.Equal(t, 0, p.PageIndex)
	assert.Equal(t, 2, p.PageSize)
}

func TestNormalizePartialFlatFields(t *testing.T) {
	n := 3
	p := Normalize(RawPage[string]{Content: []string{"a"}, Number: &n})
	assert.Equal(t, 3, p.PageIndex)
	assert.Equal(t, 1, p.TotalItems)
	assert.Equal(t, 1, p.TotalPages)
}
