package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Limit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, PageRequest{}.Limit())
	assert.Equal(t, DefaultPageSize, PageRequest{MaxResults: -5}.Limit())
	assert.Equal(t, 25, PageRequest{MaxResults: 25}.Limit())
	assert.Equal(t, MaxPageSize, PageRequest{MaxResults: MaxPageSize + 1}.Limit())
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{}.Offset())
	assert.Equal(t, 0, PageRequest{PageToken: "not base64!"}.Offset())
	assert.Equal(t, 0, PageRequest{PageToken: EncodePageToken(-3)}.Offset())
	assert.Equal(t, 40, PageRequest{PageToken: EncodePageToken(40)}.Offset())
}

func TestNextPageToken(t *testing.T) {
	// 10 rows seen out of 30: next page starts at 10.
	token := NextPageToken(0, 10, 30)
	assert.Equal(t, 10, PageRequest{PageToken: token}.Offset())

	// Last page yields no token.
	assert.Empty(t, NextPageToken(20, 10, 30))
	assert.Empty(t, NextPageToken(0, 10, 10))
}
