package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOffset(t *testing.T) {
	testCases := []struct {
		name   string
		limit  int64
		page   int64
		pages  int64
		offset int64
		ok     bool
	}{
		{"first page", 10, 1, 3, 0, true},
		{"unset page", 10, 0, 3, 0, true},
		{"last page", 10, 3, 3, 20, true},
		{"past the end", 10, 4, 3, 0, false},
		{"wrapping page", 10, 1844674407370955161, 3, 0, false},
		{"largest page", 100, math.MaxInt64, 1, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offset, ok := NewFilter(WithLimit(tc.limit), WithPage(tc.page)).Offset(tc.pages)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.offset, offset)
		})
	}
}

func TestKeywordPattern(t *testing.T) {
	assert.Equal(t, `%50\%\_off%`, KeywordPattern("50%_OFF"))
	assert.Equal(t, `%c:\\temp%`, KeywordPattern(`C:\Temp`))
	assert.Equal(t, "%chair%", KeywordPattern(" Chair "))
}
