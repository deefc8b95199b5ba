package utils_test

import (
	"testing"

	"naval-tables/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"Float", 1.5, 1.5, false},
		{"Int", 75, 75, false},
		{"String", " 203.2 ", 203.2, false},
		{"Bytes", []byte("10"), 10, false},
		{"BadString", "abc", 0, true},
		{"Nil", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToFloat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool("1"))
	assert.True(t, utils.ToBool("TRUE"))
	assert.True(t, utils.ToBool("yes"))
	assert.True(t, utils.ToBool(1))
	assert.True(t, utils.ToBool([]byte("true")))
	assert.False(t, utils.ToBool(""))
	assert.False(t, utils.ToBool("0"))
	assert.False(t, utils.ToBool(2))
	assert.False(t, utils.ToBool(nil))
}
