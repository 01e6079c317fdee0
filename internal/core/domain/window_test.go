package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Value(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		expected uint64
	}{
		{"zeros", Window{}, 0},
		{"nines", Window{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}, 999999999999},
		{"leading zero", Window{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1}, 12345678901},
		{"mixed", Window{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1}, 987654321111},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Value())
		})
	}
}

func TestWindow_String(t *testing.T) {
	w := Window{1, 2, 3, 8, 1, 1, 2, 1, 1, 1, 5, 5}

	assert.Equal(t, "123811211155", w.String())
	assert.Len(t, w.String(), WindowSize)
}

func TestBankResult_JSON(t *testing.T) {
	result := BankResult{
		Index:  1,
		Offset: 0,
		Length: 15,
		Window: Window{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1},
		Value:  987654321111,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"index":1,"offset":0,"length":15,"window":"987654321111","value":987654321111}`,
		string(data))
}

func TestBank_Len(t *testing.T) {
	assert.Equal(t, 0, Bank{}.Len())
	assert.Equal(t, 3, Bank{Digits: []byte("123")}.Len())
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "updated", ChangeUpdated.String())
	assert.Equal(t, "removed", ChangeRemoved.String())
	assert.Equal(t, "unknown", ChangeType(42).String())
}
