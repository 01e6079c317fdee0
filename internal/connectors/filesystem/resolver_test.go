package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "file:// URI is converted to local path",
			uri:  "file:///Users/test/inputs/banks.txt",
			want: "/Users/test/inputs/banks.txt",
		},
		{
			name: "file:// URI with spaces",
			uri:  "file:///Users/test/my inputs/banks.txt",
			want: "/Users/test/my inputs/banks.txt",
		},
		{
			name: "absolute path passes through",
			uri:  "/Users/test/inputs/banks.txt",
			want: "/Users/test/inputs/banks.txt",
		},
		{
			name: "path is cleaned",
			uri:  "/Users/test/./inputs/../inputs/banks.txt",
			want: "/Users/test/inputs/banks.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.uri))
		})
	}

	t.Run("relative path is made absolute", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(wd, "inputs", "banks.txt"), ResolvePath("inputs/banks.txt"))
	})
}
