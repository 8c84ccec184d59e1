package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"My Team Photo (1).JPG", "my-team-photo-1.jpg"},
		{"../../etc/passwd", "passwd"},
		{"C:\\Users\\me\\logo.png", "logo.png"},
		{"???.png", "image.png"},
		{"", "image"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestGetString(t *testing.T) {
	data := map[string]interface{}{"a": "  x ", "b": []string{"first", "second"}, "c": 5}
	assert.Equal(t, "x", GetString(data, "a"))
	assert.Equal(t, "first", GetString(data, "b"))
	assert.Equal(t, "5", GetString(data, "c"))
	assert.Equal(t, "", GetString(data, "missing"))
}

func TestGetInt(t *testing.T) {
	data := map[string]interface{}{"s": "12", "f": float64(3), "frac": 2.5, "bad": "x", "empty": ""}
	v, err := GetInt(data, "s")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	v, err = GetInt(data, "f")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = GetInt(data, "empty")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = GetInt(data, "frac")
	assert.Error(t, err)
	_, err = GetInt(data, "bad")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	for _, in := range []interface{}{true, "on", "TRUE", "1", "yes"} {
		v, err := GetBool(map[string]interface{}{"k": in}, "k")
		require.NoError(t, err)
		assert.True(t, v, "%v", in)
	}
	v, err := GetBool(map[string]interface{}{}, "k")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = GetBool(map[string]interface{}{"k": "maybe"}, "k")
	assert.Error(t, err)
}

func TestGetStringList(t *testing.T) {
	assert.Equal(t, []string{}, GetStringList(map[string]interface{}{}, "k"))
	assert.Equal(t, []string{"a", "b"}, GetStringList(map[string]interface{}{"k": "a\r\n\n b "}, "k"))
	assert.Equal(t, []string{"b", "a"}, GetStringList(map[string]interface{}{"k": []interface{}{"b", "", "a"}}, "k"))
}

func TestGenerateAdminKey(t *testing.T) {
	key, err := GenerateAdminKey(32)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	short, err := GenerateAdminKey(4)
	require.NoError(t, err)
	assert.Len(t, short, 16)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KiB", FormatBytes(1536))
	assert.Equal(t, "10.0 MiB", FormatBytes(10<<20))
	assert.Equal(t, "2.0 GiB", FormatBytes(2<<30))
}
