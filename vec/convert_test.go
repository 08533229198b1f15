package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii(nil))
	assert.True(t, ascii([]byte("abc \x7f")))
	assert.False(t, ascii([]byte("caf\xe9")))
	assert.False(t, ascii([]byte{0x80}))
}

func TestFromLatin1(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{name: "high_bytes", input: []byte("caf\xe9"), want: []byte("café")},
		{name: "nbsp", input: []byte{0xa0}, want: []byte(" ")},
		{name: "ascii", input: []byte("plain"), want: []byte("plain")},
		{name: "empty", input: []byte{}, want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fromLatin1(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUTF8(t *testing.T) {
	t.Parallel()

	t.Run("utf8_passthrough", func(t *testing.T) {
		t.Parallel()

		el := String{Data: []byte("héllo"), Encoding: UTF8}
		data, converted, err := toUTF8(el)
		require.NoError(t, err)
		assert.False(t, converted)
		assert.True(t, &data[0] == &el.Data[0], "data should pass through without copying")
	})

	t.Run("bytes_passthrough", func(t *testing.T) {
		t.Parallel()

		el := String{Data: []byte{0xff, 0xfe}, Encoding: Bytes}
		data, converted, err := toUTF8(el)
		require.NoError(t, err)
		assert.False(t, converted)
		assert.Equal(t, el.Data, data)
	})

	t.Run("latin1_ascii_fast_path", func(t *testing.T) {
		t.Parallel()

		el := String{Data: []byte("plain"), Encoding: Latin1}
		data, converted, err := toUTF8(el)
		require.NoError(t, err)
		assert.False(t, converted)
		assert.True(t, &data[0] == &el.Data[0], "ASCII latin1 should pass through without copying")
	})

	t.Run("latin1_converted", func(t *testing.T) {
		t.Parallel()

		el := String{Data: []byte("\xbfqu\xe9?"), Encoding: Latin1}
		data, converted, err := toUTF8(el)
		require.NoError(t, err)
		assert.True(t, converted)
		assert.Equal(t, []byte("¿qué?"), data)
	})
}
