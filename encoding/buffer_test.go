package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangxie/citygeom/common"
)

func Test_NewHexBuffer(t *testing.T) {
	testCases := map[string]struct {
		input  string
		errMsg string
		bytes  []byte
	}{
		"empty":      {"", "", []byte{}},
		"upper":      {"01FF80", "", []byte{0x01, 0xFF, 0x80}},
		"lower":      {"01ff80", "", []byte{0x01, 0xFF, 0x80}},
		"odd-length": {"01F", "odd length", nil},
		"bad-digit":  {"0G", "invalid hex digit 'G' at offset 1", nil},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			buf, err := NewHexBuffer(tc.input)
			if tc.errMsg != "" {
				require.ErrorIs(t, err, common.ErrMalformedInput)
				require.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.bytes), buf.Len())
			for i, b := range tc.bytes {
				require.Equal(t, b, buf.Get(i))
			}
		})
	}
}

func Test_HexBufferPut(t *testing.T) {
	buf := MakeHexBuffer(3)
	require.Equal(t, 3, buf.Len())
	buf.Put(0, 0x01)
	buf.Put(1, 0xAB)
	buf.Put(2, 0x0F)
	require.Equal(t, "01AB0F", buf.String())
}

func Test_RawBuffer(t *testing.T) {
	buf := make(RawBuffer, 2)
	buf.Put(1, 0x7F)
	require.Equal(t, 2, buf.Len())
	require.Equal(t, byte(0x7F), buf.Get(1))
	require.Equal(t, RawBuffer{0x00, 0x7F}, buf)
}
