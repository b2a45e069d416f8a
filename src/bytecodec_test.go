package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPackBigEndian(t *testing.T) {
	assert.Equal(t, []byte{0x12, 0x34}, pack_u2(0x1234))
	assert.Equal(t, []byte{0x20, 0x11, 0x00, 0x21}, pack_u4(0x20110021))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, pack_u8(0x0102030405060708))

	assert.Equal(t, uint16(0x1234), unpack_u2([]byte{0x12, 0x34}))
	assert.Equal(t, uint32(0x20110021), unpack_u4([]byte{0x20, 0x11, 0x00, 0x21}))
	assert.Equal(t, uint64(0x0102030405060708), unpack_u8([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}))
}

func TestPackLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0x34, 0x12}, pack_u2le(0x1234))
	assert.Equal(t, uint16(0x1234), unpack_u2le([]byte{0x34, 0x12}))

	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, pack_u8le(0x0102030405060708))
	assert.Equal(t, uint64(0x0102030405060708), unpack_u8le([]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}))
}

/* The two wire orders are byte-reverses of each other. */
func TestPackOrdersMirror(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var v = rapid.Uint16().Draw(t, "v")

		var be = pack_u2(v)
		var le = pack_u2le(v)

		assert.Equal(t, be[0], le[1])
		assert.Equal(t, be[1], le[0])
		assert.Equal(t, v, unpack_u2(be))
		assert.Equal(t, v, unpack_u2le(le))
	})
}
