package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCFGKeyWidth(t *testing.T) {
	var w, ok = NAVSPG_DYNMODEL.width()
	require.True(t, ok)
	assert.Equal(t, 1, w) // 0x2 nibble -> one byte

	w, ok = CFGKey(0x10000000).width()
	require.True(t, ok)
	assert.Equal(t, 1, w)

	w, ok = CFGKey(0x30010005).width()
	require.True(t, ok)
	assert.Equal(t, 2, w)

	w, ok = CFGKey(0x40020007).width()
	require.True(t, ok)
	assert.Equal(t, 4, w)

	w, ok = CFGKey(0x5003000a).width()
	require.True(t, ok)
	assert.Equal(t, 8, w)

	_, ok = CFGKey(0x00000001).width()
	assert.False(t, ok)

	_, ok = CFGKey(0x60000001).width()
	assert.False(t, ok)

	// Bit 31 does not participate in the width nibble.
	w, ok = CFGKey(0xa0000001).width()
	require.True(t, ok)
	assert.Equal(t, 1, w)
}

func TestGetLayer(t *testing.T) {
	assert.Equal(t, LAYER_RAM, GetLayer(0))
	assert.Equal(t, LAYER_BBR, GetLayer(1))
	assert.Equal(t, LAYER_FLASH, GetLayer(2))
	assert.Equal(t, LAYER_DEFAULT, GetLayer(7))
	assert.Equal(t, LAYER_DEFAULT, GetLayer(42))
}

func TestEncodePairs(t *testing.T) {
	var pairs = []CFGDataPair{
		{Key: NAVSPG_DYNMODEL, Value: CFGValueU1(uint8(DYNMODEL_AIR4))},
	}

	var encoded, err = encode_pairs(pairs)
	require.NoError(t, err)

	// Key big-endian, value little-endian.
	assert.Equal(t, []byte{0x20, 0x11, 0x00, 0x21, 0x08}, encoded)
}

func TestEncodePairsMultiWidth(t *testing.T) {
	var pairs = []CFGDataPair{
		{Key: CFGKey(0x30010005), Value: CFGValueU2(0x1234)},
		{Key: CFGKey(0x40020007), Value: CFGValueU4(0xdeadbeef)},
	}

	var encoded, err = encode_pairs(pairs)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x30, 0x01, 0x00, 0x05, 0x34, 0x12,
		0x40, 0x02, 0x00, 0x07, 0xef, 0xbe, 0xad, 0xde,
	}, encoded)
}

func TestEncodePairsWidthMismatch(t *testing.T) {
	// A two-byte value under a one-byte key must not encode.
	var _, err = encode_pairs([]CFGDataPair{
		{Key: NAVSPG_DYNMODEL, Value: CFGValueU2(0x1234)},
	})
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestDecodePairs(t *testing.T) {
	var pairs, err = decode_pairs([]byte{0x20, 0x11, 0x00, 0x21, 0x08})
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	assert.Equal(t, NAVSPG_DYNMODEL, pairs[0].Key)
	assert.Equal(t, uint8(0x08), pairs[0].Value.U1())
}

func TestDecodePairsUnalignedAborts(t *testing.T) {
	// First pair fine, second key has width nibble 0x6: decoding stops
	// and hands back what it has.
	var payload = []byte{
		0x20, 0x11, 0x00, 0x21, 0x08,
		0x60, 0x00, 0x00, 0x01, 0xff,
	}

	var pairs, err = decode_pairs(payload)
	assert.ErrorIs(t, err, ErrUnalignedValue)
	require.Len(t, pairs, 1)
	assert.Equal(t, NAVSPG_DYNMODEL, pairs[0].Key)
}

func TestDecodePairsShortPayload(t *testing.T) {
	// Value cut off.
	var pairs, err = decode_pairs([]byte{0x30, 0x01, 0x00, 0x05, 0x34})
	assert.ErrorIs(t, err, ErrShortPayload)
	assert.Empty(t, pairs)

	// Key cut off.
	_, err = decode_pairs([]byte{0x20, 0x11})
	assert.ErrorIs(t, err, ErrShortPayload)
}

func TestDecodePairsEmpty(t *testing.T) {
	var pairs, err = decode_pairs(nil)
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

/* Round trip over pair lists respecting the key width rule. */
func TestCFGPairsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var nPairs = rapid.IntRange(0, 8).Draw(t, "nPairs")

		var pairs []CFGDataPair
		for i := 0; i < nPairs; i++ {
			var nibble = rapid.SampledFrom([]uint32{0x1, 0x2, 0x3, 0x4, 0x5}).Draw(t, "nibble")
			var low = rapid.Uint32Range(0, 0x0fffffff).Draw(t, "low")
			var key = CFGKey(nibble<<28 | low)

			var width, ok = key.width()
			require.True(t, ok)

			var bits = rapid.Uint64().Draw(t, "bits")

			var value CFGValue
			switch width {
			case 1:
				value = CFGValueU1(uint8(bits))
			case 2:
				value = CFGValueU2(uint16(bits))
			case 4:
				value = CFGValueU4(uint32(bits))
			case 8:
				value = CFGValueU8(bits)
			}

			pairs = append(pairs, CFGDataPair{Key: key, Value: value})
		}

		var encoded, err = encode_pairs(pairs)
		require.NoError(t, err)

		var decoded, decodeErr = decode_pairs(encoded)
		require.NoError(t, decodeErr)

		require.Len(t, decoded, len(pairs))
		for i := range pairs {
			assert.Equal(t, pairs[i], decoded[i])
		}
	})
}
