package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	The CFG key/value model used by UBX-CFG-VALGET and
 *		UBX-CFG-VALSET.
 *
 * Description:	A configuration key is a 32-bit identifier whose bits
 *		30..28 encode the width of its value:
 *
 *			0x1, 0x2	1 byte  (bool / U1)
 *			0x3		2 bytes (U2)
 *			0x4		4 bytes (U4 / I4 / R4 / X4)
 *			0x5		8 bytes (U8 / R8 / X8)
 *
 *		On the wire the key travels big-endian and the value
 *		little-endian.  The encoded value width MUST match the
 *		key's width nibble; a mismatch leaves the remainder of
 *		a payload unaligned, so decoding stops there.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
)

var (
	ErrUnalignedValue = errors.New("cfg key width nibble is unrecognised")
	ErrShortPayload   = errors.New("cfg payload ends inside a key/value pair")
	ErrWidthMismatch  = errors.New("cfg value width does not match its key")
)

type CFGKey uint32

const (
	/* --------------- NAVSPG --------------- */
	NAVSPG_DYNMODEL CFGKey = 0x20110021
	/* -------------------------------------- */
)

/* Width in bytes of the value belonging to this key, from bits 30..28. */
func (k CFGKey) width() (int, bool) {
	switch (uint32(k) >> 28) & 0x7 {
	case 0x1, 0x2:
		return 1, true
	case 0x3:
		return 2, true
	case 0x4:
		return 4, true
	case 0x5:
		return 8, true
	default:
		return 0, false
	}
}

/* Configuration layers on the receiver. */
type CFGLayer uint8

const (
	LAYER_RAM     CFGLayer = 0
	LAYER_BBR     CFGLayer = 1
	LAYER_FLASH   CFGLayer = 2
	LAYER_DEFAULT CFGLayer = 7
)

func GetLayer(layer uint8) CFGLayer {
	switch layer {
	case 0:
		return LAYER_RAM
	case 1:
		return LAYER_BBR
	case 2:
		return LAYER_FLASH
	default:
		return LAYER_DEFAULT
	}
}

/* Layer bits for a CFG-VALSET write. */
const (
	LAYERS_RAM   uint8 = 1 << 0
	LAYERS_BBR   uint8 = 1 << 1
	LAYERS_FLASH uint8 = 1 << 2
)

/* Bitmask equivalent of a single layer, the way a VALSET names it. */
func (l CFGLayer) Mask() uint8 {
	switch l {
	case LAYER_BBR:
		return LAYERS_BBR
	case LAYER_FLASH:
		return LAYERS_FLASH
	default:
		return LAYERS_RAM
	}
}

/* Dynamic platform models for NAVSPG-DYNMODEL. */
type DynModel uint8

const (
	DYNMODEL_PORT     DynModel = 0
	DYNMODEL_STAT     DynModel = 2
	DYNMODEL_PED      DynModel = 3
	DYNMODEL_AUTOMOT  DynModel = 4
	DYNMODEL_SEA      DynModel = 5
	DYNMODEL_AIR1     DynModel = 6
	DYNMODEL_AIR2     DynModel = 7
	DYNMODEL_AIR4     DynModel = 8
	DYNMODEL_WRIST    DynModel = 9
	DYNMODEL_BIKE     DynModel = 10
	DYNMODEL_MOWER    DynModel = 11
	DYNMODEL_ESCOOTER DynModel = 12
)

/* A value of one of the four widths the key space admits. */
type CFGValue struct {
	size int
	bits uint64
}

func CFGValueU1(v uint8) CFGValue  { return CFGValue{size: 1, bits: uint64(v)} }
func CFGValueU2(v uint16) CFGValue { return CFGValue{size: 2, bits: uint64(v)} }
func CFGValueU4(v uint32) CFGValue { return CFGValue{size: 4, bits: uint64(v)} }
func CFGValueU8(v uint64) CFGValue { return CFGValue{size: 8, bits: v} }

func (v CFGValue) Size() int   { return v.size }
func (v CFGValue) U1() uint8   { return uint8(v.bits) }
func (v CFGValue) U2() uint16  { return uint16(v.bits) }
func (v CFGValue) U4() uint32  { return uint32(v.bits) }
func (v CFGValue) U8() uint64  { return v.bits }

type CFGDataPair struct {
	Key   CFGKey
	Value CFGValue
}

/*-------------------------------------------------------------------
 *
 * Name:	encode_pairs
 *
 * Purpose:	Serialise a pair list: big-endian key bytes followed by
 *		little-endian value bytes, width taken from the key.
 *
 *--------------------------------------------------------------------*/

func encode_pairs(pairs []CFGDataPair) ([]byte, error) {
	var out []byte

	for _, pair := range pairs {
		var width, ok = pair.Key.width()
		if !ok {
			return nil, ErrUnalignedValue
		}

		if width != pair.Value.size {
			return nil, ErrWidthMismatch
		}

		out = append(out, pack_u4(uint32(pair.Key))...)
		out = append(out, pack_u8le(pair.Value.bits)[:width]...)
	}

	return out, nil
}

/*-------------------------------------------------------------------
 *
 * Name:	decode_pairs
 *
 * Purpose:	Parse the trailing key/value portion of a CFG-VALGET
 *		response payload.
 *
 * Returns:	The pairs decoded so far and an error if the payload
 *		ends inside a pair or a key carries an unrecognised
 *		width nibble.  The partial list is still returned so a
 *		caller can decide whether to use it.
 *
 *--------------------------------------------------------------------*/

func decode_pairs(payload []byte) ([]CFGDataPair, error) {
	var pairs []CFGDataPair

	for len(payload) > 0 {
		if len(payload) < 4 {
			return pairs, ErrShortPayload
		}

		var key = CFGKey(unpack_u4(payload[:4]))

		var width, ok = key.width()
		if !ok {
			return pairs, ErrUnalignedValue
		}

		if len(payload) < 4+width {
			return pairs, ErrShortPayload
		}

		var le [8]byte
		copy(le[:], payload[4:4+width])

		pairs = append(pairs, CFGDataPair{
			Key:   key,
			Value: CFGValue{size: width, bits: unpack_u8le(le[:])},
		})

		payload = payload[4+width:]
	}

	return pairs, nil
}
