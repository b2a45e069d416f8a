package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Integer <-> byte packing for the two wire orders in
 *		play: UBX payload fields are little-endian, CFG keys
 *		travel big-endian.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/binary"
)

func pack_u2(v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b[:]
}

func pack_u4(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

func pack_u8(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func unpack_u2(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

func unpack_u4(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

func unpack_u8(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

/* Little-endian variants for UBX payload fields. */

func pack_u2le(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func unpack_u2le(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func pack_u8le(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

func unpack_u8le(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
