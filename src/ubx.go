package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	UBX binary frame codec.
 *
 * Description:	A frame on the wire is
 *
 *		  B5 62 | CLASS | ID | LEN_LO LEN_HI | PAYLOAD | CK_A CK_B
 *
 *		with the length little-endian and the two checksum
 *		bytes computed by the 8-bit Fletcher recurrence
 *
 *		  A += b; B += A   (both mod 256)
 *
 *		over CLASS through the last payload byte.
 *
 * Reference:	u-blox M9 SPG 4.04 interface description,
 *		UBX-21022436, section "UBX frame structure".
 *
 *---------------------------------------------------------------*/

import (
	"errors"
)

var ubx_preamble = []byte{0xb5, 0x62}

var (
	ErrBadPreamble    = errors.New("ubx frame does not start with the preamble")
	ErrTruncated      = errors.New("ubx frame is shorter than its declared length")
	ErrUBXBadChecksum = errors.New("ubx frame checksum mismatch")
)

type UBXFrame struct {
	Class   byte
	ID      byte
	Payload []byte
}

/* The Fletcher bytes over a checksum region, emitted A then B. */
func ubx_checksum(region []byte) (byte, byte) {
	var ckA, ckB byte

	for _, b := range region {
		ckA += b
		ckB += ckA
	}

	return ckA, ckB
}

/*-------------------------------------------------------------------
 *
 * Name:	BuildUBX
 *
 * Purpose:	Serialise class, id and payload into a complete frame.
 *
 *--------------------------------------------------------------------*/

func BuildUBX(class byte, id byte, payload []byte) []byte {
	var frame = make([]byte, 0, 8+len(payload))

	frame = append(frame, ubx_preamble...)
	frame = append(frame, class, id)
	frame = append(frame, pack_u2le(uint16(len(payload)))...)
	frame = append(frame, payload...)

	var ckA, ckB = ubx_checksum(frame[2:])
	frame = append(frame, ckA, ckB)

	return frame
}

/*-------------------------------------------------------------------
 *
 * Name:	ParseUBX
 *
 * Purpose:	Pick apart a linear buffer holding one frame.
 *
 * Returns:	The frame, or ErrBadPreamble / ErrTruncated /
 *		ErrUBXBadChecksum.  The payload slice is owned by the
 *		returned frame.
 *
 *--------------------------------------------------------------------*/

func ParseUBX(raw []byte) (*UBXFrame, error) {
	if len(raw) < 2 {
		return nil, ErrTruncated
	}

	if raw[0] != ubx_preamble[0] || raw[1] != ubx_preamble[1] {
		return nil, ErrBadPreamble
	}

	if len(raw) < 8 {
		return nil, ErrTruncated
	}

	var length = int(unpack_u2le(raw[4:6]))

	if len(raw) < 8+length {
		return nil, ErrTruncated
	}

	var ckA, ckB = ubx_checksum(raw[2 : 6+length])
	if ckA != raw[6+length] || ckB != raw[7+length] {
		return nil, ErrUBXBadChecksum
	}

	var payload = make([]byte, length)
	copy(payload, raw[6:6+length])

	return &UBXFrame{
		Class:   raw[2],
		ID:      raw[3],
		Payload: payload,
	}, nil
}

/*-------------------------------------------------------------------
 *
 * Name:	FindUBXFrame
 *
 * Purpose:	Locate and extract a frame with the given class and id
 *		from the ring, unwrapping it across the seam.
 *
 * Inputs:	rb	- The ring the serial reader deposits into.
 *		class, id
 *		start	- Ring index to begin the preamble scan at.
 *
 * Description:	The preamble scan and the two-byte length read are both
 *		wrap aware: a frame whose length field (or any other
 *		part) straddles the seam is reassembled into a linear
 *		buffer before parsing.
 *
 *--------------------------------------------------------------------*/

func FindUBXFrame(rb *RingBuffer, class byte, id byte, start int) (*UBXFrame, error) {
	var header = []byte{ubx_preamble[0], ubx_preamble[1], class, id}

	var at, ok = rb.Find(header, start)
	if !ok {
		return nil, ErrBadPreamble
	}

	/* The length may span the seam; read it byte by byte. */
	var length = int(rb.At(at+5))<<8 | int(rb.At(at+4))

	if length+8 > rb.Cap() {
		return nil, ErrTruncated
	}

	var raw = rb.CopyRange(at, length+8)

	return ParseUBX(raw)
}
