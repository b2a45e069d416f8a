package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Strict string to number conversion into Fields.
 *
 * Description:	A conversion is valid only when the input is non-empty,
 *		every character was consumed, unsigned inputs carry no
 *		sign, and the value fits the destination width.  On any
 *		failure the field simply comes back invalid; numeric
 *		parse problems are never hard errors.
 *
 *---------------------------------------------------------------*/

import (
	"strconv"
)

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

func strtounsigned[T unsignedInt](str string, field *Field[T], base int, bits int) {
	/* ParseUint rejects empty input, any sign byte, stray characters
	 * and out-of-range values, which is exactly the discipline here. */
	var val, err = strconv.ParseUint(str, base, bits)

	field.Set(T(val), err == nil)
}

func strtosigned[T signedInt](str string, field *Field[T], base int, bits int) {
	var val, err = strconv.ParseInt(str, base, bits)

	field.Set(T(val), err == nil)
}

func strtouint8(str string, field *Field[uint8], base int) {
	strtounsigned(str, field, base, 8)
}

func strtouint16(str string, field *Field[uint16], base int) {
	strtounsigned(str, field, base, 16)
}

func strtouint32(str string, field *Field[uint32], base int) {
	strtounsigned(str, field, base, 32)
}

func strtouint64(str string, field *Field[uint64], base int) {
	strtounsigned(str, field, base, 64)
}

func strtoint8(str string, field *Field[int8], base int) {
	strtosigned(str, field, base, 8)
}

func strtoint16(str string, field *Field[int16], base int) {
	strtosigned(str, field, base, 16)
}

func strtoint32(str string, field *Field[int32], base int) {
	strtosigned(str, field, base, 32)
}

func strtofloat(str string, field *Field[float64]) {
	var val, err = strconv.ParseFloat(str, 64)

	field.Set(val, err == nil)
}
