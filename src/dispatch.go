package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Turn a raw line into the typed view a caller asked
 *		for: either one concrete sentence kind, or a
 *		behavioural group shared by several kinds.
 *
 * Description:	The line is framed (format, checksum, split) first.
 *		For a concrete kind the formatter must be the one the
 *		kind answers to.  For a group, the formatter selects
 *		the matching concrete kind from a table, the kind is
 *		initialised in full, and the caller receives a copy of
 *		just the group's fields.  Either way the caller gets
 *		the view or an error, never a half-built sentence.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"slices"
)

var (
	ErrWrongKind   = errors.New("sentence is not of the requested kind")
	ErrBounds      = errors.New("sentence field count is out of bounds")
	ErrInvalidData = errors.New("sentence failed its validity check")
)

/* The contract every concrete sentence kind satisfies. */
type sentence interface {
	acceptedTypes() []string
	sentenceBounds() (minLength, maxLength uint8)
	parseNMEA(fields []string, checksum byte)
	checkValidity() bool
}

/* Sentence is the face of any successfully parsed sentence kind. */
type Sentence interface {
	GetConstellation() Constellation
	GetHeader() string
	GetChecksum() byte
}

/* One constructor per formatter. */
var sentence_factories = map[string]func() sentence{
	"DTM": func() sentence { return new(DTM) },
	"GAQ": func() sentence { return new(GAQ) },
	"GBQ": func() sentence { return new(GBQ) },
	"GBS": func() sentence { return new(GBS) },
	"GGA": func() sentence { return new(GGA) },
	"GLL": func() sentence { return new(GLL) },
	"GLQ": func() sentence { return new(GLQ) },
	"GNQ": func() sentence { return new(GNQ) },
	"GNS": func() sentence { return new(GNS) },
	"GPQ": func() sentence { return new(GPQ) },
	"GRS": func() sentence { return new(GRS) },
	"GSA": func() sentence { return new(GSA) },
	"GST": func() sentence { return new(GST) },
	"GSV": func() sentence { return new(GSV) },
	"RLM": func() sentence { return new(RLM) },
	"RMC": func() sentence { return new(RMC) },
	"TXT": func() sentence { return new(TXT) },
	"VLW": func() sentence { return new(VLW) },
	"VTG": func() sentence { return new(VTG) },
	"ZDA": func() sentence { return new(ZDA) },
}

/* Formatters whose sentences carry each group. */
var (
	poll_accepted     = []string{"GAQ", "GBQ", "GLQ", "GNQ", "GPQ"}
	pos_accepted      = []string{"DTM", "GGA", "GLL", "GNS", "RMC"}
	altitude_accepted = []string{"DTM", "GGA", "GNS"}
	pos3d_accepted    = []string{"DTM", "GGA", "GNS"}
	time_accepted     = []string{"GBS", "GGA", "GLL", "GNS", "GRS", "GST", "RLM", "RMC", "ZDA"}
)

/*-------------------------------------------------------------------
 *
 * Name:	initialise
 *
 * Purpose:	Run the fixed construction order on a framed sentence:
 *		bounds, then parse, then validity.
 *
 * Description:	The bounds convention counts the checksum and line
 *		terminator as two extra fields.  Parsing MUST NOT run
 *		when the bounds fail, because the per-kind parsers
 *		index the field vector by fixed positions.
 *
 *--------------------------------------------------------------------*/

func initialise(s sentence, fields []string, checksum byte) error {
	var nFields = len(fields) + 2

	var minLength, maxLength = s.sentenceBounds()
	if nFields < int(minLength) || nFields > int(maxLength) {
		return ErrBounds
	}

	s.parseNMEA(fields, checksum)

	if !s.checkValidity() {
		return ErrInvalidData
	}

	return nil
}

/*-------------------------------------------------------------------
 *
 * Name:	As
 *
 * Purpose:	Parse a line as one specific sentence kind.
 *
 * Example:	var gll, err = globe.As[globe.GLL](line)
 *
 * Returns:	The initialised sentence, or ErrBadFormat /
 *		ErrBadChecksum / ErrWrongKind / ErrBounds /
 *		ErrInvalidData.
 *
 *--------------------------------------------------------------------*/

func As[T any, PT interface {
	*T
	sentence
}](line string) (*T, error) {
	var fields, checksum, err = frame_fields(line)
	if err != nil {
		return nil, err
	}

	var s T
	var p = PT(&s)

	if !slices.Contains(p.acceptedTypes(), formatter_of(fields[0])) {
		return nil, ErrWrongKind
	}

	if err := initialise(p, fields, checksum); err != nil {
		return nil, err
	}

	return &s, nil
}

/* Parse builds whichever concrete kind the formatter names. */
func Parse(line string) (Sentence, error) {
	var s, err = parse_for_group(line, nil)
	if err != nil {
		return nil, err
	}

	return s.(Sentence), nil
}

/* Frame the line, pick the concrete kind for its formatter (restricted
 * to accepted when non-nil) and initialise it. */
func parse_for_group(line string, accepted []string) (sentence, error) {
	var fields, checksum, err = frame_fields(line)
	if err != nil {
		return nil, err
	}

	var formatter = formatter_of(fields[0])

	if accepted != nil && !slices.Contains(accepted, formatter) {
		return nil, ErrWrongKind
	}

	var factory, known = sentence_factories[formatter]
	if !known {
		return nil, ErrWrongKind
	}

	var s = factory()

	if err := initialise(s, fields, checksum); err != nil {
		return nil, err
	}

	return s, nil
}

/*-------------------------------------------------------------------
 *
 * Group views.  Each builds the concrete kind behind the line and
 * hands back a copy of only the group's fields, so the caller can ask
 * "is this a position-bearing sentence?" without caring which kind
 * produced it.
 *
 *--------------------------------------------------------------------*/

func Position(line string) (*POS, error) {
	var s, err = parse_for_group(line, pos_accepted)
	if err != nil {
		return nil, err
	}

	var view = *s.(interface{ position() *POS }).position()
	return &view, nil
}

func Position3D(line string) (*POS3D, error) {
	var s, err = parse_for_group(line, pos3d_accepted)
	if err != nil {
		return nil, err
	}

	var view = *s.(interface{ position3d() *POS3D }).position3d()
	return &view, nil
}

func Altitude(line string) (*ALTITUDE, error) {
	var s, err = parse_for_group(line, altitude_accepted)
	if err != nil {
		return nil, err
	}

	var view = *s.(interface{ altitudeGroup() *ALTITUDE }).altitudeGroup()
	return &view, nil
}

func Time(line string) (*TIME, error) {
	var s, err = parse_for_group(line, time_accepted)
	if err != nil {
		return nil, err
	}

	var view = *s.(interface{ timeGroup() *TIME }).timeGroup()
	return &view, nil
}

func Poll(line string) (*STD_MSG_POLL, error) {
	var s, err = parse_for_group(line, poll_accepted)
	if err != nil {
		return nil, err
	}

	var view = *s.(interface{ pollGroup() *STD_MSG_POLL }).pollGroup()
	return &view, nil
}
