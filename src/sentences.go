package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Typed models for the NMEA sentences of the NEO-M9N
 *		family.
 *
 * Description:	Every sentence kind embeds BASE (header, constellation,
 *		checksum) and whichever behavioural groups it carries:
 *
 *			STD_MSG_POLL	the queried message id
 *			POS		latitude / longitude
 *			ALTITUDE	altitude
 *			POS3D		POS + ALTITUDE
 *			TIME		HHMMSS.SS UTC time of day
 *
 *		A kind declares its accepted formatter and its field
 *		count bounds, parses its fields through the strict
 *		converters in numparse.go, and reports validity.  The
 *		bounds convention counts the checksum and terminator as
 *		two extra fields on top of the comma split slices.
 *
 *		Initialisation order is fixed: bounds first (so parsing
 *		can never index past the field vector), then parse,
 *		then the validity check.
 *
 * Reference:	u-blox M9 SPG 4.04 interface description,
 *		UBX-21022436.
 *
 *---------------------------------------------------------------*/

type Constellation uint8

const (
	INVALID Constellation = iota
	NONE                  /* mixed-constellation GN talker */
	GPS
	GLONASS
	GALILEO
	BEIDOU
)

func (c Constellation) String() string {
	switch c {
	case NONE:
		return "MIXED"
	case GPS:
		return "GPS"
	case GLONASS:
		return "GLONASS"
	case GALILEO:
		return "GALILEO"
	case BEIDOU:
		return "BEIDOU"
	default:
		return "INVALID"
	}
}

/* Satellite data repeated inside GSV. */
type SatData struct {
	Svid uint8  /* Satellite ID */
	Elv  uint8  /* Elevation, degrees */
	Az   uint16 /* Azimuth, degrees */
	Cno  uint8  /* Signal strength, dBHz */
}

/* -------------------------- BASE -------------------------- */

type BASE struct {
	header        string
	constellation Constellation
	checksum      byte
}

func (b *BASE) parseBASE(fields []string, checksum byte) {
	b.header = fields[0]
	b.constellation = convert_constellation(fields[0])
	b.checksum = checksum
}

func (b *BASE) checkBASE() bool {
	return b.constellation != INVALID
}

func (b *BASE) GetConstellation() Constellation {
	return b.constellation
}

func (b *BASE) GetHeader() string {
	return b.header
}

func (b *BASE) GetChecksum() byte {
	return b.checksum
}

/* ----------------------- STD_MSG_POLL ---------------------- */

/* The group shared by the GxQ poll sentences: which standard message
 * is being requested. */
type STD_MSG_POLL struct {
	msgId Field[string]
}

func (p *STD_MSG_POLL) parsePoll(msgId string) {
	p.msgId.Set(msgId, msgId != "")
}

func (p *STD_MSG_POLL) GetMsgId() Field[string] {
	return p.msgId
}

func (p *STD_MSG_POLL) pollGroup() *STD_MSG_POLL {
	return p
}

/* --------------------------- POS --------------------------- */

/* Position group, no altitude.  Latitude and longitude are kept in
 * decimal degrees after conversion; the sign is applied only when the
 * hemisphere indicators are read back through the getters. */
type POS struct {
	lat Field[float64]
	ns  Field[byte]
	lon Field[float64]
	ew  Field[byte]
}

func first_byte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func (p *POS) parsePOS(lat, ns, lon, ew string) {
	strtofloat(lat, &p.lat)
	p.lat.Apply(DegMin2DecDeg)

	var n = first_byte(ns)
	p.ns.Set(n, n == 'N' || n == 'S')

	strtofloat(lon, &p.lon)
	p.lon.Apply(DegMin2DecDeg)

	var e = first_byte(ew)
	p.ew.Set(e, e == 'E' || e == 'W')
}

func (p *POS) checkPOS() bool {
	if !FieldIs(p.ns, byte('N')) && !FieldIs(p.ns, byte('S')) {
		return false
	}

	if !FieldIs(p.ew, byte('E')) && !FieldIs(p.ew, byte('W')) {
		return false
	}

	return true
}

/* Latitude in decimal degrees, negative in the southern hemisphere. */
func (p *POS) GetLatitude() Field[float64] {
	var lat = p.lat

	if p.lat.Valid() && p.ns.Valid() {
		var sign = 1.0
		if p.ns.Value() == 'S' {
			sign = -1.0
		}
		lat.Set(p.lat.Value()*sign, true)
	}

	return lat
}

/* Longitude in decimal degrees, negative west of Greenwich. */
func (p *POS) GetLongitude() Field[float64] {
	var lon = p.lon

	if p.lon.Valid() && p.ew.Valid() {
		var sign = 1.0
		if p.ew.Value() == 'W' {
			sign = -1.0
		}
		lon.Set(p.lon.Value()*sign, true)
	}

	return lon
}

func (p *POS) position() *POS {
	return p
}

/*-------------------------------------------------------------------
 *
 * Name:	DegMin2DecDeg
 *
 * Purpose:	Convert an NMEA (d)ddmm.mmmm coordinate to decimal
 *		degrees, keeping the sign of the degrees part.
 *
 * Inputs:	coords in [-18000.0, 18000.0].
 *
 *--------------------------------------------------------------------*/

func DegMin2DecDeg(coords float64) float64 {
	var deg = int(coords) / 100

	var min = coords
	if min < 0 {
		min = -min
	}
	var whole = deg * 100
	if whole < 0 {
		whole = -whole
	}
	min -= float64(whole)

	var degrees = float64(abs_int(deg)) + min/60.0

	if deg < 0 {
		degrees = -degrees
	}

	return degrees
}

func abs_int(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

/* ------------------------- ALTITUDE ------------------------ */

type ALTITUDE struct {
	alt Field[float64]
}

func (a *ALTITUDE) parseALTITUDE(alt string) {
	strtofloat(alt, &a.alt)
}

func (a *ALTITUDE) checkALTITUDE() bool {
	return true
}

func (a *ALTITUDE) GetAltitude() Field[float64] {
	return a.alt
}

func (a *ALTITUDE) altitudeGroup() *ALTITUDE {
	return a
}

/* -------------------------- POS3D -------------------------- */

type POS3D struct {
	POS
	ALTITUDE
}

func (p *POS3D) parsePOS3D(lat, ns, lon, ew, alt string) {
	p.parsePOS(lat, ns, lon, ew)
	p.parseALTITUDE(alt)
}

func (p *POS3D) checkPOS3D() bool {
	return p.checkPOS() && p.checkALTITUDE()
}

func (p *POS3D) position3d() *POS3D {
	return p
}

/* --------------------------- TIME -------------------------- */

/* UTC time of day kept as the raw "HHMMSS.SS" string. */
type TIME struct {
	time Field[string]
}

func check_time_format(t string) bool {
	if len(t) != 9 {
		return false
	}

	if t[6] != '.' {
		return false
	}

	for _, i := range []int{0, 1, 3, 5, 7, 8} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}

	/* Tens of minutes and tens of seconds. */
	if t[2] < '0' || t[2] > '5' {
		return false
	}

	if t[4] < '0' || t[4] > '5' {
		return false
	}

	return true
}

func (t *TIME) parseTIME(time string) {
	t.time.Set(time, check_time_format(time))
}

func (t *TIME) GetTime() Field[string] {
	return t.time
}

func (t *TIME) timeGroup() *TIME {
	return t
}

/* --------------------------- DTM --------------------------- */

/* Datum reference. */
type DTM struct {
	BASE
	POS3D

	datum    Field[string]
	subDatum Field[string]
	refDatum Field[string]
}

func (s *DTM) acceptedTypes() []string { return []string{"DTM"} }

func (s *DTM) sentenceBounds() (uint8, uint8) { return 11, 11 }

func (s *DTM) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePOS3D(fields[3], fields[4], fields[5], fields[6], fields[7])

	s.datum.Set(fields[1], true)
	s.subDatum.Set(fields[2], true)
	s.refDatum.Set(fields[8], true)
}

func (s *DTM) checkValidity() bool {
	var valid = s.checkBASE() && s.checkPOS3D()

	/* Only the WGS-84 reference datum is meaningful here. */
	if !FieldIs(s.refDatum, "W84") {
		valid = false
	}

	return valid
}

func (s *DTM) GetDatum() Field[string]          { return s.datum }
func (s *DTM) GetSubDatum() Field[string]       { return s.subDatum }
func (s *DTM) GetReferenceDatum() Field[string] { return s.refDatum }

/* ------------------------ GAQ .. GPQ ------------------------ */

/* The five standard message poll kinds share everything but the
 * formatter they answer to. */

type GAQ struct {
	BASE
	STD_MSG_POLL
}

func (s *GAQ) acceptedTypes() []string        { return []string{"GAQ"} }
func (s *GAQ) sentenceBounds() (uint8, uint8) { return 4, 4 }
func (s *GAQ) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePoll(fields[1])
}
func (s *GAQ) checkValidity() bool { return s.checkBASE() }

type GBQ struct {
	BASE
	STD_MSG_POLL
}

func (s *GBQ) acceptedTypes() []string        { return []string{"GBQ"} }
func (s *GBQ) sentenceBounds() (uint8, uint8) { return 4, 4 }
func (s *GBQ) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePoll(fields[1])
}
func (s *GBQ) checkValidity() bool { return s.checkBASE() }

type GLQ struct {
	BASE
	STD_MSG_POLL
}

func (s *GLQ) acceptedTypes() []string        { return []string{"GLQ"} }
func (s *GLQ) sentenceBounds() (uint8, uint8) { return 4, 4 }
func (s *GLQ) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePoll(fields[1])
}
func (s *GLQ) checkValidity() bool { return s.checkBASE() }

type GNQ struct {
	BASE
	STD_MSG_POLL
}

func (s *GNQ) acceptedTypes() []string        { return []string{"GNQ"} }
func (s *GNQ) sentenceBounds() (uint8, uint8) { return 4, 4 }
func (s *GNQ) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePoll(fields[1])
}
func (s *GNQ) checkValidity() bool { return s.checkBASE() }

type GPQ struct {
	BASE
	STD_MSG_POLL
}

func (s *GPQ) acceptedTypes() []string        { return []string{"GPQ"} }
func (s *GPQ) sentenceBounds() (uint8, uint8) { return 4, 4 }
func (s *GPQ) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePoll(fields[1])
}
func (s *GPQ) checkValidity() bool { return s.checkBASE() }

/* --------------------------- GBS --------------------------- */

/* Satellite fault detection. */
type GBS struct {
	BASE
	TIME

	errLat   Field[float64]
	errLon   Field[float64]
	errAlt   Field[float64]
	svid     Field[uint8]
	prob     Field[uint8] /* Unsupported by the receiver; always invalid. */
	bias     Field[float64]
	stddev   Field[float64]
	systemId Field[uint8]
	signalId Field[uint8]
}

func (s *GBS) acceptedTypes() []string        { return []string{"GBS"} }
func (s *GBS) sentenceBounds() (uint8, uint8) { return 13, 13 }

func (s *GBS) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])

	strtofloat(fields[2], &s.errLat)
	strtofloat(fields[3], &s.errLon)
	strtofloat(fields[4], &s.errAlt)
	strtouint8(fields[5], &s.svid, 10)
	s.prob.Set(255, false)
	strtofloat(fields[7], &s.bias)
	strtofloat(fields[8], &s.stddev)
	strtouint8(fields[9], &s.systemId, 10)
	strtouint8(fields[10], &s.signalId, 10)
}

func (s *GBS) checkValidity() bool { return s.checkBASE() }

func (s *GBS) GetErrLat() Field[float64]       { return s.errLat }
func (s *GBS) GetErrLon() Field[float64]       { return s.errLon }
func (s *GBS) GetErrAlt() Field[float64]       { return s.errAlt }
func (s *GBS) GetSVID() Field[uint8]           { return s.svid }
func (s *GBS) GetProb() Field[uint8]           { return s.prob }
func (s *GBS) GetBias() Field[float64]         { return s.bias }
func (s *GBS) GetStdDeviation() Field[float64] { return s.stddev }
func (s *GBS) GetSystemId() Field[uint8]       { return s.systemId }
func (s *GBS) GetSignalId() Field[uint8]       { return s.signalId }

/* --------------------------- GGA --------------------------- */

/* Global positioning system fix data. */
type GGA struct {
	BASE
	POS3D
	TIME

	quality     Field[uint8]
	numSV       Field[uint8]
	hdop        Field[float64]
	altUnit     Field[byte]
	sep         Field[float64]
	sepUnit     Field[byte]
	diffAge     Field[uint16]
	diffStation Field[uint16]
}

func (s *GGA) acceptedTypes() []string        { return []string{"GGA"} }
func (s *GGA) sentenceBounds() (uint8, uint8) { return 17, 17 }

func (s *GGA) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])
	s.parsePOS3D(fields[2], fields[3], fields[4], fields[5], fields[9])

	strtouint8(fields[6], &s.quality, 10)
	strtouint8(fields[7], &s.numSV, 10)
	strtofloat(fields[8], &s.hdop)
	s.altUnit.Set(first_byte(fields[10]), first_byte(fields[10]) == 'M')
	strtofloat(fields[11], &s.sep)
	s.sepUnit.Set(first_byte(fields[12]), first_byte(fields[12]) == 'M')
	strtouint16(fields[13], &s.diffAge, 10)
	strtouint16(fields[14], &s.diffStation, 10)
}

func (s *GGA) checkValidity() bool {
	var valid = s.checkBASE() && s.checkPOS3D()

	if FieldIs(s.quality, uint8(0)) { /* no fix */
		valid = false
	}

	if !FieldIs(s.altUnit, byte('M')) { /* fixed field, metres */
		valid = false
	}

	if !FieldIs(s.sepUnit, byte('M')) { /* fixed field, metres */
		valid = false
	}

	return valid
}

func (s *GGA) GetQuality() Field[uint8]         { return s.quality }
func (s *GGA) GetNumSatellites() Field[uint8]   { return s.numSV }
func (s *GGA) GetHDOP() Field[float64]          { return s.hdop }
func (s *GGA) GetAltitudeUnit() Field[byte]     { return s.altUnit }
func (s *GGA) GetGEOIDSep() Field[float64]      { return s.sep }
func (s *GGA) GetGEOIDSepUnit() Field[byte]     { return s.sepUnit }
func (s *GGA) GetDiffAge() Field[uint16]        { return s.diffAge }
func (s *GGA) GetDiffStationID() Field[uint16]  { return s.diffStation }

/* --------------------------- GLL --------------------------- */

/* Latitude and longitude with time of fix and status. */
type GLL struct {
	BASE
	POS
	TIME

	status  Field[byte]
	posMode Field[byte]
}

func (s *GLL) acceptedTypes() []string        { return []string{"GLL"} }
func (s *GLL) sentenceBounds() (uint8, uint8) { return 10, 10 }

func (s *GLL) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parsePOS(fields[1], fields[2], fields[3], fields[4])
	s.parseTIME(fields[5])

	s.status.Set(first_byte(fields[6]), fields[6] != "")
	s.posMode.Set(first_byte(fields[7]), fields[7] != "")
}

func (s *GLL) checkValidity() bool {
	var valid = s.checkBASE() && s.checkPOS()

	/* A missing status invalidates the whole sentence. */
	if !FieldIs(s.status, byte('A')) {
		valid = false
	}

	return valid
}

func (s *GLL) GetStatus() Field[byte]  { return s.status }
func (s *GLL) GetPosMode() Field[byte] { return s.posMode }

/* --------------------------- GNS --------------------------- */

/* GNSS fix data. */
type GNS struct {
	BASE
	POS3D
	TIME

	posMode     Field[string]
	numSV       Field[uint8]
	hdop        Field[float64]
	sep         Field[float64]
	diffAge     Field[uint16]
	diffStation Field[uint16]
	navStatus   Field[byte]
}

func (s *GNS) acceptedTypes() []string        { return []string{"GNS"} }
func (s *GNS) sentenceBounds() (uint8, uint8) { return 16, 16 }

func (s *GNS) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])
	s.parsePOS3D(fields[2], fields[3], fields[4], fields[5], fields[9])

	s.posMode.Set(fields[6], true)
	strtouint8(fields[7], &s.numSV, 10)
	strtofloat(fields[8], &s.hdop)
	strtofloat(fields[10], &s.sep)
	strtouint16(fields[11], &s.diffAge, 10)
	strtouint16(fields[12], &s.diffStation, 10)
	s.navStatus.Set(first_byte(fields[13]), fields[13] != "")
}

func (s *GNS) checkValidity() bool {
	var valid = s.checkBASE() && s.checkPOS3D()

	if !FieldIs(s.navStatus, byte('V')) { /* fixed field on this hardware */
		valid = false
	}

	return valid
}

func (s *GNS) GetPosMode() Field[string]       { return s.posMode }
func (s *GNS) GetNumSV() Field[uint8]          { return s.numSV }
func (s *GNS) GetHDOP() Field[float64]         { return s.hdop }
func (s *GNS) GetGEOIDSep() Field[float64]     { return s.sep }
func (s *GNS) GetDiffAge() Field[uint16]       { return s.diffAge }
func (s *GNS) GetDiffStationID() Field[uint16] { return s.diffStation }
func (s *GNS) GetNavStatus() Field[byte]       { return s.navStatus }

/* --------------------------- GRS --------------------------- */

/* GNSS range residuals. */
type GRS struct {
	BASE
	TIME

	mode     Field[uint8]
	residual [12]Field[float64]
	systemId Field[uint8]
	signalId Field[uint8]
}

func (s *GRS) acceptedTypes() []string        { return []string{"GRS"} }
func (s *GRS) sentenceBounds() (uint8, uint8) { return 19, 19 }

func (s *GRS) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])

	strtouint8(fields[2], &s.mode, 10)

	for i := 0; i < 12; i++ {
		strtofloat(fields[3+i], &s.residual[i])
	}

	strtouint8(fields[15], &s.systemId, 10)
	strtouint8(fields[16], &s.signalId, 10)
}

func (s *GRS) checkValidity() bool { return s.checkBASE() }

func (s *GRS) GetComputationMethod() Field[uint8] { return s.mode }
func (s *GRS) GetResiduals() []Field[float64]     { return s.residual[:] }
func (s *GRS) GetSystemId() Field[uint8]          { return s.systemId }
func (s *GRS) GetSignalId() Field[uint8]          { return s.signalId }

/* --------------------------- GSA --------------------------- */

/* DOP and active satellites. */
type GSA struct {
	BASE

	opMode   Field[byte]
	navMode  Field[uint8]
	svid     [12]Field[uint8]
	pdop     Field[float64]
	hdop     Field[float64]
	vdop     Field[float64]
	systemId Field[uint8]
}

func (s *GSA) acceptedTypes() []string        { return []string{"GSA"} }
func (s *GSA) sentenceBounds() (uint8, uint8) { return 21, 21 }

func (s *GSA) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)

	s.opMode.Set(first_byte(fields[1]), fields[1] != "")
	strtouint8(fields[2], &s.navMode, 10)

	for i := 0; i < 12; i++ {
		strtouint8(fields[3+i], &s.svid[i], 10)
	}

	strtofloat(fields[15], &s.pdop)
	strtofloat(fields[16], &s.hdop)
	strtofloat(fields[17], &s.vdop)
	strtouint8(fields[18], &s.systemId, 10)
}

func (s *GSA) checkValidity() bool {
	var valid = s.checkBASE()

	if FieldIs(s.navMode, uint8(1)) { /* no fix */
		valid = false
	}

	return valid
}

func (s *GSA) GetOpMode() Field[byte]    { return s.opMode }
func (s *GSA) GetNavMode() Field[uint8]  { return s.navMode }
func (s *GSA) GetSVID() []Field[uint8]   { return s.svid[:] }
func (s *GSA) GetPDOP() Field[float64]   { return s.pdop }
func (s *GSA) GetHDOP() Field[float64]   { return s.hdop }
func (s *GSA) GetVDOP() Field[float64]   { return s.vdop }
func (s *GSA) GetSystemId() Field[uint8] { return s.systemId }

/* --------------------------- GST --------------------------- */

/* Pseudorange error statistics. */
type GST struct {
	BASE
	TIME

	rangeRms Field[float64]
	stdMajor Field[float64]
	stdMinor Field[float64]
	orient   Field[float64]
	stdLat   Field[float64]
	stdLong  Field[float64]
	stdAlt   Field[float64]
}

func (s *GST) acceptedTypes() []string        { return []string{"GST"} }
func (s *GST) sentenceBounds() (uint8, uint8) { return 11, 11 }

func (s *GST) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])

	strtofloat(fields[2], &s.rangeRms)
	strtofloat(fields[3], &s.stdMajor)
	strtofloat(fields[4], &s.stdMinor)
	strtofloat(fields[5], &s.orient)
	strtofloat(fields[6], &s.stdLat)
	strtofloat(fields[7], &s.stdLong)
	strtofloat(fields[8], &s.stdAlt)
}

func (s *GST) checkValidity() bool { return s.checkBASE() }

func (s *GST) GetRangeRMS() Field[float64]     { return s.rangeRms }
func (s *GST) GetStdMajor() Field[float64]     { return s.stdMajor }
func (s *GST) GetStdMinor() Field[float64]     { return s.stdMinor }
func (s *GST) GetOrientation() Field[float64]  { return s.orient }
func (s *GST) GetStdLatitude() Field[float64]  { return s.stdLat }
func (s *GST) GetStdLongitude() Field[float64] { return s.stdLong }
func (s *GST) GetStdAltitude() Field[float64]  { return s.stdAlt }

/* --------------------------- GSV --------------------------- */

/* Satellites in view.  Carries one to four repeated satellite groups;
 * the group count follows from the field count. */
type GSV struct {
	BASE

	numMsg     Field[uint8]
	msgNum     Field[uint8]
	numSV      Field[uint8]
	satellites []Field[SatData]
	signalId   Field[uint8]
}

func (s *GSV) acceptedTypes() []string        { return []string{"GSV"} }
func (s *GSV) sentenceBounds() (uint8, uint8) { return 11, 23 }

func (s *GSV) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)

	strtouint8(fields[1], &s.numMsg, 10)
	strtouint8(fields[2], &s.msgNum, 10)
	strtouint8(fields[3], &s.numSV, 10)

	/* Repeated groups = (total fields - fixed fields) / fields per group,
	 * with the checksum and terminator counted in the total. */
	var nGroups = (len(fields) + 2 - 6) / 4

	s.satellites = make([]Field[SatData], nGroups)

	for i := 0; i < nGroups; i++ {
		var svid, elv Field[uint8]
		var az Field[uint16]
		var cno Field[uint8]

		strtouint8(fields[4+4*i], &svid, 10)
		strtouint8(fields[5+4*i], &elv, 10)
		strtouint16(fields[6+4*i], &az, 10)
		strtouint8(fields[7+4*i], &cno, 10)

		var valid = svid.Valid() && elv.Valid() && az.Valid() && cno.Valid()

		s.satellites[i].Set(SatData{
			Svid: svid.Value(),
			Elv:  elv.Value(),
			Az:   az.Value(),
			Cno:  cno.Value(),
		}, valid)
	}

	strtouint8(fields[4+4*nGroups], &s.signalId, 10)
}

func (s *GSV) checkValidity() bool { return s.checkBASE() }

func (s *GSV) GetNumMessages() Field[uint8]    { return s.numMsg }
func (s *GSV) GetMessageNum() Field[uint8]     { return s.msgNum }
func (s *GSV) GetNumSatellites() Field[uint8]  { return s.numSV }
func (s *GSV) GetSatellites() []Field[SatData] { return s.satellites }
func (s *GSV) GetSignalId() Field[uint8]       { return s.signalId }

/* --------------------------- RLM --------------------------- */

/* Return link message.  Beacon and body are hex encoded. */
type RLM struct {
	BASE
	TIME

	beacon Field[uint64]
	code   Field[byte]
	body   Field[uint64]
}

func (s *RLM) acceptedTypes() []string        { return []string{"RLM"} }
func (s *RLM) sentenceBounds() (uint8, uint8) { return 7, 7 }

func (s *RLM) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[2])

	strtouint64(fields[1], &s.beacon, 16)
	s.code.Set(first_byte(fields[3]), fields[3] != "")
	strtouint64(fields[4], &s.body, 16)
}

func (s *RLM) checkValidity() bool { return s.checkBASE() }

func (s *RLM) GetBeacon() Field[uint64] { return s.beacon }
func (s *RLM) GetCode() Field[byte]     { return s.code }
func (s *RLM) GetBody() Field[uint64]   { return s.body }

/* --------------------------- RMC --------------------------- */

/* Recommended minimum data. */
type RMC struct {
	BASE
	POS
	TIME

	status    Field[byte]
	spd       Field[float64]
	cog       Field[float64]
	date      Field[string]
	mv        Field[float64]
	mvEW      Field[byte]
	posMode   Field[byte]
	navStatus Field[byte]
}

func (s *RMC) acceptedTypes() []string        { return []string{"RMC"} }
func (s *RMC) sentenceBounds() (uint8, uint8) { return 16, 16 }

func (s *RMC) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])
	s.parsePOS(fields[3], fields[4], fields[5], fields[6])

	s.status.Set(first_byte(fields[2]), fields[2] != "")
	strtofloat(fields[7], &s.spd)
	strtofloat(fields[8], &s.cog)
	s.date.Set(fields[9], true)
	strtofloat(fields[10], &s.mv)

	var dir = first_byte(fields[11])
	s.mvEW.Set(dir, dir == 'E' || dir == 'W')

	s.posMode.Set(first_byte(fields[12]), fields[12] != "")
	s.navStatus.Set(first_byte(fields[13]), fields[13] != "")
}

func (s *RMC) checkValidity() bool {
	var valid = s.checkBASE() && s.checkPOS()

	if !FieldIs(s.status, byte('A')) {
		valid = false
	}

	if FieldIs(s.posMode, byte('N')) { /* no position fix */
		valid = false
	}

	if !FieldIs(s.navStatus, byte('V')) { /* fixed field */
		valid = false
	}

	return valid
}

func (s *RMC) GetStatus() Field[byte]               { return s.status }
func (s *RMC) GetSpeedOverGround() Field[float64]   { return s.spd }
func (s *RMC) GetCourseOverGround() Field[float64]  { return s.cog }
func (s *RMC) GetDate() Field[string]               { return s.date }
func (s *RMC) GetMagneticVariation() Field[float64] { return s.mv }
func (s *RMC) GetMagneticVariationDir() Field[byte] { return s.mvEW }
func (s *RMC) GetPosMode() Field[byte]              { return s.posMode }
func (s *RMC) GetNavStatus() Field[byte]            { return s.navStatus }

/* --------------------------- TXT --------------------------- */

/* Text transmission. */
type TXT struct {
	BASE

	numMsg  Field[uint8]
	msgNum  Field[uint8]
	msgType Field[uint8]
	text    Field[string]
}

func (s *TXT) acceptedTypes() []string        { return []string{"TXT"} }
func (s *TXT) sentenceBounds() (uint8, uint8) { return 7, 7 }

func (s *TXT) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)

	strtouint8(fields[1], &s.numMsg, 10)
	strtouint8(fields[2], &s.msgNum, 10)
	strtouint8(fields[3], &s.msgType, 10)
	s.text.Set(fields[4], true)
}

func (s *TXT) checkValidity() bool { return s.checkBASE() }

func (s *TXT) GetNumMessages() Field[uint8] { return s.numMsg }
func (s *TXT) GetMessageNum() Field[uint8]  { return s.msgNum }
func (s *TXT) GetMessageType() Field[uint8] { return s.msgType }
func (s *TXT) GetText() Field[string]       { return s.text }

/* --------------------------- VLW --------------------------- */

/* Ground/water distance.  The water distances are fixed null fields on
 * this hardware; the units are all fixed to nautical miles. */
type VLW struct {
	BASE

	twd     Field[uint8]
	twdUnit Field[byte]
	wd      Field[uint8]
	wdUnit  Field[byte]
	tgd     Field[float64]
	tgdUnit Field[byte]
	gd      Field[float64]
	gdUnit  Field[byte]
}

func (s *VLW) acceptedTypes() []string        { return []string{"VLW"} }
func (s *VLW) sentenceBounds() (uint8, uint8) { return 11, 11 }

func (s *VLW) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)

	s.twd.Set(255, false) /* fixed field: null */
	s.twdUnit.Set(first_byte(fields[2]), first_byte(fields[2]) == 'N')
	s.wd.Set(255, false) /* fixed field: null */
	s.wdUnit.Set(first_byte(fields[4]), first_byte(fields[4]) == 'N')
	strtofloat(fields[5], &s.tgd)
	s.tgdUnit.Set(first_byte(fields[6]), first_byte(fields[6]) == 'N')
	strtofloat(fields[7], &s.gd)
	s.gdUnit.Set(first_byte(fields[8]), first_byte(fields[8]) == 'N')
}

func (s *VLW) checkValidity() bool {
	var valid = s.checkBASE()

	if !FieldIs(s.twdUnit, byte('N')) {
		valid = false
	}

	if !FieldIs(s.wdUnit, byte('N')) {
		valid = false
	}

	if !FieldIs(s.tgdUnit, byte('N')) {
		valid = false
	}

	if !FieldIs(s.gdUnit, byte('N')) {
		valid = false
	}

	return valid
}

func (s *VLW) GetTotalWaterDist() Field[uint8]    { return s.twd }
func (s *VLW) GetTWDUnit() Field[byte]            { return s.twdUnit }
func (s *VLW) GetWaterDist() Field[uint8]         { return s.wd }
func (s *VLW) GetWDUnit() Field[byte]             { return s.wdUnit }
func (s *VLW) GetTotalGroundDist() Field[float64] { return s.tgd }
func (s *VLW) GetTGDUnit() Field[byte]            { return s.tgdUnit }
func (s *VLW) GetGroundDist() Field[float64]      { return s.gd }
func (s *VLW) GetGDUnit() Field[byte]             { return s.gdUnit }

/* --------------------------- VTG --------------------------- */

/* Course over ground and ground speed. */
type VTG struct {
	BASE

	cogt     Field[float64]
	cogtUnit Field[byte] /* fixed field: T */
	cogm     Field[float64]
	cogmUnit Field[byte] /* fixed field: M */
	sogn     Field[float64]
	sognUnit Field[byte] /* fixed field: N */
	sogk     Field[float64]
	sogkUnit Field[byte] /* fixed field: K */
	posMode  Field[byte]
}

func (s *VTG) acceptedTypes() []string        { return []string{"VTG"} }
func (s *VTG) sentenceBounds() (uint8, uint8) { return 12, 12 }

func (s *VTG) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)

	strtofloat(fields[1], &s.cogt)
	s.cogtUnit.Set(first_byte(fields[2]), first_byte(fields[2]) == 'T')
	strtofloat(fields[3], &s.cogm)
	s.cogmUnit.Set(first_byte(fields[4]), first_byte(fields[4]) == 'M')
	strtofloat(fields[5], &s.sogn)
	s.sognUnit.Set(first_byte(fields[6]), first_byte(fields[6]) == 'N')
	strtofloat(fields[7], &s.sogk)
	s.sogkUnit.Set(first_byte(fields[8]), first_byte(fields[8]) == 'K')
	s.posMode.Set(first_byte(fields[9]), fields[9] != "")
}

func (s *VTG) checkValidity() bool {
	var valid = s.checkBASE()

	if FieldIs(s.posMode, byte('N')) { /* no fix */
		valid = false
	}

	if !FieldIs(s.cogtUnit, byte('T')) {
		valid = false
	}

	if !FieldIs(s.cogmUnit, byte('M')) {
		valid = false
	}

	if !FieldIs(s.sognUnit, byte('N')) {
		valid = false
	}

	if !FieldIs(s.sogkUnit, byte('K')) {
		valid = false
	}

	return valid
}

func (s *VTG) GetTrueCourseOverGround() Field[float64]     { return s.cogt }
func (s *VTG) GetTCOGUnit() Field[byte]                    { return s.cogtUnit }
func (s *VTG) GetMagneticCourseOverGround() Field[float64] { return s.cogm }
func (s *VTG) GetMCOGUnit() Field[byte]                    { return s.cogmUnit }
func (s *VTG) GetSpeedOverGroundKnots() Field[float64]     { return s.sogn }
func (s *VTG) GetSOGNUnit() Field[byte]                    { return s.sognUnit }
func (s *VTG) GetSpeedOverGroundKms() Field[float64]       { return s.sogk }
func (s *VTG) GetSOGKUnit() Field[byte]                    { return s.sogkUnit }
func (s *VTG) GetPosMode() Field[byte]                     { return s.posMode }

/* --------------------------- ZDA --------------------------- */

/* Time and date.  The local timezone fields are fixed to zero on this
 * hardware. */
type ZDA struct {
	BASE
	TIME

	day   Field[uint8]
	month Field[uint8]
	year  Field[uint16]
	ltzh  Field[uint8]
	ltzn  Field[uint8]
}

func (s *ZDA) acceptedTypes() []string        { return []string{"ZDA"} }
func (s *ZDA) sentenceBounds() (uint8, uint8) { return 9, 9 }

func (s *ZDA) parseNMEA(fields []string, checksum byte) {
	s.parseBASE(fields, checksum)
	s.parseTIME(fields[1])

	strtouint8(fields[2], &s.day, 10)
	strtouint8(fields[3], &s.month, 10)
	strtouint16(fields[4], &s.year, 10)
	strtouint8(fields[5], &s.ltzh, 10)
	strtouint8(fields[6], &s.ltzn, 10)
}

func (s *ZDA) checkValidity() bool {
	var valid = s.checkBASE()

	var day, dayOK = s.day.Get()
	if !dayOK || day < 1 || day > 31 {
		valid = false
	}

	var month, monthOK = s.month.Get()
	if !monthOK || month < 1 || month > 12 {
		valid = false
	}

	if !FieldIs(s.ltzh, uint8(0)) {
		valid = false
	}

	if !FieldIs(s.ltzn, uint8(0)) {
		valid = false
	}

	return valid
}

func (s *ZDA) GetDay() Field[uint8]                { return s.day }
func (s *ZDA) GetMonth() Field[uint8]              { return s.month }
func (s *ZDA) GetYear() Field[uint16]              { return s.year }
func (s *ZDA) GetLocalTimezoneHrs() Field[uint8]   { return s.ltzh }
func (s *ZDA) GetLocalTimezoneMins() Field[uint8]  { return s.ltzn }
