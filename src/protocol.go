package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Configuration request/response exchanges with the
 *		receiver over the shared byte stream.
 *
 * Description:	Requests go out the transmit side of the GNSS UART.
 *		Replies arrive interleaved with NMEA traffic in the
 *		same ring the serial reader feeds, so a transaction is:
 *		send, then poll the ring for the expected reply bytes
 *		until they appear or the timeout runs out.  Partial
 *		bytes already on the wire after a timeout are simply
 *		left behind; the framer skips what it cannot use.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"time"
)

const (
	CLASS_CFG  byte = 0x06
	ID_VALGET  byte = 0x8b
	ID_VALSET  byte = 0x8a
	CLASS_ACK  byte = 0x05
	ID_ACK_ACK byte = 0x01
	ID_ACK_NAK byte = 0x00
)

const (
	DEFAULT_GET_TIMEOUT = 3000 * time.Millisecond
	DEFAULT_SET_TIMEOUT = 1000 * time.Millisecond
)

var (
	ErrTimeout         = errors.New("no reply from the receiver before the timeout")
	ErrNotAcknowledged = errors.New("configuration was not acknowledged")
)

/* The transmit half of the GNSS UART. */
type transmitter interface {
	Write(data []byte) (int, error)
}

/* Receiver drives the configuration protocol against one module: it
 * transmits on the UART adapter and watches the ring for replies. */
type Receiver struct {
	ring *RingBuffer
	port transmitter
}

func NewReceiver(ring *RingBuffer, port transmitter) *Receiver {
	return &Receiver{ring: ring, port: port}
}

/* CFG-VALGET request payload: version, layer, position, then the keys
 * big-endian. */
func build_valget(layer CFGLayer, position uint16, keys []CFGKey) []byte {
	var payload = make([]byte, 0, 4+4*len(keys))

	payload = append(payload, 0x00, byte(layer))
	payload = append(payload, pack_u2le(position)...)

	for _, key := range keys {
		payload = append(payload, pack_u4(uint32(key))...)
	}

	return payload
}

/* CFG-VALSET request payload: version, layer bitmask, two reserved
 * bytes, then the encoded pairs. */
func build_valset(layers uint8, pairs []CFGDataPair) ([]byte, error) {
	var encoded, err = encode_pairs(pairs)
	if err != nil {
		return nil, err
	}

	var payload = make([]byte, 0, 4+len(encoded))

	payload = append(payload, 0x00, layers, 0x00, 0x00)
	payload = append(payload, encoded...)

	return payload, nil
}

/*-------------------------------------------------------------------
 *
 * Name:	GetConfiguration
 *
 * Purpose:	Read configuration items from one layer.
 *
 * Inputs:	layer		- Which layer to read from.
 *		position	- Skip count for large result sets.
 *		keys		- The keys to fetch.
 *		timeout		- How long to wait for the reply.
 *
 * Returns:	The decoded key/value pairs from the reply payload, or
 *		ErrTimeout.
 *
 * Description:	The reply is recognised by its frame header
 *		B5 62 06 8B.  Its length field and body may straddle
 *		the ring seam; both reads unwrap.  A frame that fails
 *		its checksum is ignored and polling continues, since
 *		the stream may simply not have delivered all of it yet.
 *
 *--------------------------------------------------------------------*/

func (r *Receiver) GetConfiguration(layer CFGLayer, position uint16, keys []CFGKey, timeout time.Duration) ([]CFGDataPair, error) {
	var request = BuildUBX(CLASS_CFG, ID_VALGET, build_valget(layer, position, keys))

	if _, err := r.port.Write(request); err != nil {
		return nil, fmt.Errorf("transmitting CFG-VALGET: %w", err)
	}

	var deadline = time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		var frame, err = FindUBXFrame(r.ring, CLASS_CFG, ID_VALGET, r.ring.WriteIndex())
		if err != nil || len(frame.Payload) < 4 {
			continue
		}

		var pairs, decodeErr = decode_pairs(frame.Payload[4:])
		if decodeErr != nil {
			diag.Debugf("CFG-VALGET reply only partially decoded: %v", decodeErr)
		}

		return pairs, nil
	}

	return nil, ErrTimeout
}

/*-------------------------------------------------------------------
 *
 * Name:	SetConfiguration
 *
 * Purpose:	Write configuration items to the layers named in the
 *		bitmask.
 *
 * Returns:	nil on ACK-ACK.  Anything else - NAK, garbage, or
 *		silence until the timeout - comes back as
 *		ErrNotAcknowledged; the protocol does not currently
 *		tell those apart.
 *
 *--------------------------------------------------------------------*/

func (r *Receiver) SetConfiguration(layers uint8, pairs []CFGDataPair, timeout time.Duration) error {
	var payload, err = build_valset(layers, pairs)
	if err != nil {
		return err
	}

	var request = BuildUBX(CLASS_CFG, ID_VALSET, payload)

	if _, writeErr := r.port.Write(request); writeErr != nil {
		return fmt.Errorf("transmitting CFG-VALSET: %w", writeErr)
	}

	/* The full expected acknowledgement on the wire:
	 * B5 62 05 01 02 00 06 8A CK_A CK_B */
	var ack = BuildUBX(CLASS_ACK, ID_ACK_ACK, []byte{CLASS_CFG, ID_VALSET})

	var deadline = time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if _, found := r.ring.Find(ack, r.ring.WriteIndex()); found {
			return nil
		}
	}

	return ErrNotAcknowledged
}

/*-------------------------------------------------------------------
 *
 * Name:	CheckConfiguration
 *
 * Purpose:	Report whether a one-byte configuration item currently
 *		holds the given value in the given layer.
 *
 *--------------------------------------------------------------------*/

func (r *Receiver) CheckConfiguration(layer CFGLayer, key CFGKey, value uint8, timeout time.Duration) bool {
	var pairs, err = r.GetConfiguration(layer, 0x0000, []CFGKey{key}, timeout)
	if err != nil {
		return false
	}

	for _, pair := range pairs {
		if pair.Key == key {
			return pair.Value.U1() == value
		}
	}

	return false
}

/*-------------------------------------------------------------------
 *
 * Name:	ConfigureDynamicModel
 *
 * Purpose:	Make sure the receiver's dynamic platform model is the
 *		wanted one: read the FLASH layer, and when it differs,
 *		write the model to FLASH and then to RAM.
 *
 * Returns:	nil when the model is already right or both writes were
 *		acknowledged.
 *
 *--------------------------------------------------------------------*/

func (r *Receiver) ConfigureDynamicModel(model DynModel) error {
	diag.Info("Checking current dynamic platform model configuration")

	if r.CheckConfiguration(LAYER_FLASH, NAVSPG_DYNMODEL, uint8(model), DEFAULT_GET_TIMEOUT) {
		diag.Info("Dynamic platform model already configured", "model", uint8(model))
		return nil
	}

	diag.Info("Setting dynamic platform model", "model", uint8(model))

	var pair = CFGDataPair{Key: NAVSPG_DYNMODEL, Value: CFGValueU1(uint8(model))}

	var flashErr = r.SetConfiguration(LAYERS_FLASH, []CFGDataPair{pair}, DEFAULT_SET_TIMEOUT)
	if flashErr != nil {
		diag.Error("FLASH layer configuration not acknowledged", "err", flashErr)
	}

	var ramErr = r.SetConfiguration(LAYERS_RAM, []CFGDataPair{pair}, DEFAULT_SET_TIMEOUT)
	if ramErr != nil {
		diag.Error("RAM layer configuration not acknowledged", "err", ramErr)
	}

	if flashErr != nil {
		return flashErr
	}

	return ramErr
}
