package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Interface to the GNSS serial port, hiding operating
 *		system differences.
 *
 *---------------------------------------------------------------*/

import (
	"github.com/pkg/term"
)

/*-------------------------------------------------------------------
 *
 * Name:	serial_port_open
 *
 * Purpose:	Open the serial port the receiver is wired to.
 *
 * Inputs:	devicename	- Usually /dev/tty... on Linux.
 *
 *		baud		- 38400 for the NEO-M9N's default UART
 *				  setup.  If 0, leave it alone.
 *
 * Returns 	Handle for serial port, or nil.
 *
 *--------------------------------------------------------------------*/

func serial_port_open(devicename string, baud int) *term.Term {
	var fd, err = term.Open(devicename, term.RawMode)

	if err != nil {
		diag.Error("Could not open serial port", "device", devicename, "err", err)
		return nil
	}

	switch baud {
	case 0: /* Leave it alone. */
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		fd.SetSpeed(baud)
	default:
		diag.Error("Unsupported speed, using 38400", "baud", baud)
		fd.SetSpeed(38400)
	}

	return fd
}

/*-------------------------------------------------------------------
 *
 * Name:	serial_port_write
 *
 * Purpose:	Send bytes to the receiver.
 *
 * Returns:	Number of bytes accepted.
 *
 *--------------------------------------------------------------------*/

func serial_port_write(fd *term.Term, data []byte) int {
	var n, err = fd.Write(data)

	if err != nil {
		diag.Error("Error writing to serial port", "err", err)
		return -1
	}

	return n
}

/*-------------------------------------------------------------------
 *
 * Name:	serial_port_read
 *
 * Purpose:	Read whatever bytes are available, up to one chunk.
 *
 * Description:	This is the producer side of the ring: each successful
 *		read is deposited with RingBuffer.Write, standing in
 *		for one DMA transfer.
 *
 *--------------------------------------------------------------------*/

func serial_port_read(fd *term.Term, buf []byte) (int, error) {
	return fd.Read(buf)
}

func serial_port_close(fd *term.Term) {
	fd.Close()
}
