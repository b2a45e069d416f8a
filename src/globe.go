package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	The driver's main loop: bring the receiver up, keep
 *		the ring fed, and turn the byte stream into fixes.
 *
 * Description:	One goroutine plays the DMA producer, depositing fixed
 *		chunks from the GNSS UART into the ring.  The
 *		foreground loop periodically snapshots the write
 *		cursor, splits the ring on CRLF from its own read
 *		index, and hands each complete line to the sentence
 *		dispatcher.  A backpressure guard keeps the loop from
 *		consuming a span the producer has not finished
 *		delivering - without it a wrap could overwrite a line
 *		while it is being read.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"time"

	"github.com/pkg/term"
)

var crlf = []byte{'\r', '\n'}

/* DiagInit sets the operator diagnostics level. */
func DiagInit(level string) {
	diag_init(level)
}

/* OpenGNSS opens the receiver's UART. */
func OpenGNSS(device string, baud int) (*term.Term, error) {
	var fd = serial_port_open(device, baud)
	if fd == nil {
		return nil, fmt.Errorf("could not open %s", device)
	}

	return fd, nil
}

/*-------------------------------------------------------------------
 *
 * Name:	StartProducer
 *
 * Purpose:	Launch the goroutine that stands in for the DMA
 *		transfer interrupt: read chunks from the UART and
 *		deposit them into the ring until the port dies.
 *
 *--------------------------------------------------------------------*/

func StartProducer(fd *term.Term, ring *RingBuffer) {
	go func() {
		var chunk [READ_SIZE]byte

		for {
			var n, err = serial_port_read(fd, chunk[:])
			if err != nil {
				diag.Error("Lost communication with GNSS receiver", "err", err)
				return
			}

			if n > 0 {
				ring.Write(chunk[:n])
			}
		}
	}()
}

/*-------------------------------------------------------------------
 *
 * Name:	GlobeMain
 *
 * Purpose:	Run the whole driver against one receiver.
 *
 * Inputs:	cfg	- Host configuration (port, speed, dynamic
 *			  model to enforce, logging).
 *
 * Description:	Runs until the producer loses the port or the process
 *		is killed.
 *
 *--------------------------------------------------------------------*/

func GlobeMain(cfg *Config) error {
	diag_init(cfg.DiagLevel)

	var fd, err = OpenGNSS(cfg.GNSSPort, cfg.GNSSSpeed)
	if err != nil {
		return err
	}
	defer serial_port_close(fd)

	var ring = NewRingBuffer(MAIN_BUFF_SIZE)

	StartProducer(fd, ring)

	var receiver = NewReceiver(ring, fd)

	if cfg.DynModel != "" {
		var model, modelErr = DynModelByName(cfg.DynModel)
		if modelErr != nil {
			return modelErr
		}

		if cfgErr := receiver.ConfigureDynamicModel(model); cfgErr != nil {
			diag.Error("Dynamic platform model could not be set", "err", cfgErr)
		}
	}

	var fixlog *FixLog
	if cfg.FixLogDir != "" {
		fixlog, err = NewFixLog(cfg.FixLogDir)
		if err != nil {
			return err
		}
		defer fixlog.Close()
	}

	run_consumer(ring, fixlog)

	return nil
}

/*-------------------------------------------------------------------
 *
 * Name:	run_consumer
 *
 * Purpose:	The foreground parsing loop.
 *
 * Description:	Each pass:
 *
 *		1. Split the ring on CRLF from the read index.
 *		2. Advance the read index to the start of the final
 *		   (possibly incomplete) section.
 *		3. Only process the sections once the producer is
 *		   observed to have delivered at least the span being
 *		   consumed since the previous pass.
 *
 *--------------------------------------------------------------------*/

func run_consumer(ring *RingBuffer, fixlog *FixLog) {
	var readIdx = ring.WriteIndex()
	var prevDelivered = ring.TotalRead()

	for {
		var sections, lastOffset = ring.Split(crlf, readIdx)
		if sections == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		readIdx = (readIdx + lastOffset) % ring.Cap()

		var writeIdx = ring.WriteIndex()
		var span = readIdx - writeIdx
		if writeIdx > readIdx {
			span = ring.Cap() + readIdx - writeIdx
		}

		var delivered = ring.TotalRead()

		if delivered-prevDelivered >= uint64(span) {
			prevDelivered = delivered

			for _, section := range sections {
				process_line(string(section), fixlog)
			}
		}

		time.Sleep(10 * time.Millisecond)
	}
}

/* One line through the group views and out to the sinks. */
func process_line(line string, fixlog *FixLog) {
	if line == "" {
		return
	}

	var utc = ""

	var t, timeErr = Time(line)
	if timeErr == nil {
		if v, ok := t.GetTime().Get(); ok {
			utc = v
			diag.Info("Time", "utc", v)
		}
	}

	var pos, posErr = Position(line)
	if posErr != nil {
		diag.Debug("Line carries no position", "line", line, "reason", posErr)
		return
	}

	var latlng, ok = PosLatLng(pos)
	if !ok {
		return
	}

	diag.Info("Fix",
		"lat", latlng.Lat.Degrees(),
		"lon", latlng.Lng.Degrees())

	if fixlog != nil {
		var alt Field[float64]
		if p3d, err := Position3D(line); err == nil {
			alt = p3d.GetAltitude()
		}

		var constellation = INVALID
		if s, err := Parse(line); err == nil {
			constellation = s.GetConstellation()
		}

		if err := fixlog.Write(utc, constellation, latlng.Lat.Degrees(), latlng.Lng.Degrees(), alt); err != nil {
			diag.Error("Could not write fix log", "err", err)
		}
	}
}
