package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Save accepted fixes to a log file.
 *
 * Description: Rather than the raw NMEA lines, write separated
 *		properties into CSV format for easy reading and later
 *		processing.  Files are named by day and the current one
 *		is kept open; a date change rolls over to a new file.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

var fixlog_header = []string{"utc", "constellation", "latitude", "longitude", "altitude"}

type FixLog struct {
	dir     string
	pattern *strftime.Strftime

	fp       *os.File
	writer   *csv.Writer
	openName string
}

/*-------------------------------------------------------------------
 *
 * Name:	NewFixLog
 *
 * Purpose:	Initialisation at start of application.
 *
 * Inputs:	dir	- Directory where daily files are created.
 *		  	  Use "." for current directory.
 *
 *--------------------------------------------------------------------*/

func NewFixLog(dir string) (*FixLog, error) {
	var pattern, err = strftime.New("%Y-%m-%d.log")
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating fix log directory: %w", err)
	}

	return &FixLog{dir: dir, pattern: pattern}, nil
}

/*-------------------------------------------------------------------
 *
 * Name:	Write
 *
 * Purpose:	Append one fix, rolling to a new daily file when the
 *		date has changed since the last write.
 *
 * Inputs:	utc		- Time-of-day string from the sentence.
 *		constellation
 *		lat, lon	- Decimal degrees.
 *		alt		- May be invalid; logged blank then.
 *
 *--------------------------------------------------------------------*/

func (l *FixLog) Write(utc string, constellation Constellation, lat float64, lon float64, alt Field[float64]) error {
	var name = filepath.Join(l.dir, l.pattern.FormatString(time.Now().UTC()))

	if name != l.openName {
		if err := l.roll(name); err != nil {
			return err
		}
	}

	var altStr = ""
	if v, ok := alt.Get(); ok {
		altStr = strconv.FormatFloat(v, 'f', 1, 64)
	}

	var record = []string{
		utc,
		constellation.String(),
		strconv.FormatFloat(lat, 'f', 6, 64),
		strconv.FormatFloat(lon, 'f', 6, 64),
		altStr,
	}

	if err := l.writer.Write(record); err != nil {
		return err
	}

	l.writer.Flush()

	return l.writer.Error()
}

func (l *FixLog) roll(name string) error {
	l.Close()

	var existed = true
	if _, err := os.Stat(name); err != nil {
		existed = false
	}

	var fp, err = os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening fix log: %w", err)
	}

	l.fp = fp
	l.writer = csv.NewWriter(fp)
	l.openName = name

	if !existed {
		if err := l.writer.Write(fixlog_header); err != nil {
			return err
		}
		l.writer.Flush()
	}

	return nil
}

func (l *FixLog) Close() {
	if l.writer != nil {
		l.writer.Flush()
	}

	if l.fp != nil {
		l.fp.Close()
	}

	l.fp = nil
	l.writer = nil
	l.openName = ""
}
