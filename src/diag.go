package globe

/*------------------------------------------------------------------
 *
 * Purpose:   	Operator diagnostics sink.
 *
 * Description:	Everything the driver wants a human to see - frame
 *		rejects, configuration progress, fix chatter - goes
 *		through this levelled logger and nowhere near the
 *		consumer-facing data path.  On the real board this is
 *		the secondary UART; on a host it is stderr.
 *
 *---------------------------------------------------------------*/

import (
	"os"

	"github.com/charmbracelet/log"
)

var diag = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "globe",
})

/* Levels, most to least talkative: debug, info, warn, error. */
func diag_init(level string) {
	var parsed, err = log.ParseLevel(level)
	if err != nil {
		diag.Warn("Unknown diagnostics level, using info", "level", level)
		parsed = log.InfoLevel
	}

	diag.SetLevel(parsed)
}
