package caltrainlive

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures zerolog. Console output by default; set
// CALTRAIN_LOG_FORMAT=JSON for machine-readable logs and CALTRAIN_DEBUG=YES
// for debug level.
func InitLogging() {
	if os.Getenv("CALTRAIN_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	if os.Getenv("CALTRAIN_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
