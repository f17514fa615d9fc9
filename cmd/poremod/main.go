// Command poremod is a thin command-line front end over the library:
// it loads moiety files, runs a substructure search, and optionally
// performs a find-and-replace, printing the outcome as structured log
// events.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal().Err(err).Msg("poremod failed")
	}
}
