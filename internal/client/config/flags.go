package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/hmarket/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   durable store driver (sqlite, postgres, s3, memory)
//	-e string   ephemeral store driver (memory, redis)
//	-t string   tab session id; reuse one to resume a Redis-backed session
//	-l string   log level (debug, info, warn, error)
//
// Only these flags are taken from args (see flagx.FilterArgs) so -c and any
// other flag owned elsewhere do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-e", "-t", "-l"})

	fs := flag.NewFlagSet("hmarket", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DurableDriver, "d", cfg.DurableDriver, "durable store driver")
	fs.StringVar(&cfg.EphemeralDriver, "e", cfg.EphemeralDriver, "ephemeral store driver")
	fs.StringVar(&cfg.TabID, "t", cfg.TabID, "tab session id")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
