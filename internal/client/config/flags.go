package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/superapp/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-i", "-f", "-s", "-d", "-r", "-l"}

// parseFlags populates Config fields from command-line flags.
//
//	-a string     backend origin, e.g. http://localhost:8080
//	-t duration   per-request timeout
//	-i int        online check interval (in seconds)
//	-f            also treat 403 as an invalid session
//	-s string     storage backend: sqlite, redis or memory
//	-d string     sqlite database path
//	-r string     redis address
//	-l string     log level
//
// Arguments are filtered through flagx.FilterArgs first so the JSON -c flag
// and anything else on the command line do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("superapp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend origin")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.BoolVar(&cfg.InvalidateOnForbidden, "f", cfg.InvalidateOnForbidden, "treat 403 as an invalid session")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
