package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs so flags owned by other layers (such as
// -c) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-w", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.RecordStoreURL, "a", cfg.RecordStoreURL, "record store base URL")
	fs.StringVar(&cfg.LocalDSN, "d", cfg.LocalDSN, "local session database file")
	fs.StringVar(&cfg.SigningKey, "k", cfg.SigningKey, "token signing key")
	fs.StringVar(&cfg.WebAddr, "w", cfg.WebAddr, "web front end listen address")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "record store request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
		}
	})
}
