package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authdemo/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
//	-a string     REST bind address (e.g. ":3001")
//	-d string     PostgreSQL DSN; empty means in-memory storage
//	-seed string  JSON file of users to preload
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SeedFile, "seed", config.SeedFile, "users seed file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
