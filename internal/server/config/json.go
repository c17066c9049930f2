package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authdemo/internal/flagx"
)

// JsonConfig is the JSON file form of Config. Pointer fields tell an
// absent key apart from an empty one.
type JsonConfig struct {
	EndpointAddr *string `json:"endpoint_addr"`
	DatabaseDSN  *string `json:"database_dsn"`
	SeedFile     *string `json:"seed_file"`
}

// parseJson overlays config with the file named by -c/-config, if any. It
// panics if the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SeedFile != nil {
		config.SeedFile = *c.SeedFile
	}
}
