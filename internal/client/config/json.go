package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authdemo/internal/flagx"
	"github.com/dmitrijs2005/authdemo/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Pointer fields tell
// an absent key apart from an empty one.
type JsonConfig struct {
	RecordStoreURL *string         `json:"record_store_url"`
	LocalDSN       *string         `json:"local_dsn"`
	SigningKey     *string         `json:"signing_key"`
	WebAddr        *string         `json:"web_addr"`
	RequestTimeout *timex.Duration `json:"request_timeout"`

	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. It panics
// on read or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.RecordStoreURL, jc.RecordStoreURL)
	setString(&cfg.LocalDSN, jc.LocalDSN)
	setString(&cfg.SigningKey, jc.SigningKey)
	setString(&cfg.WebAddr, jc.WebAddr)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
