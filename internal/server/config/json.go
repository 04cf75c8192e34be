package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Duration fields are accepted as integer minutes.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	EndpointAddrHTTP          string `json:"endpoint_addr_http"`
	DatabaseDSN               string `json:"database_dsn"`
	SecretKey                 string `json:"secret_key"`
	AccessTokenValidityMinute int    `json:"access_token_validity_minutes"`
	BcryptCost                int    `json:"bcrypt_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Only fields present
// in the file override the current values. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityMinute > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityMinute) * time.Minute
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
}
