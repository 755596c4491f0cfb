package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/blogsync/internal/flagx"
)

// Duration unmarshals either a string like "15s" or integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}

	ns, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	d.Duration = time.Duration(ns)
	return nil
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir             string   `json:"data_dir"`
	RequestTimeout      Duration `json:"request_timeout"`
	OnlineCheckInterval Duration `json:"online_check_interval"`
	LogLevel            string   `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. No flag, no JSON. Read or unmarshal errors panic;
// a broken config file selected explicitly should not be worked around.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
