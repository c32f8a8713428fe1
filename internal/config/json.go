// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can say "30s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		WebBaseURL     string   `json:"web_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
	} `json:"api,omitempty"`

	Auth struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		AccessToken string `json:"access_token"`
	} `json:"auth,omitempty"`

	Storage struct {
		DSN string `json:"db"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval        Duration `json:"sync_interval"`
		DownloadConcurrency int      `json:"download_concurrency"`
	} `json:"workers,omitempty"`

	Download struct {
		Format    string `json:"format"`
		Directory string `json:"directory"`
	} `json:"download,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			WebBaseURL:     jsonCfg.API.WebBaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
			RetryCount:     jsonCfg.API.RetryCount,
		},
		Auth: Auth{
			Username:    jsonCfg.Auth.Username,
			Password:    jsonCfg.Auth.Password,
			AccessToken: jsonCfg.Auth.AccessToken,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Workers: Workers{
			SyncInterval:        time.Duration(jsonCfg.Workers.SyncInterval),
			DownloadConcurrency: jsonCfg.Workers.DownloadConcurrency,
		},
		Download: Download{
			Format:    jsonCfg.Download.Format,
			Directory: jsonCfg.Download.Directory,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
