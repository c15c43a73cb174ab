package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		DevSeed       bool     `json:"dev_seed"`
	} `json:"app,omitempty"`

	Cookie struct {
		Name          string   `json:"name"`
		Path          string   `json:"path"`
		Domain        string   `json:"domain"`
		Secure        bool     `json:"secure"`
		SameSite      string   `json:"same_site"`
		RefreshWindow Duration `json:"refresh_window"`
	} `json:"cookie,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		StaticDir      string   `json:"static_dir"`
		RequestTimeout Duration `json:"request_timeout"`
		EnableMetrics  bool     `json:"enable_metrics"`
	} `json:"server,omitempty"`
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
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
			DevSeed:       jsonCfg.App.DevSeed,
		},
		Cookie: Cookie{
			Name:          jsonCfg.Cookie.Name,
			Path:          jsonCfg.Cookie.Path,
			Domain:        jsonCfg.Cookie.Domain,
			Secure:        jsonCfg.Cookie.Secure,
			SameSite:      jsonCfg.Cookie.SameSite,
			RefreshWindow: time.Duration(jsonCfg.Cookie.RefreshWindow),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			StaticDir:      jsonCfg.Server.StaticDir,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			EnableMetrics:  jsonCfg.Server.EnableMetrics,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
