package config

import (
	"io"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	Decoder   DecoderConfig `mapstructure:"decoder"`
	Encoder   EncoderConfig `mapstructure:"encoder"`
	Verify    VerifyConfig  `mapstructure:"verify"`
	Store     StoreConfig   `mapstructure:"store"`
}

type DecoderConfig struct {
	SourceCharset  string `mapstructure:"source_charset"`
	ReportWarnings bool   `mapstructure:"report_warnings"`
}

type EncoderConfig struct {
	TargetCharset string `mapstructure:"target_charset"`
}

type VerifyConfig struct {
	Workers int `mapstructure:"workers"`
}

type StoreConfig struct {
	SkipUnchanged      bool `mapstructure:"skip_unchanged"`
	ProgressIntervalMS int  `mapstructure:"progress_interval_ms"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}

func ConvertDuration(base int, unit time.Duration) time.Duration {
	return time.Duration(base) * unit
}
