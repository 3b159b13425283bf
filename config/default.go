package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"gomarc/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel:  log.LevelInfo.String(),
	LogFormat: log.FormatText,
	Decoder: DecoderConfig{
		SourceCharset:  "",
		ReportWarnings: true,
	},
	Encoder: EncoderConfig{
		TargetCharset: "",
	},
	Verify: VerifyConfig{
		Workers: 4,
	},
	Store: StoreConfig{
		SkipUnchanged:      true,
		ProgressIntervalMS: 2000,
	},
}

const defaultConfigTemplateText = `# gomarc Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the log format. Can be "text" or "json".
log_format = "{{.LogFormat}}"

# Configures how record files are read.
[decoder]
  # Sets the charset of field payloads in input files, for example
  # "ISO-8859-1". Payloads are converted to UTF-8 while decoding. Leave
  # empty to pass payload bytes through untouched.
  source_charset = "{{.Decoder.SourceCharset}}"
  # Logs field-level warnings in addition to errors.
  report_warnings = {{.Decoder.ReportWarnings}}

# Configures how records are written.
[encoder]
  # Sets the charset payloads are converted to when writing. Directory
  # lengths count bytes in this charset. Leave empty to write UTF-8.
  target_charset = "{{.Encoder.TargetCharset}}"

# Configures the verify command.
[verify]
  # Sets how many files are decoded at the same time.
  workers = {{.Verify.Workers}}

# Configures the local record store.
[store]
  # Skips writing records whose checksum matches the stored copy.
  skip_unchanged = {{.Store.SkipUnchanged}}
  # Sets the minimum time between import progress log lines.
  progress_interval_ms = {{.Store.ProgressIntervalMS}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFile), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFile), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
