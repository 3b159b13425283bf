package cli

import (
	"gomarc/config"
	"gomarc/iso2709"
	"gomarc/log"
	"gomarc/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

// LoadConfig reads the config file in homeDir and applies its logging
// settings. A missing home directory yields the default config, so commands
// that only work on files run without gomarc init.
func LoadConfig(homeDir string) (*config.Config, error) {
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}
	cfg := config.DefaultConfig
	if exists {
		read, err := config.ReadConfigFile(homeDir)
		if err != nil {
			return nil, err
		}
		cfg = *read
	}

	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing log level")
	}
	log.SetLevel(level)
	if err := log.SetFormat(cfg.LogFormat); err != nil {
		return nil, errors.Wrap(err, "error parsing log format")
	}
	return &cfg, nil
}

// Setup loads the configuration for the home directory given on the
// command line.
func Setup(cmd *cobra.Command) (*config.Config, error) {
	return LoadConfig(GetHomeDir(cmd))
}

// OpenStore opens the record store inside an initialized home directory.
func OpenStore(cmd *cobra.Command) (*leveldb.DB, error) {
	homeDir := GetHomeDir(cmd)
	if err := config.EnsureHomeDir(homeDir); err != nil {
		return nil, errors.Wrap(err, "error ensuring home directory")
	}
	db, err := store.Open(config.ExpandDBPath(homeDir))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open store")
	}
	return db, nil
}

// StringFlagOr returns the named flag when it was set on the command line
// and def otherwise.
func StringFlagOr(cmd *cobra.Command, name string, def string) string {
	if !cmd.Flags().Changed(name) {
		return def
	}
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}
	return val
}

type warningFilter struct {
	iso2709.ErrorHandler
}

func (w *warningFilter) Warning(d *iso2709.Diagnostic) {}

// NewDiagnosticLogger logs diagnostics through lgr, dropping warnings unless
// the config asks for them.
func NewDiagnosticLogger(cfg *config.Config, lgr log.Logger) iso2709.ErrorHandler {
	eh := iso2709.NewLoggingErrorHandler(lgr)
	if cfg.Decoder.ReportWarnings {
		return eh
	}
	return &warningFilter{eh}
}
