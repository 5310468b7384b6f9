// Package log holds the logging setup shared by the unitdata binaries.
package log

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
)

var Log = logging.MustGetLogger("unitdata")

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} %{shortfile}: %{message}`,
)

// Setup installs a stderr backend and applies level to every module. level is one of the go-logging level names,
// e.g. DEBUG, INFO, WARNING or ERROR.
func Setup(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("could not parse log level %q: %s", level, err)
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}
