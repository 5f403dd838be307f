// Package entity defines the core business entities of the product catalog.
package entity

import (
	"fmt"
	"log/slog"
)

// creationLogger receives one record per constructed entity. A hook at the
// end of each constructor replaces constructor-side logging mixins.
var creationLogger *slog.Logger

// SetCreationLogger routes entity-creation records to logger. Passing nil
// restores the process default logger.
func SetCreationLogger(logger *slog.Logger) {
	creationLogger = logger
}

func notifyCreated(kind string, args ...any) {
	logger := creationLogger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("создан объект класса "+kind, "args", fmt.Sprintf("%v", args))
}
