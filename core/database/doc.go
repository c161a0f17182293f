// Package database handles the optional MySQL connection used by the run history.
//
// It provides a wrapper around GORM to configure MySQL connections from the
// application's configuration. The connection is optional: callers log a
// warning and continue without history when it fails.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
