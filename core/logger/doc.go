// Package logger provides structured logging based on Zap.
//
// New builds a logger from Config: Level is any zap level name and Format is
// "json" for machine-read logs or "console" for an operator's terminal.
//
// HTTP handlers use WithRayID so that every line logged while serving one
// request, including the whole import session it triggers, carries the same
// ray_id.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Import started", zap.String("adventure", id))
//
//	l := logger.WithRayID(log, c)
//	l.Error("Import failed", zap.Error(err))
package logger
