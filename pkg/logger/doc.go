// Package logger provides a small slog-based logging factory and shared
// attribute helpers used across the authentication core.
//
// Components accept a *slog.Logger and default to a discard logger, so a
// host application opts into logging by passing a configured instance:
//
//	log := logger.New(logger.WithFormat(logger.FormatText), logger.WithLevel(slog.LevelDebug))
//	mgr := session.NewManager(users, val, codec, jwtSvc, cfg, session.WithLogger(log))
//
// Attribute helpers (Error, UserID, Login, Component) keep log keys
// consistent between packages.
package logger
