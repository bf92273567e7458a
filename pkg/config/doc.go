// Package config loads environment-based configuration structs for the
// authentication core.
//
// Every package in this module that needs tunable values (signing keys,
// lockout policy, storage connection strings) declares its own Config struct
// with `env` tags and default values. The host application loads those
// structs once at process start with Load or MustLoad and passes them into
// component constructors; no component reloads configuration per call.
//
// # Usage
//
//	var cfg session.Config
//	config.MustLoad(&cfg)
//	mgr := session.NewManager(users, val, codec, jwtSvc, cfg)
package config
