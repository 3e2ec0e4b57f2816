// Package config provides Configuration, a nested string-keyed settings store
// addressed by dotted key paths, and a process-wide global configuration.
//
// Key paths:
//
//	A key containing "." is split at the first separator: Get("db.pool.size")
//	reads section "db", then "pool.size" inside it. Set on a dotted key creates
//	the missing sections. Map values (map[string]any) are stored as nested
//	*Configuration sections.
//
// Serialization:
//
//	Dumps/Loads use JSON with sorted keys. Save/Load pick YAML for .yaml/.yml
//	paths and JSON otherwise.
//
// Global configuration:
//
//	LoadGlobal, GetGlobal, GlobalOr, SetGlobal, Global, ClearGlobal and WithTemp
//	operate on one process-wide Configuration, created empty on first use.
//	They are safe for concurrent use; a *Configuration itself is not.
//
// Errors:
//
//	ErrKeyNotFound  a key path names no setting.
//	ErrNotSection   a key path descends into a value that is not a section.
package config
