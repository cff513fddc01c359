// Package options resolves the candidate lists for enum fields.
//
// A resolver turns a schema OptionSource into a list of strings: static
// lists pass through, named providers dispatch through a registry filled
// before the session starts, file_list sources glob the filesystem, and
// script sources run a shell command template with ${key} placeholders
// substituted from the current value map.
//
// Script results can be cached under a declared TTL. The cache key
// combines the original template with the substituted command, so the
// same template resolved under different variable bindings never
// collides. Expired entries are treated as absent and overwritten on the
// next successful run; nothing evicts them eagerly.
//
// All process execution goes through the CommandRunner capability so
// tests can resolve scripts without spawning a shell.
package options
