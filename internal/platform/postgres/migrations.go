package postgres

import "embed"

// Migrations holds the goose SQL migrations for the users, accounts and
// carriers tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations passed to goose.
const MigrationsDir = "migrations"
