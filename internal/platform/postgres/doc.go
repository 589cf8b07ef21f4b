// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx stdlib driver. Each store maps rows of one
// table (users, accounts, carriers) to domain entities and translates driver
// errors into the store sentinel errors. The schema lives in the embedded
// goose migrations.
package postgres
