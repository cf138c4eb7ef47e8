// Package persistence provides the GORM-based repository for key pair
// metadata and the database connection management for the supported engines
// (sqlite, postgres). Key material itself is never persisted here.
package persistence
