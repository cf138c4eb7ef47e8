// Package models contains the GORM database models mapped to and from the
// domain entities.
package models
