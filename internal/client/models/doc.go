// Package models defines the diary's persisted data: users and their records.
package models
