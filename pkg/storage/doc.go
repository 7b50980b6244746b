// Package storage provides the local key-value persistence used by the pantry,
// inventory and shopping list services. Values are stored as JSON blobs in
// BadgerDB, either on disk or fully in memory.
package storage
