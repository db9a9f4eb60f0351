// Package persistence stores the timer collection across restarts.
//
// The collection is kept as a single JSON array under StorageKey. Two
// backends implement Store: FileStore writes a JSON file, SQLiteStore
// keeps the document in a key/value table. LoadTimers migrates older
// records and discards data it cannot parse.
package persistence
