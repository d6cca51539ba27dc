// Package store provides the namespace-scoped backing store that test
// fixtures are seeded into. Records are stored as JSON rows in SQLite, keyed
// by (namespace, kind, key). Each test run works inside its own namespace and
// resets it before seeding, so runs never see each other's data.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	namespace TEXT NOT NULL,
	kind      TEXT NOT NULL,
	key       TEXT NOT NULL,
	data      TEXT NOT NULL,
	PRIMARY KEY (namespace, kind, key)
);`

// Store is a handle to the SQLite database holding all namespaces.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the store at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening store database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Namespace returns a handle to an isolated data partition. Namespaces do not
// need to be created in advance; an unused namespace is simply empty.
func (s *Store) Namespace(name string) *Namespace {
	return &Namespace{db: s.db, name: name}
}

// Namespace is an isolated partition of the store.
type Namespace struct {
	db   *sql.DB
	name string
}

// Name returns the namespace's name.
func (n *Namespace) Name() string {
	return n.name
}

// Put inserts or replaces one record of the given kind.
func (n *Namespace) Put(kind, key string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %s record %q: %w", kind, key, err)
	}
	_, err = n.db.Exec(
		`INSERT OR REPLACE INTO records (namespace, kind, key, data) VALUES (?, ?, ?, ?)`,
		n.name, kind, key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storing %s record %q: %w", kind, key, err)
	}
	return nil
}

// Get decodes the record of the given kind and key into out. It returns
// sql.ErrNoRows if the record does not exist.
func (n *Namespace) Get(kind, key string, out interface{}) error {
	var data string
	err := n.db.QueryRow(
		`SELECT data FROM records WHERE namespace = ? AND kind = ? AND key = ?`,
		n.name, kind, key,
	).Scan(&data)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), out)
}

// Count returns the number of records of the given kind in this namespace.
func (n *Namespace) Count(kind string) (int, error) {
	var count int
	err := n.db.QueryRow(
		`SELECT COUNT(*) FROM records WHERE namespace = ? AND kind = ?`,
		n.name, kind,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting %s records: %w", kind, err)
	}
	return count, nil
}

// Scan calls fn for every record of the given kind, in key order.
func (n *Namespace) Scan(kind string, fn func(key string, data []byte) error) error {
	rows, err := n.db.Query(
		`SELECT key, data FROM records WHERE namespace = ? AND kind = ? ORDER BY key`,
		n.name, kind,
	)
	if err != nil {
		return fmt.Errorf("scanning %s records: %w", kind, err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, data string
		if err := rows.Scan(&key, &data); err != nil {
			return err
		}
		if err := fn(key, []byte(data)); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Reset deletes every record in this namespace.
func (n *Namespace) Reset() error {
	_, err := n.db.Exec(`DELETE FROM records WHERE namespace = ?`, n.name)
	if err != nil {
		return fmt.Errorf("resetting namespace %q: %w", n.name, err)
	}
	return nil
}
