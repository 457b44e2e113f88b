package database

import "testing"

func TestDialectProperties(t *testing.T) {
	tests := []struct {
		name                 string
		dialect              Dialect
		driverName           string
		migrationsSubdir     string
		supportsLastInsertId bool
	}{
		{"sqlite", NewSQLiteDialect(), "sqlite3", "sqlite", true},
		{"postgres", NewPostgresDialect(), "postgres", "postgres", false},
		{"mysql", NewMySQLDialect(), "mysql", "mysql", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driverName {
				t.Errorf("DriverName() = %v, want %v", got, tt.driverName)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.migrationsSubdir {
				t.Errorf("MigrationsSubdir() = %v, want %v", got, tt.migrationsSubdir)
			}
			if got := tt.dialect.SupportsLastInsertId(); got != tt.supportsLastInsertId {
				t.Errorf("SupportsLastInsertId() = %v, want %v", got, tt.supportsLastInsertId)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "sqlite keeps question marks",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM signs WHERE category_id = ?",
			expected: "SELECT * FROM signs WHERE category_id = ?",
		},
		{
			name:     "postgres numbers single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM signs WHERE category_id = ?",
			expected: "SELECT * FROM signs WHERE category_id = $1",
		},
		{
			name:     "postgres numbers multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO snapshots (user_id, collection, doc) VALUES (?, ?, ?)",
			expected: "INSERT INTO snapshots (user_id, collection, doc) VALUES ($1, $2, $3)",
		},
		{
			name:     "mysql keeps question marks",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE users SET name = ? WHERE id = ?",
			expected: "UPDATE users SET name = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(tt.query); got != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", got, tt.expected)
			}
		})
	}
}
