package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		full_name TEXT NOT NULL,
		phone TEXT,
		country TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		verified BOOLEAN NOT NULL DEFAULT 0,
		balance REAL NOT NULL DEFAULT 0,
		total_deposited REAL NOT NULL DEFAULT 0,
		total_withdrawn REAL NOT NULL DEFAULT 0,
		total_profit REAL NOT NULL DEFAULT 0,
		total_trades INTEGER NOT NULL DEFAULT 0,
		win_rate REAL NOT NULL DEFAULT 0,
		last_login DATETIME,
		registered_at DATETIME NOT NULL,
		referral_code TEXT UNIQUE NOT NULL,
		referred_by TEXT,
		kyc_status TEXT NOT NULL DEFAULT 'not_submitted',
		notes TEXT,
		risk_level TEXT NOT NULL DEFAULT 'low',
		tags TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		amount REAL NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		status TEXT NOT NULL DEFAULT 'pending',
		tx_hash TEXT,
		address TEXT,
		description TEXT NOT NULL,
		admin_notes TEXT,
		created_at DATETIME NOT NULL,
		completed_at DATETIME,
		updated_at DATETIME
	);`)
}

func createKycDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_documents (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		url TEXT NOT NULL,
		uploaded_at DATETIME NOT NULL
	);`)
}

func createChatMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chat_messages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		admin_id TEXT,
		message TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`)
}

func createAdminUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createTransactionTable(t, db)
	createKycDocumentTable(t, db)
	createChatMessageTable(t, db)
	createAdminUserTable(t, db)
}
