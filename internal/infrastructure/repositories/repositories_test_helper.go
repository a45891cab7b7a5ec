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
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTeamMemberTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		github_url TEXT,
		twitter_url TEXT,
		linked_in_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFounderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE founders (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		github_url TEXT,
		twitter_url TEXT,
		linked_in_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBlogPostTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE blog_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		tags TEXT,
		is_published BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBugReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bug_reports (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		poc_gdrive_link TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		admin_notes TEXT,
		rewarded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createApplicantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applicants (
		id TEXT PRIMARY KEY,
		resume_link TEXT NOT NULL,
		github_url TEXT NOT NULL,
		linked_in_url TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		admin_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSiteContentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE site_content_items (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFeedbackTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE feedback (
		id TEXT PRIMARY KEY,
		rating INTEGER NOT NULL,
		message TEXT NOT NULL,
		name TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWaitlistTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE waitlist_entries (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		name TEXT,
		email TEXT NOT NULL,
		phone TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createHallOfFameTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE hall_of_fame_entries (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		total_points INTEGER NOT NULL DEFAULT 0,
		achievements TEXT,
		last_rewarded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAdminCredentialTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_credentials (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSuperActionCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE super_action_codes (
		id TEXT PRIMARY KEY,
		code_hash TEXT NOT NULL,
		used BOOLEAN NOT NULL DEFAULT 0,
		used_at DATETIME,
		created_at DATETIME
	);`)
}

func createAuditEntryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_entries (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		actor_email TEXT NOT NULL,
		detail TEXT,
		created_at DATETIME
	);`)
}
