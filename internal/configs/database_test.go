package config

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	model "todo-api.com/todo-api/internal/models"
)

func TestSqliteDSN(t *testing.T) {
	cases := map[string]string{
		"todos.db":                        "todos.db?_foreign_keys=on",
		"file:todos.db?cache=shared":      "file:todos.db?cache=shared&_foreign_keys=on",
		"file:todos.db?_foreign_keys=off": "file:todos.db?_foreign_keys=off",
		"file:todos.db?mode=memory&_fk=1": "file:todos.db?mode=memory&_fk=1",
	}

	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewDatabaseClient_ForeignKeysOnEveryConnection(t *testing.T) {
	db, err := NewDatabaseClient("sqlite", filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	first, err := sqlDB.Conn(ctx)
	if err != nil {
		t.Fatalf("failed to get connection: %v", err)
	}
	second, err := sqlDB.Conn(ctx)
	if err != nil {
		t.Fatalf("failed to get connection: %v", err)
	}

	for i, conn := range []*sql.Conn{first, second} {
		var enabled int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
			t.Fatalf("connection %d: %v", i, err)
		}
		if enabled != 1 {
			t.Errorf("connection %d: expected foreign keys to be on", i)
		}
	}
	_ = first.Close()
	_ = second.Close()

	user := model.User{Username: "alice", PasswordHash: "hash", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := db.Omit("User").Create(&model.Task{Title: "owned", UserID: user.ID}).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := db.Delete(&user).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	var remaining int64
	db.Model(&model.Task{}).Count(&remaining)
	if remaining != 0 {
		t.Errorf("expected tasks to be deleted with their owner, %d left", remaining)
	}

	if err := db.Omit("User").Create(&model.Task{Title: "orphan", UserID: user.ID + 100}).Error; err == nil {
		t.Error("expected a task without an owner to be rejected")
	}
}
