package repository

import (
	"strings"
	"testing"

	"circles/internal/model"
	"circles/internal/pkg/db"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	d := db.NewDB(db.Config{Driver: db.SQLite, DbName: dsn, MaxOpenConns: 1, MaxIdleConns: 1})
	if err := d.AutoMigrate(&model.Group{}, &model.JoinRequest{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func intPtr(n int) *int {
	return &n
}

func int64Ptr(n int64) *int64 {
	return &n
}

func sampleGroup() *model.Group {
	return &model.Group{
		Name:        "Book Club",
		Description: "Reading group",
		Leader:      "Ana",
		Schedule:    "Fridays",
		Location:    "Hall A",
		Capacity:    intPtr(12),
		CreatorID:   int64Ptr(7),
	}
}
