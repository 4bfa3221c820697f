package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"circles/internal/common/jwt"
	"circles/internal/model"
	"circles/internal/pkg/db"
	"circles/internal/pkg/log"
	"circles/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.InitLogger(log.Config{Level: "error"})
	jwt.Init(jwt.Config{Key: "test-key", Expire: 60})
	os.Exit(m.Run())
}

type fakeSessions struct {
	m map[string]bool
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{m: make(map[string]bool)}
}

func sessionKey(userID int64, sessionID string) string {
	return fmt.Sprintf("%d:%s", userID, sessionID)
}

func (f *fakeSessions) Save(_ context.Context, userID int64, sessionID string, _ time.Duration) error {
	f.m[sessionKey(userID, sessionID)] = true
	return nil
}

func (f *fakeSessions) Exists(_ context.Context, userID int64, sessionID string) (bool, error) {
	return f.m[sessionKey(userID, sessionID)], nil
}

func (f *fakeSessions) Delete(_ context.Context, userID int64, sessionID string) error {
	delete(f.m, sessionKey(userID, sessionID))
	return nil
}

func newTestServer(t *testing.T) (*gin.Engine, *server.Server) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	d := db.NewDB(db.Config{Driver: db.SQLite, DbName: dsn, MaxOpenConns: 1, MaxIdleConns: 1})
	if err := d.AutoMigrate(&model.Group{}, &model.JoinRequest{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	s := server.NewServer(d, newFakeSessions())
	engine := gin.New()
	api := engine.Group("/api")
	NewGroupApi(s).RegisterRouter(api)
	NewJoinRequestApi(s).RegisterRouter(api)
	NewAuthApi(s).RegisterRouter(api)
	return engine, s
}

func authToken(t *testing.T, s *server.Server, userID int64) string {
	t.Helper()
	sessionID := uuid.NewString()
	token, err := jwt.GenerateToken(userID, sessionID)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if err := s.Sessions.Save(context.Background(), userID, sessionID, time.Hour); err != nil {
		t.Fatalf("session: %v", err)
	}
	return token
}

func doJSON(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var raw string
	if body != nil {
		b, _ := json.Marshal(body)
		raw = string(b)
	}
	return doRaw(engine, method, path, token, raw)
}

func doRaw(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("token", token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func createGroup(t *testing.T, engine *gin.Engine, token string, body any) model.Group {
	t.Helper()
	w := doJSON(engine, "POST", "/api/groups", token, body)
	if w.Code != 201 {
		t.Fatalf("create group: status %d, body %s", w.Code, w.Body.String())
	}
	var group model.Group
	decodeBody(t, w, &group)
	return group
}

func validGroupBody() map[string]any {
	return map[string]any{
		"name":        "Book Club",
		"description": "Reading group",
		"leader":      "Ana",
		"schedule":    "Fridays",
		"location":    "Hall A",
	}
}
