package logic

import (
	"strings"
	"testing"

	"circles/internal/common/response"
	"circles/internal/types"
)

func registerBody() map[string]any {
	return map[string]any{
		"username": "ana",
		"email":    "ana@example.com",
		"password": "correct horse",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(engine, "POST", "/api/auth/register", "", registerBody())
	if w.Code != 201 {
		t.Fatalf("register: status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	var user types.UserInfoResp
	decodeBody(t, w, &user)
	if user.Id == 0 || user.Username != "ana" {
		t.Errorf("unexpected user: %+v", user)
	}
	// the password hash never leaves the server
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("password leaked: %s", w.Body.String())
	}

	w = doJSON(engine, "POST", "/api/auth/login", "", map[string]any{"email": "ana@example.com", "password": "correct horse"})
	if w.Code != 200 {
		t.Fatalf("login: status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var login types.LoginResp
	decodeBody(t, w, &login)
	if login.Token == "" {
		t.Fatal("empty token")
	}

	w = doJSON(engine, "GET", "/api/auth/me", login.Token, nil)
	if w.Code != 200 {
		t.Fatalf("me: status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var me types.UserInfoResp
	decodeBody(t, w, &me)
	if me.Id != user.Id || me.Email != "ana@example.com" {
		t.Errorf("me = %+v", me)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(engine, "POST", "/api/auth/register", "", registerBody())
	if w.Code != 201 {
		t.Fatalf("first register: status = %d", w.Code)
	}
	w = doJSON(engine, "POST", "/api/auth/register", "", registerBody())
	if w.Code != 409 {
		t.Fatalf("second register: status = %d, want 409", w.Code)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	engine, _ := newTestServer(t)

	body := registerBody()
	body["password"] = "short"
	w := doJSON(engine, "POST", "/api/auth/register", "", body)
	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp response.ErrorBody
	decodeBody(t, w, &resp)
	if resp.Field != "password" {
		t.Errorf("field = %q, want password", resp.Field)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	engine, _ := newTestServer(t)

	doJSON(engine, "POST", "/api/auth/register", "", registerBody())
	w := doJSON(engine, "POST", "/api/auth/login", "", map[string]any{"email": "ana@example.com", "password": "wrong"})
	if w.Code != 401 {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	w = doJSON(engine, "POST", "/api/auth/login", "", map[string]any{"email": "ghost@example.com", "password": "whatever"})
	if w.Code != 401 {
		t.Fatalf("unknown email: status = %d, want 401", w.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	engine, _ := newTestServer(t)

	doJSON(engine, "POST", "/api/auth/register", "", registerBody())
	w := doJSON(engine, "POST", "/api/auth/login", "", map[string]any{"email": "ana@example.com", "password": "correct horse"})
	var login types.LoginResp
	decodeBody(t, w, &login)

	w = doJSON(engine, "POST", "/api/auth/logout", login.Token, nil)
	if w.Code != 204 {
		t.Fatalf("logout: status = %d, want 204", w.Code)
	}

	// the token still parses, but its session is gone
	w = doJSON(engine, "GET", "/api/auth/me", login.Token, nil)
	if w.Code != 401 {
		t.Fatalf("me after logout: status = %d, want 401", w.Code)
	}
}
