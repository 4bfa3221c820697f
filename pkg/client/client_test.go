package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeAPI struct {
	listCalls int
	getCalls  int
	groups    []Group
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/groups", func(w http.ResponseWriter, r *http.Request) {
		f.listCalls++
		json.NewEncoder(w).Encode(f.groups)
	})
	mux.HandleFunc("GET /api/groups/1", func(w http.ResponseWriter, r *http.Request) {
		f.getCalls++
		json.NewEncoder(w).Encode(f.groups[0])
	})
	mux.HandleFunc("POST /api/groups", func(w http.ResponseWriter, r *http.Request) {
		var in GroupInput
		json.NewDecoder(r.Body).Decode(&in)
		if in.Capacity != nil && *in.Capacity < 1 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APIError{Message: "capacity must be at least 1", Field: "capacity"})
			return
		}
		group := Group{ID: int64(len(f.groups) + 1), Name: in.Name}
		f.groups = append(f.groups, group)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(group)
	})
	mux.HandleFunc("GET /api/groups/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(APIError{Message: "Group not found"})
	})
	return mux
}

func newTestClient(t *testing.T) (*Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{groups: []Group{{ID: 1, Name: "Book Club"}}}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return New(srv.URL), api
}

func TestListGroupsCached(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	first, err := c.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := c.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if api.listCalls != 1 {
		t.Errorf("listCalls = %d, want 1", api.listCalls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Name != "Book Club" {
		t.Errorf("first = %+v, second = %+v", first, second)
	}
}

func TestGetGroupCached(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	c.GetGroup(ctx, 1)
	got, err := c.GetGroup(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if api.getCalls != 1 {
		t.Errorf("getCalls = %d, want 1", api.getCalls)
	}
	if got.Name != "Book Club" {
		t.Errorf("got %+v", got)
	}
}

func TestCreateInvalidatesListCache(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	c.ListGroups(ctx)
	if _, err := c.CreateGroup(ctx, GroupInput{Name: "Chess Night"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	groups, err := c.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if api.listCalls != 2 {
		t.Errorf("listCalls = %d, want 2 (cache invalidated)", api.listCalls)
	}
	if len(groups) != 2 {
		t.Errorf("len = %d, want 2", len(groups))
	}
}

func TestValidationErrorSurfacesField(t *testing.T) {
	c, _ := newTestClient(t)

	capacity := 0
	_, err := c.CreateGroup(context.Background(), GroupInput{Name: "x", Capacity: &capacity})
	if err == nil {
		t.Fatal("err = nil, want validation failure")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %T", err)
	}
	if apiErr.Status != 400 || apiErr.Field != "capacity" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestGetGroupNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.GetGroup(context.Background(), 999)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
