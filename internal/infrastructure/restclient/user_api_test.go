package restclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
)

func TestUserListSortsByCreatedAtDescending(t *testing.T) {
	day := func(v string) time.Time {
		ts, _ := time.Parse("2006-01-02", v)
		return ts
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]user.User{
			{ID: "1", Name: "Alice", CreatedAt: day("2024-01-01")},
			{ID: "2", Name: "Bob", CreatedAt: day("2024-03-01")},
			{ID: "3", Name: "Carol", CreatedAt: day("2024-02-01")},
		})
	}))
	defer srv.Close()
	api := NewUserAPI(NewClient(srv.URL, time.Second, testLogger()), testLogger())

	users, err := api.List(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	require.Equal(t, []string{"2", "3", "1"}, ids)
}

func TestUserGetReportsNotFoundDistinctly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()
	api := NewUserAPI(NewClient(srv.URL, time.Second, testLogger()), testLogger())

	lookup, err := api.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Equal(t, backend.LookupNotFound, lookup.State)
	require.Nil(t, lookup.OrNil())
}

func TestUserCreateSynthesizesAvatar(t *testing.T) {
	var posted user.User
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&posted)
		json.NewEncoder(w).Encode(posted)
	}))
	defer srv.Close()
	api := NewUserAPI(NewClient(srv.URL, time.Second, testLogger()), testLogger())

	created, err := api.Create(context.Background(), user.FormData{
		Name: "Dana", Email: "dana@example.com", Role: user.RoleManager,
		Phone: "+1 555 000 1111", Address: "1 Long Street, Springfield",
	})
	require.NoError(t, err)
	require.NotEmpty(t, posted.ID)
	require.Equal(t, defaultUserAvatar, posted.Avatar)
	require.Equal(t, user.RoleManager, created.Role)
}

func TestUserUpdateMergesFormOverExisting(t *testing.T) {
	existing := user.User{
		ID: "9", Name: "Old", Email: "old@example.com", Role: user.RoleUser,
		Avatar: "https://example.com/kept.png", Phone: "+1 555 123 4567",
		Address: "42 Original Avenue, Old Town", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	var sent user.User
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(existing)
		case http.MethodPut:
			json.NewDecoder(r.Body).Decode(&sent)
			json.NewEncoder(w).Encode(sent)
		}
	}))
	defer srv.Close()
	api := NewUserAPI(NewClient(srv.URL, time.Second, testLogger()), testLogger())

	_, err := api.Update(context.Background(), "9", user.FormData{
		Name: "New", Email: "new@example.com", Role: user.RoleAdmin,
		Phone: "+1 555 765 4321", Address: "7 Updated Boulevard, New Town",
	})
	require.NoError(t, err)
	require.Equal(t, "New", sent.Name)
	require.Equal(t, user.RoleAdmin, sent.Role)
	require.Equal(t, existing.Avatar, sent.Avatar, "avatar is not form-editable and must survive")
	require.Equal(t, existing.CreatedAt, sent.CreatedAt)
}

func TestUserUpdateMissingEntityIssuesNoWrite(t *testing.T) {
	var putCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			putCalls++
		}
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()
	api := NewUserAPI(NewClient(srv.URL, time.Second, testLogger()), testLogger())

	_, err := api.Update(context.Background(), "missing", user.FormData{Name: "x"})
	require.ErrorIs(t, err, backend.ErrNotFound)
	require.Zero(t, putCalls)
}
