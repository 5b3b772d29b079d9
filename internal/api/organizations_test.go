package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/praxishq/praxis-client/internal/apierr"
	"github.com/praxishq/praxis-client/internal/types"
)

func TestListOrganizations_Success(t *testing.T) {
	t.Parallel()
	resp := types.ListOrganizationsResponse{Organizations: []types.Organization{{ID: "o1", Name: "Acme"}}, Count: 1}
	ex := newExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/organizations" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	got, err := ListOrganizations(context.Background(), ex, 0, 0)
	if err != nil || len(got) != 1 || got[0].Name != "Acme" {
		t.Fatalf("ListOrganizations unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetOrganization_Success(t *testing.T) {
	t.Parallel()
	want := types.Organization{ID: "o1", Name: "Acme"}
	ex := newExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/organizations/o1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	got, err := GetOrganization(context.Background(), ex, "o1")
	if err != nil || got == nil || got.ID != "o1" {
		t.Fatalf("GetOrganization unexpected: got=%+v err=%v", got, err)
	}
}

func TestCreateOrganization_Success(t *testing.T) {
	t.Parallel()
	ex := newExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name != "Acme" {
			t.Errorf("payload unexpected: %+v err=%v", req, err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Organization{ID: "o1", Name: req.Name})
	}))
	got, err := CreateOrganization(context.Background(), ex, types.CreateOrganizationRequest{Name: "Acme"})
	if err != nil || got == nil || got.ID != "o1" {
		t.Fatalf("CreateOrganization unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeleteOrganization_Success(t *testing.T) {
	t.Parallel()
	ex := newExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method unexpected: %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	if err := DeleteOrganization(context.Background(), ex, "o1"); err != nil {
		t.Fatalf("DeleteOrganization error: %v", err)
	}
}

func TestOrganizations_ErrorStatuses(t *testing.T) {
	t.Parallel()
	ex := newExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"forbidden"}`))
	}))
	_, err := GetOrganization(context.Background(), ex, "o1")
	e, ok := apierr.As(err)
	if !ok || e.Status != 403 || e.Message != "Access denied: forbidden" {
		t.Fatalf("typed error unexpected: %v", err)
	}
}
