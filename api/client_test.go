package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

func TestListPropertiesQueryParams(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Property{{ID: 1, Reference: "REF-001"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	properties, err := client.ListProperties(context.Background(), ListOptions{
		Limit:  20,
		Skip:   40,
		Search: "porto",
		Status: models.PropertyAvailable,
	})
	require.NoError(t, err)

	assert.Equal(t, "/properties/", gotPath)
	assert.Contains(t, gotQuery, "limit=20")
	assert.Contains(t, gotQuery, "skip=40")
	assert.Contains(t, gotQuery, "search=porto")
	assert.Contains(t, gotQuery, "status=AVAILABLE")
	require.Len(t, properties, 1)
	assert.Equal(t, "REF-001", properties[0].Reference)
}

func TestRequestCarriesSessionTokenAndRequestID(t *testing.T) {
	var auth, requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]models.Team{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetSessionToken("tok-123")
	_, err := client.ListTeams(context.Background(), ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", auth)
	assert.NotEmpty(t, requestID)
}

func TestNonOKBecomesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "reference already exists", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CreateTeam(context.Background(), &forms.TeamPayload{Name: "Equipa"})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "reference already exists")
}

func TestUnauthorizedAndNotFoundSentinels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/agents/99" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetAgent(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	err = client.DeleteLead(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateLeadIssuesSinglePUTWithFullPayload(t *testing.T) {
	var calls []string
	var gotBody forms.LeadPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(models.Lead{ID: 7})
	}))
	defer server.Close()

	// Edit lead 7: change only the phone, everything else untouched.
	original := &models.Lead{
		ID:     7,
		Name:   "Rita Lopes",
		Email:  "rita@sapo.pt",
		Phone:  "911111111",
		Status: models.LeadQualified,
	}
	draft := forms.LeadDraftFrom(original)
	draft.Phone = "933444555"

	payload, errs := draft.Submission()
	require.True(t, errs.OK())

	client := NewClient(server.URL)
	_, err := client.UpdateLead(context.Background(), original.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, []string{"PUT /leads/7"}, calls, "exactly one PUT call")
	assert.Equal(t, "Rita Lopes", gotBody.Name)
	assert.Equal(t, "rita@sapo.pt", gotBody.Email)
	assert.Equal(t, models.LeadQualified, gotBody.Status)
	assert.Equal(t, "933444555", gotBody.Phone)
}

func TestMeTreatsNonOKAsNoSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	session, err := client.Me(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestMeReturnsValidSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Session{Email: "ana@imocrm.pt", Role: "leader", Valid: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	session, err := client.Me(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "leader", session.Role)
}

func TestMeTreatsInvalidFlagAsNoSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Session{Email: "x@y.pt", Valid: false})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	session, err := client.Me(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestVisitLifecycleActions(t *testing.T) {
	var calls []string
	var rescheduleBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/mobile/visits/5/reschedule" {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rescheduleBody))
		}
		_ = json.NewEncoder(w).Encode(models.Visit{ID: 5})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	_, err := client.CheckInVisit(ctx, 5)
	require.NoError(t, err)
	_, err = client.CheckOutVisit(ctx, 5)
	require.NoError(t, err)
	_, err = client.CancelVisit(ctx, 5)
	require.NoError(t, err)

	at, err := time.Parse(time.RFC3339, "2025-07-01T10:30:00Z")
	require.NoError(t, err)
	_, err = client.RescheduleVisit(ctx, 5, at)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /mobile/visits/5/check-in",
		"POST /mobile/visits/5/check-out",
		"POST /mobile/visits/5/cancel",
		"POST /mobile/visits/5/reschedule",
	}, calls)
	assert.Equal(t, "2025-07-01T10:30:00Z", rescheduleBody["scheduled_at"])
}

func TestDeleteFailureIsNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "team has members", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteTeam(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "no automatic retry")
}
