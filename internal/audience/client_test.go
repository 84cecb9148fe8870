package audience

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *RestClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRestClient(&Config{
		APIKey:     "re_test_key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
}

func makeContacts(prefix string, n int) []Contact {
	contacts := make([]Contact, n)
	for i := range contacts {
		contacts[i] = Contact{
			ID:    fmt.Sprintf("%s-%d", prefix, i),
			Email: fmt.Sprintf("%s-%d@example.com", prefix, i),
		}
	}
	return contacts
}

func writePage(w http.ResponseWriter, contacts []Contact, hasMore bool) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"object":   "list",
		"data":     contacts,
		"has_more": hasMore,
	})
}

func TestCountContacts_SumsPagesAndStopsOnShortPage(t *testing.T) {
	pages := [][]Contact{
		makeContacts("p1", 100),
		makeContacts("p2", 100),
		makeContacts("p3", 37),
	}

	var calls int
	var cursors []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Less(t, calls, len(pages), "pager must stop after the short page")
		assert.Equal(t, "/audiences/aud-1/contacts", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		cursors = append(cursors, r.URL.Query().Get("after"))
		writePage(w, pages[calls], true)
		calls++
	})

	count, err := client.CountContacts(context.Background(), "aud-1")
	require.NoError(t, err)
	assert.Equal(t, 237, count)
	assert.Equal(t, 3, calls)

	// The cursor is the last contact id of the previous page.
	assert.Equal(t, []string{"", "p1-99", "p2-99"}, cursors)
}

func TestCountContacts_StopsWhenProviderReportsNoMore(t *testing.T) {
	var calls int

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, 0, calls)
		writePage(w, makeContacts("p1", 100), false)
		calls++
	})

	count, err := client.CountContacts(context.Background(), "aud-1")
	require.NoError(t, err)
	assert.Equal(t, 100, count)
}

func TestCountContacts_EmptyAudience(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writePage(w, nil, false)
	})

	count, err := client.CountContacts(context.Background(), "aud-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountContacts_PageErrorDiscardsPartialSum(t *testing.T) {
	var calls int

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls >= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"statusCode": 500,
				"name":       "internal_server_error",
				"message":    "something went wrong",
			})
			calls++
			return
		}
		writePage(w, makeContacts(fmt.Sprintf("p%d", calls+1), 100), true)
		calls++
	})

	count, err := client.CountContacts(context.Background(), "aud-1")
	assert.Error(t, err)
	assert.Equal(t, 0, count, "partial sums must not leak out")
}

func TestCreateContact_ReturnsContactID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/audiences/aud-1/contacts", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@test.com", body["email"])
		assert.Equal(t, "Student", body["first_name"])
		assert.Equal(t, false, body["unsubscribed"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"object": "contact", "id": "contact-1"})
	})

	id, err := client.CreateContact(context.Background(), "aud-1", "  A@Test.com ", ContactOptions{FirstName: "Student"})
	require.NoError(t, err)
	assert.Equal(t, "contact-1", id)
}

func TestCreateContact_AlreadyExistsIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 409,
			"name":       "validation_error",
			"message":    "Contact already exists",
		})
	})

	id, err := client.CreateContact(context.Background(), "aud-1", "a@test.com", ContactOptions{})
	assert.NoError(t, err)
	assert.Empty(t, id)
}

func TestCreateContact_RestrictedKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 401,
			"name":       "restricted_api_key",
			"message":    "This API key is restricted to only send emails",
		})
	})

	_, err := client.CreateContact(context.Background(), "aud-1", "a@test.com", ContactOptions{})
	assert.Error(t, err)
	assert.True(t, IsRestrictedKey(err))
}

func TestCreateContact_GenericFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 422,
			"name":       "validation_error",
			"message":    "Invalid email",
		})
	})

	_, err := client.CreateContact(context.Background(), "aud-1", "not-an-email", ContactOptions{})
	assert.Error(t, err)
	assert.False(t, IsRestrictedKey(err))
}

func TestCreateContact_MissingAudienceID(t *testing.T) {
	client := NewRestClient(&Config{APIKey: "re_test_key"})

	_, err := client.CreateContact(context.Background(), "", "a@test.com", ContactOptions{})
	assert.Error(t, err)
}
