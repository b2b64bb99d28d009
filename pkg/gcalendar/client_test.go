package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	require.NoError(t, err)
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("unsupported json", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), "")
		assert.Error(t, err)
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600))

		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath)
		assert.NoError(t, err)
	})

	t.Run("installed app with broken token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600))

		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath)
		assert.Error(t, err)
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json"), "")
		assert.Error(t, err)
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("recurring event", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri","recurrence":["RRULE:FREQ=DAILY"]}`))
		})

		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:    "Standup",
			StartTime:  now,
			EndTime:    now,
			Timezone:   "UTC",
			Recurrence: []string{"RRULE:FREQ=DAILY"},
		})
		require.NoError(t, err)
		assert.Equal(t, "event-123", event.ID)
		assert.Equal(t, "https://calendar.google.com/event-uri", event.HtmlLink)
		assert.Equal(t, []string{"RRULE:FREQ=DAILY"}, event.Recurrence)
		assert.Equal(t, []any{"RRULE:FREQ=DAILY"}, body["recurrence"])
		assert.Equal(t, "Standup", body["summary"])
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "team",
			Summary:    "Fail",
			StartTime:  time.Now(),
			EndTime:    time.Now(),
		})
		assert.Error(t, err)
	})
}
