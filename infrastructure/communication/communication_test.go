package communication

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackPostsToChannels(t *testing.T) {
	var mu sync.Mutex
	var channels, texts []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		mu.Lock()
		channels = append(channels, r.FormValue("channel"))
		texts = append(texts, r.FormValue("text"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1700000000.000100"}`))
	}))
	defer server.Close()

	s := NewSlack("xoxb-test", SlackOption{InfoChannelID: "CINFO", ErrorChannelID: "CERR"}, slack.OptionAPIURL(server.URL+"/"))

	require.NoError(t, s.Info("late check-in"))
	require.NoError(t, s.Error("export failed"))

	assert.Equal(t, []string{"CINFO", "CERR"}, channels)
	assert.Equal(t, []string{"late check-in", "export failed"}, texts)
}

func TestSlackSkipsUnsetChannel(t *testing.T) {
	s := NewSlack("xoxb-test", SlackOption{}, slack.OptionAPIURL("http://127.0.0.1:0/"))
	assert.NoError(t, s.Info("nobody listens"))
}

func TestSlackReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	s := NewSlack("xoxb-test", SlackOption{InfoChannelID: "CNOPE"}, slack.OptionAPIURL(server.URL+"/"))
	err := s.Info("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	assert.NoError(t, n.Info("x"))
	assert.NoError(t, n.Error("x"))
}
