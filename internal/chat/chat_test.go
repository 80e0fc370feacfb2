package chat_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"calmind/internal/chat"
	"calmind/internal/models"
	"calmind/internal/progress"
	"calmind/internal/testutil"
	"calmind/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Messages []models.ChatMessage `json:"messages"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		last := req.Messages[len(req.Messages)-1]

		_ = json.NewEncoder(w).Encode(map[string]string{
			"response": fmt.Sprintf("you said: %s", last.Content),
		})
	})

	mux.HandleFunc("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "connected",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestClientStatus(t *testing.T) {
	srv := newTestServer(t)

	status, err := chat.NewClient(srv.URL).Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, "connected", status)
}

func TestConversationSay(t *testing.T) {
	srv := newTestServer(t)
	kv := testutil.NewKV()

	conversation := chat.NewConversation(
		chat.NewClient(srv.URL),
		chat.NewLog(kv),
		progress.NewTracker(kv, &testutil.Notifier{}),
	)

	reply, err := conversation.Say(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, "you said: hello", reply)
	assert.Len(t, conversation.Messages(), 2)

	// the conversation is persisted after every exchange
	var saved []models.ChatMessage
	if err := json.Unmarshal(kv.Data[store.KeyChatHistory], &saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, conversation.Messages(), saved)
}

func TestConversationMilestoneXP(t *testing.T) {
	srv := newTestServer(t)
	kv := testutil.NewKV()

	conversation := chat.NewConversation(
		chat.NewClient(srv.URL),
		chat.NewLog(kv),
		progress.NewTracker(kv, &testutil.Notifier{}),
	)

	for i := 0; i < 2; i++ {
		if _, err := conversation.Say(context.Background(), "hi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, ok := kv.Data[store.KeyXP]
		assert.False(t, ok, "no XP before the third message")
	}

	if _, err := conversation.Say(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, []byte("10"), kv.Data[store.KeyXP])

	// the next milestone lands on the sixth message
	for i := 0; i < 3; i++ {
		if _, err := conversation.Say(context.Background(), "hi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, []byte("20"), kv.Data[store.KeyXP])
}

func TestConversationResumesPersistedLog(t *testing.T) {
	srv := newTestServer(t)
	kv := testutil.NewKV()
	log := chat.NewLog(kv)

	err := log.Save([]models.ChatMessage{
		{Role: "user", Content: "earlier"},
		{Role: "assistant", Content: "noted"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conversation := chat.NewConversation(
		chat.NewClient(srv.URL),
		log,
		progress.NewTracker(kv, &testutil.Notifier{}),
	)

	assert.Len(t, conversation.Messages(), 2)

	if _, err := conversation.Say(context.Background(), "again"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Len(t, conversation.Messages(), 4)
}

func TestLogDegradesOnBadData(t *testing.T) {
	kv := testutil.NewKV()
	kv.Data[store.KeyChatHistory] = []byte("}{")

	assert.Empty(t, chat.NewLog(kv).Load())
}

func TestSayFailureKeepsLogClean(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}),
	)
	t.Cleanup(srv.Close)

	kv := testutil.NewKV()

	conversation := chat.NewConversation(
		chat.NewClient(srv.URL),
		chat.NewLog(kv),
		progress.NewTracker(kv, &testutil.Notifier{}),
	)

	_, err := conversation.Say(context.Background(), "hello")

	assert.Error(t, err)
	assert.Empty(t, conversation.Messages())

	_, ok := kv.Data[store.KeyChatHistory]
	assert.False(t, ok)
}
