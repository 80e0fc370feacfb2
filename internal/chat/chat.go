// Package chat talks to the companion CBT chat endpoint and keeps the
// conversation log. The endpoint itself is an opaque collaborator; only
// its two routes are known here.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"calmind/internal/models"
	"calmind/internal/progress"
	"calmind/store"
)

// xpPerMilestone is credited after every third user message.
const (
	xpPerMilestone   = 10
	messageMilestone = 3
)

// Client calls the chat endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient returns a client for the endpoint base URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// Send posts the conversation and returns the assistant's reply.
func (c *Client) Send(
	ctx context.Context,
	messages []models.ChatMessage,
) (string, error) {
	body, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint+"/api/chat",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat endpoint returned %s", resp.Status)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}

	return cr.Response, nil
}

// Status reports the endpoint's connection status.
func (c *Client) Status(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.endpoint+"/api/status",
		nil,
	)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	var sr statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", err
	}

	return sr.Status, nil
}

// Log persists the conversation.
type Log struct {
	kv store.KV
}

// NewLog returns a Log backed by the given store.
func NewLog(kv store.KV) *Log {
	return &Log{kv: kv}
}

// Load returns the saved conversation. Absent or malformed data reads
// as an empty conversation.
func (l *Log) Load() []models.ChatMessage {
	b, err := l.kv.Get(store.KeyChatHistory)
	if err != nil || len(b) == 0 {
		return nil
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal(b, &messages); err != nil {
		return nil
	}

	return messages
}

// Save stores the conversation.
func (l *Log) Save(messages []models.ChatMessage) error {
	b, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	return l.kv.Set(store.KeyChatHistory, b)
}

// Clear removes the saved conversation.
func (l *Log) Clear() error {
	return l.kv.Remove(store.KeyChatHistory)
}

// Conversation drives a chat session: it relays messages, persists the
// log, and credits XP after every third user message.
type Conversation struct {
	client   *Client
	log      *Log
	tracker  *progress.Tracker
	messages []models.ChatMessage
}

// NewConversation resumes the persisted conversation.
func NewConversation(
	client *Client,
	log *Log,
	tracker *progress.Tracker,
) *Conversation {
	return &Conversation{
		client:   client,
		log:      log,
		tracker:  tracker,
		messages: log.Load(),
	}
}

// Messages returns the conversation so far.
func (c *Conversation) Messages() []models.ChatMessage {
	return c.messages
}

// Say sends a user message and returns the assistant's reply.
func (c *Conversation) Say(
	ctx context.Context,
	content string,
) (string, error) {
	c.messages = append(c.messages, models.ChatMessage{
		Role:    "user",
		Content: content,
	})

	reply, err := c.client.Send(ctx, c.messages)
	if err != nil {
		// the unanswered message is not persisted
		c.messages = c.messages[:len(c.messages)-1]
		return "", err
	}

	c.messages = append(c.messages, models.ChatMessage{
		Role:    "assistant",
		Content: reply,
	})

	if err := c.log.Save(c.messages); err != nil {
		return reply, err
	}

	if c.userMessageCount()%messageMilestone == 0 {
		if _, err := c.tracker.Award(xpPerMilestone); err != nil {
			return reply, err
		}
	}

	return reply, nil
}

func (c *Conversation) userMessageCount() int {
	var n int

	for _, m := range c.messages {
		if m.Role == "user" {
			n++
		}
	}

	return n
}
