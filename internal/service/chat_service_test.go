package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupChatServiceTest(t *testing.T) (*ChatService, *SettingService) {
	t.Helper()
	dsn := fmt.Sprintf("file:chat-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	settings := NewSettingService(gdb)
	chat := NewChatService(settings, NewExperienceService(gdb), NewProjectService(gdb), "test-model", "")
	return chat, settings
}

func TestChatServiceNotConfigured(t *testing.T) {
	chat, _ := setupChatServiceTest(t)

	_, err := chat.Reply(context.Background(), "hello")
	if !errors.Is(err, ErrChatNotConfigured) {
		t.Fatalf("reply without key = %v, want ErrChatNotConfigured", err)
	}
}

func TestChatServiceRejectsEmptyMessage(t *testing.T) {
	chat, _ := setupChatServiceTest(t)

	_, err := chat.Reply(context.Background(), "   ")
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("reply with blank message = %v, want a validation error", err)
	}
}

func TestChatServiceReply(t *testing.T) {
	chat, settings := setupChatServiceTest(t)

	var gotAuth string
	var gotPayload chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Hi there!"}},
			},
		})
	}))
	defer server.Close()

	err := settings.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeyOpenAIAPIKey: json.RawMessage(`"sk-test"`),
		db.SettingKeySiteName:     json.RawMessage(`"Jane's Site"`),
	})
	if err != nil {
		t.Fatalf("store settings: %v", err)
	}
	chat.SetBaseURL(server.URL)

	reply, err := chat.Reply(context.Background(), "who are you?")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != "Hi there!" {
		t.Errorf("reply = %q", reply)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if len(gotPayload.Messages) != 2 || gotPayload.Messages[0].Role != "system" {
		t.Fatalf("payload messages = %+v, want system then user", gotPayload.Messages)
	}
	if gotPayload.Messages[1].Content != "who are you?" {
		t.Errorf("user message = %q", gotPayload.Messages[1].Content)
	}
}

func TestChatServiceSystemPromptOverride(t *testing.T) {
	chat, settings := setupChatServiceTest(t)

	err := settings.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeyOpenAIAPIKey:     json.RawMessage(`"sk-test"`),
		db.SettingKeyChatSystemPrompt: json.RawMessage(`"You are a pirate."`),
	})
	if err != nil {
		t.Fatalf("store settings: %v", err)
	}

	var gotPayload chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPayload)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Arr."}},
			},
		})
	}))
	defer server.Close()
	chat.SetBaseURL(server.URL)

	if _, err := chat.Reply(context.Background(), "hello"); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if gotPayload.Messages[0].Content != "You are a pirate." {
		t.Errorf("system prompt = %q, want the stored override", gotPayload.Messages[0].Content)
	}
}

func TestChatServiceProviderError(t *testing.T) {
	chat, settings := setupChatServiceTest(t)

	err := settings.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeyOpenAIAPIKey: json.RawMessage(`"sk-test"`),
	})
	if err != nil {
		t.Fatalf("store settings: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer server.Close()
	chat.SetBaseURL(server.URL)

	_, err = chat.Reply(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error from the provider")
	}
}
