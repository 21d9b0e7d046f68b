package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Bot is a send-only Telegram Bot API client used to push alerts to a chat.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a Bot for the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the Bot API base URL. Used by tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SendMessage sends a plain text message to a chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with an optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	body, err := json.Marshal(SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("failed to decode sendMessage response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram sendMessage failed: %s", apiResp.Description)
	}
	return nil
}
