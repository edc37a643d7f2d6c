package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

const telegramSendTimeout = 10 * time.Second

// TelegramNotifier pushes formatted messages to one or more chats via the
// Bot API. Chats are dispatched in parallel; one failing chat never blocks
// the others.
type TelegramNotifier struct {
	botToken string
	chatIDs  []string
	client   *fasthttp.Client
}

// NewTelegramNotifier returns nil when the bot token or chat list is not
// configured, which disables the channel.
func NewTelegramNotifier(botToken, chatIDs string) *TelegramNotifier {
	ids := SplitAndTrim(chatIDs)
	if botToken == "" || len(ids) == 0 {
		return nil
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatIDs:  ids,
		client:   &fasthttp.Client{},
	}
}

type telegramPayload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send delivers the message to every configured chat and reports the
// failed ones as a single error.
func (tn *TelegramNotifier) Send(text string) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)

	for _, chatID := range tn.chatIDs {
		wg.Add(1)
		go func(chatID string) {
			defer wg.Done()
			if err := tn.sendToChat(chatID, text); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("chat %s: %v", chatID, err))
				mu.Unlock()
			}
		}(chatID)
	}
	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("telegram delivery failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

func (tn *TelegramNotifier) sendToChat(chatID, text string) error {
	body, err := json.Marshal(telegramPayload{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", tn.botToken))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := tn.client.DoTimeout(req, resp, telegramSendTimeout); err != nil {
		return err
	}

	var result telegramResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("unexpected response (status %d)", resp.StatusCode())
	}
	if !result.OK {
		if result.Description != "" {
			return fmt.Errorf("telegram API error: %s", result.Description)
		}
		return fmt.Errorf("telegram API error: status %d", resp.StatusCode())
	}
	return nil
}
