package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"food-orders/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram rejects longer message texts.
const maxMessageLen = 4096

// ReportSender collects report lines and sends them to a single chat on Flush.
// It only sends; it never reads updates.
type ReportSender struct {
	api    *tgbotapi.BotAPI
	chatID int64
	buf    strings.Builder
}

func NewReportSender(cfg config.TelegramConfig) (*ReportSender, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	return newReportSender(api, cfg.ReportChatID), nil
}

func newReportSender(api *tgbotapi.BotAPI, chatID int64) *ReportSender {
	return &ReportSender{api: api, chatID: chatID}
}

func (s *ReportSender) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush sends the buffered text, split into as few messages as possible.
// The buffer is cleared even when sending fails.
func (s *ReportSender) Flush() error {
	text := s.buf.String()
	s.buf.Reset()
	for i, chunk := range splitMessage(text, maxMessageLen) {
		if _, err := s.api.Send(tgbotapi.NewMessage(s.chatID, chunk)); err != nil {
			return fmt.Errorf("send report part %d to chat %d: %w", i+1, s.chatID, err)
		}
	}
	return nil
}

// splitMessage cuts text on line boundaries into chunks of at most limit bytes.
// A single line longer than limit is cut mid-line, on a rune boundary.
func splitMessage(text string, limit int) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	var chunks []string
	var cur strings.Builder
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
				cur.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(line) > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
