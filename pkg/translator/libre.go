package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	pkgLog "campus-chatbot/pkg/log"
)

type libreClient struct {
	http   *resty.Client
	apiKey string
	l      pkgLog.Logger
}

// NewLibre creates a Translator backed by a LibreTranslate server.
func NewLibre(cfg Config, l pkgLog.Logger) Translator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &libreClient{http: client, apiKey: cfg.APIKey, l: l}
}

// DetectLanguage maps the service's guess onto en/sn. Any other answer, or a
// failed call, falls back to the Shona indicator words and then English.
func (c *libreClient) DetectLanguage(ctx context.Context, text string) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return LangEnglish
	}

	lang, err := c.detect(ctx, cleaned)
	if err != nil {
		c.l.Warnf(ctx, "translator.DetectLanguage: %v", err)
	}
	switch lang {
	case LangEnglish, LangShona:
		return lang
	}
	if IsLikelyShona(cleaned) {
		return LangShona
	}
	return LangEnglish
}

func (c *libreClient) detect(ctx context.Context, text string) (string, error) {
	var out []detection
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(detectRequest{Q: text, APIKey: c.apiKey}).
		SetResult(&out).
		Post("/detect")
	if err != nil {
		return "", fmt.Errorf("detect: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("detect: status %d", resp.StatusCode())
	}
	if len(out) == 0 {
		return "", nil
	}
	return out[0].Language, nil
}

// Translate returns text in target. It is a no-op when text already is in
// target and returns text unchanged when the service fails.
func (c *libreClient) Translate(ctx context.Context, text, target string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	source := c.DetectLanguage(ctx, text)
	if source == target {
		return text
	}

	var out translateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(translateRequest{Q: text, Source: source, Target: target, Format: "text", APIKey: c.apiKey}).
		SetResult(&out).
		Post("/translate")
	if err != nil {
		c.l.Errorf(ctx, "translator.Translate: %v", err)
		return text
	}
	if resp.IsError() || out.TranslatedText == "" {
		c.l.Errorf(ctx, "translator.Translate: status %d", resp.StatusCode())
		return text
	}
	return out.TranslatedText
}
