package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendMessage(ctx context.Context, message string) error
	SendMessageWithImage(ctx context.Context, message, image string) error
}

var Instance Provider

func NewHandler(webhookURL string) {
	Instance = impl{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type impl struct {
	webhookURL string
	httpClient *http.Client
}

type webhookPayload struct {
	Text        string `json:"text"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

func (i impl) SendMessage(ctx context.Context, message string) error {
	return i.post(ctx, webhookPayload{Text: message})
}

// SendMessageWithImage delivers the message first, then a second call with
// the base64 image. The image is decoded from a data URI or fetched when an
// HTTP URL is given.
func (i impl) SendMessageWithImage(ctx context.Context, message, image string) error {
	if err := i.post(ctx, webhookPayload{Text: message}); err != nil {
		return err
	}
	encoded, err := i.resolveImage(ctx, image)
	if err != nil {
		return err
	}
	return i.post(ctx, webhookPayload{Text: "Attached proof", ImageBase64: encoded})
}

func (i impl) post(ctx context.Context, payload webhookPayload) error {
	if i.webhookURL == "" {
		log.Warn("chat webhook url is not configured, message not delivered")
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode webhook payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.webhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := i.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "webhook call failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.Errorf("webhook answered with status %v", resp.StatusCode)
	}
	return nil
}

func (i impl) resolveImage(ctx context.Context, image string) (string, error) {
	if strings.HasPrefix(image, "data:") {
		parts := strings.SplitN(image, ",", 2)
		if len(parts) != 2 {
			return "", errors.New("malformed data URI")
		}
		return parts[1], nil
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, image, nil)
		if err != nil {
			return "", errors.Wrap(err, "failed to build image request")
		}
		resp, err := i.httpClient.Do(req)
		if err != nil {
			return "", errors.Wrap(err, "failed to fetch image")
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", errors.Wrap(err, "failed to read image body")
		}
		return base64.StdEncoding.EncodeToString(data), nil
	}
	// assume raw base64
	return image, nil
}
