// Package imagegen реализует клиент внешнего сервиса генерации изображений
// (OpenAI-совместимый POST /images/generations) и заглушку для локального запуска.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrGeneration возвращается, когда сервис не смог вернуть изображение.
var ErrGeneration = errors.New("image generation failed")

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Client — HTTP-клиент сервиса генерации изображений.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	size       string
	httpClient *http.Client
}

// NewClient создаёт клиент. apiURL задаёт базовый адрес API, например https://api.openai.com/v1.
func NewClient(apiURL, apiKey, model, size string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
		model:      model,
		size:       size,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Generate отправляет prompt и возвращает URL первого изображения.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	const op = "imagegen.Client.Generate"

	req, err := c.newRequest(ctx, http.MethodPost, "/images/generations", generateRequest{
		Model:  c.model,
		Prompt: prompt,
		N:      1,
		Size:   c.size,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%s: %w: unexpected status %s", op, ErrGeneration, resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrGeneration, err)
	}
	if len(out.Data) == 0 || out.Data[0].URL == "" {
		return "", fmt.Errorf("%s: %w: empty response", op, ErrGeneration)
	}
	return out.Data[0].URL, nil
}
