// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

// Package enrich calls a hosted text-generation API (OpenAI-style chat
// completions) to produce vocabulary enrichment payloads: translations,
// grammar tables, example sentences and the other optional fields a user
// can request for an entry.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

const completionsPath = "/v1/chat/completions"

// markdownFence strips a ```json ... ``` (or bare ```) wrapper some models
// put around their output despite being told not to.
var markdownFence = regexp.MustCompile("(?s)^\\s*```(?:json)?\\s*(.*?)\\s*```\\s*$")

// Generator calls the configured chat-completions endpoint and turns the
// model's answer into a validated JSON enrichment payload.
//
// One Generator is shared by all requests; the underlying resty client
// carries the base URL, auth token and per-call timeout from configuration.
type Generator struct {
	client *utils.HTTPClient
	cfg    config.Enrich
	logger *logger.Logger
}

// NewGenerator constructs a [Generator] from the enrichment configuration.
func NewGenerator(cfg config.Enrich, log *logger.Logger) *Generator {
	client := utils.NewHTTPClient()
	client.SetBaseURL(cfg.BaseURL)
	client.SetAuthToken(cfg.APIKey)
	client.SetTimeout(cfg.Timeout)

	log.Debug().Str("model", cfg.Model).Msg("creating enrichment generator")

	return &Generator{
		client: client,
		cfg:    cfg,
		logger: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate asks the model for the fields selected in req.Options and
// returns the payload as raw JSON, ready to be stored or resolved.
//
// Error handling:
//   - transport failure, non-2xx status, empty or non-JSON output →
//     [ErrGeneration];
//   - the model's {"word_recognized": false} answer → [ErrWordNotRecognized].
func (g *Generator) Generate(ctx context.Context, req models.EnrichRequest) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	body := chatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	}

	var completion chatCompletionResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&completion).
		Post(completionsPath)
	if err != nil {
		log.Err(err).Str("func", "*Generator.Generate").Msg("error calling generation api")
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*Generator.Generate").Int("status", resp.StatusCode()).Msg("generation api returned error status")
		return nil, fmt.Errorf("%w: unexpected status %d", ErrGeneration, resp.StatusCode())
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrGeneration)
	}

	payload, err := parsePayload(completion.Choices[0].Message.Content)
	if err != nil {
		log.Err(err).Str("func", "*Generator.Generate").Msg("error parsing model output")
		return nil, err
	}

	return payload, nil
}

// parsePayload validates one model answer: fences are stripped, the content
// must be a JSON object, and the word_recognized refusal convention is
// translated into [ErrWordNotRecognized].
func parsePayload(content string) (json.RawMessage, error) {
	if m := markdownFence.FindStringSubmatch(content); m != nil {
		content = m[1]
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &object); err != nil {
		return nil, fmt.Errorf("%w: model output is not a JSON object: %w", ErrGeneration, err)
	}

	if raw, ok := object["word_recognized"]; ok {
		var recognized bool
		if err := json.Unmarshal(raw, &recognized); err == nil && !recognized {
			return nil, ErrWordNotRecognized
		}
	}

	return json.RawMessage(content), nil
}
