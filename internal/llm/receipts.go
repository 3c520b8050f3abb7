package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"aero-lite/internal/custom_err"
)

const receiptSystemPrompt = "You are a STRICT receipt and fee extraction engine. " +
	"You ONLY read what is printed in the screenshot. Do NOT guess or infer hidden FX markups. " +
	"Return JSON only, no markdown. Use this exact schema:\n\n" +
	"{\n" +
	"  \"amount_paid_usd\": number,\n" +
	"  \"explicit_fee_usd\": number,\n" +
	"  \"explicit_fee_percent\": number,\n" +
	"  \"fee_lines\": [ { \"label\": string, \"amount_usd\": number } ],\n" +
	"  \"notes\": string\n" +
	"}\n\n" +
	"If you see no fees at all, set explicit_fee_usd = 0 and explicit_fee_percent = 0 " +
	"and explain that no fee lines were visible."

// ExtractReceipt отправляет изображение чека vision-модели и возвращает сырой JSON-объект
func (c *Client) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (map[string]any, error) {
	const op = "llm.ExtractReceipt"

	if !c.enabled {
		return nil, fmt.Errorf("%s: %w", op, custom_err.ErrExtractorUnavailable)
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)

	content, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model: c.visionModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: receiptSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Extract the amounts and fees from this crypto on-ramp / ATM / receipt image. Remember: JSON only.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, custom_err.ErrExtractorUnavailable, err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil || parsed == nil {
		c.log.Error("OpenAI JSON parse error", slog.String("op", op), slog.String("content", truncate(content, 512)))
		return nil, fmt.Errorf("%s: %w", op, custom_err.ErrReceiptParseFailure)
	}
	return parsed, nil
}
