package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"aero-lite/internal/custom_err"
	"aero-lite/internal/routing"
)

const routingSystemPrompt = "You are Loadit's AERO routing planner. " +
	"Given a cross-border transfer, you design 3–4 possible payment routes. " +
	"You know about: traditional bank wires, card-based remittance services, " +
	"centralized exchanges, on-chain crypto transfers, stablecoins, peer-to-peer/OTC desks, " +
	"and a special 'Loadit hybrid' rail that turns cash/card into crypto and settles on-chain.\n\n" +
	"You DO NOT use live FX or live gas data. You just use typical patterns.\n\n" +
	"Return STRICT JSON only with this schema:\n" +
	"{\n" +
	"  \"routes\": [\n" +
	"    {\n" +
	"      \"name\": string,\n" +
	"      \"type\": \"bank\" | \"remittance\" | \"exchange\" | \"loadit-hybrid\" | \"p2p\" | \"other\",\n" +
	"      \"isLoadit\": boolean,\n" +
	"      \"isBest\": boolean,\n" +
	"      \"feeUsd\": number,\n" +
	"      \"feePercent\": number,\n" +
	"      \"speed\": string,\n" +
	"      \"notes\": string\n" +
	"    }\n" +
	"  ],\n" +
	"  \"summary\": string\n" +
	"}\n\n" +
	"Rules:\n" +
	"- feePercent must be between 0 and 25.\n" +
	"- feeUsd must be >= 0.\n" +
	"- Typical speeds: bank wires 2–5 business days, card-based remittance minutes to a few hours, " +
	"centralized exchange transfers minutes to a few hours.\n" +
	"- Mark exactly ONE route as isBest=true (the one you'd recommend).\n" +
	"- Base your numbers on realistic but rough averages for today's remittance/crypto landscape, NOT on live data."

// ProposeRoutes просит модель предложить маршруты для перевода
func (c *Client) ProposeRoutes(ctx context.Context, req routing.TransferRequest) (routing.Proposals, error) {
	const op = "llm.ProposeRoutes"

	if !c.enabled {
		return routing.Proposals{}, fmt.Errorf("%s: %w", op, custom_err.ErrProposalSourceDisabled)
	}

	content, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model:       c.routingModel,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: routingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: routingUserPrompt(req)},
		},
	})
	if err != nil {
		return routing.Proposals{}, fmt.Errorf("%s: %w: %w", op, custom_err.ErrProposalSourceUnavailable, err)
	}

	proposals, err := ParseRouteProposals(content)
	if err != nil {
		c.log.Error("AERO JSON parse error", slog.String("op", op), slog.String("content", truncate(content, 512)))
		return routing.Proposals{}, fmt.Errorf("%s: %w", op, err)
	}
	return proposals, nil
}

func routingUserPrompt(req routing.TransferRequest) string {
	asset := req.AssetPreference
	if asset == "" {
		asset = "none"
	}
	return fmt.Sprintf(
		"User wants to send about $%.2f from %s to %s. Preferred asset (if any): %s. "+
			"Funding source: %s. Recipient type: %s. "+
			"Design 3–4 plausible routes with different rails and fee structures and follow the JSON schema exactly.",
		req.AmountUsd, req.Sender, req.Recipient, asset, req.FundingSource, req.RecipientType)
}

// ParseRouteProposals разбирает ответ модели. Пустой ответ считается пустым объектом.
// Невалидный JSON даёт ErrProposalParseFailure, поле routes не-массив даёт ноль предложений.
func ParseRouteProposals(content string) (routing.Proposals, error) {
	body := stripCodeFence(content)
	if body == "" {
		body = "{}"
	}

	var envelope struct {
		Routes  json.RawMessage `json:"routes"`
		Summary any             `json:"summary"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return routing.Proposals{}, fmt.Errorf("%w: %v", custom_err.ErrProposalParseFailure, err)
	}

	return routing.Proposals{
		Routes:  routing.DecodeProposals(envelope.Routes),
		Summary: routing.CoerceString(envelope.Summary),
		Usable:  true,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "…"
}
