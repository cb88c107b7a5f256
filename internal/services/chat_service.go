package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mahir-soa/FYP/domain"
)

// ChatCompleter is the slice of the OpenAI client the chat service needs,
// kept narrow so tests can stub the upstream API.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatServiceImpl implements domain.ChatService by proxying to a chat
// completion API, optionally priming the model with the user's expense data.
type ChatServiceImpl struct {
	client      ChatCompleter
	model       string
	expenseRepo domain.ExpenseRepository
}

// NewChatService creates a new chat service
func NewChatService(client ChatCompleter, model string, expenseRepo domain.ExpenseRepository) domain.ChatService {
	return &ChatServiceImpl{
		client:      client,
		model:       model,
		expenseRepo: expenseRepo,
	}
}

// NewOpenAIClient builds the real upstream client
func NewOpenAIClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}

// Chat implements domain.ChatService
func (s *ChatServiceImpl) Chat(ctx context.Context, message string, includeExpenseContext bool) (string, error) {
	systemPrompt := s.buildSystemPrompt(ctx, includeExpenseContext)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "Sorry, I couldn't process your request.", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *ChatServiceImpl) buildSystemPrompt(ctx context.Context, includeExpenseContext bool) string {
	var prompt strings.Builder
	prompt.WriteString("You are a helpful financial assistant for a personal expense tracking app. ")
	prompt.WriteString("You help users understand their spending habits, provide budgeting advice, ")
	prompt.WriteString("and offer personalized financial insights. Be friendly, concise, and supportive. ")
	prompt.WriteString("When discussing finances, be encouraging rather than judgmental. ")

	if includeExpenseContext {
		expenses, err := s.expenseRepo.FindAll(ctx)
		if err == nil && len(expenses) > 0 {
			prompt.WriteString("\n\nHere is the user's expense data for context:\n")
			prompt.WriteString(formatExpensesForContext(expenses))
			prompt.WriteString("\n\nUse this data to provide personalized insights when relevant. ")
			prompt.WriteString("If the user asks about their spending, reference specific data points.")
		}
	}

	return prompt.String()
}

// formatExpensesForContext summarises expenses into a compact prompt block:
// overall total, per-category totals, and the ten most recent transactions.
func formatExpensesForContext(expenses []domain.Expense) string {
	var sb strings.Builder

	var total float64
	byCategory := make(map[string][]domain.Expense)
	for _, e := range expenses {
		total += e.Amount
		category := e.Category
		if category == "" {
			category = "Other"
		}
		byCategory[category] = append(byCategory[category], e)
	}

	sb.WriteString(fmt.Sprintf("Total expenses: £%.2f across %d transactions\n", total, len(expenses)))

	sb.WriteString("Breakdown by category:\n")
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		var catTotal float64
		for _, e := range byCategory[category] {
			catTotal += e.Amount
		}
		sb.WriteString(fmt.Sprintf("- %s: £%.2f (%d transactions)\n", category, catTotal, len(byCategory[category])))
	}

	recent := make([]domain.Expense, len(expenses))
	copy(recent, expenses)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}

	sb.WriteString("\nRecent transactions:\n")
	for _, e := range recent {
		line := fmt.Sprintf("- %s: £%.2f (%s)", e.Date, e.Amount, e.Category)
		if e.Description != "" {
			line += " - " + e.Description
		}
		sb.WriteString(line + "\n")
	}

	return sb.String()
}
