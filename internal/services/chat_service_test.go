package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mahir-soa/FYP/domain"
	"github.com/mahir-soa/FYP/internal/mocks"
)

type stubCompleter struct {
	lastRequest openai.ChatCompletionRequest
	response    openai.ChatCompletionResponse
	err         error
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastRequest = req
	return s.response, s.err
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestChatServiceImpl_Chat(t *testing.T) {
	stub := &stubCompleter{response: completionWith("Spend less on coffee.")}
	svc := NewChatService(stub, "gpt-4o-mini", mocks.NewMockExpenseRepository())

	reply, err := svc.Chat(context.Background(), "How do I save money?", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Spend less on coffee." {
		t.Errorf("unexpected reply %q", reply)
	}

	if stub.lastRequest.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", stub.lastRequest.Model)
	}
	if len(stub.lastRequest.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(stub.lastRequest.Messages))
	}
	if stub.lastRequest.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message must be the system prompt")
	}
	if stub.lastRequest.Messages[1].Content != "How do I save money?" {
		t.Errorf("user message not forwarded: %q", stub.lastRequest.Messages[1].Content)
	}
}

func TestChatServiceImpl_Chat_IncludesExpenseContext(t *testing.T) {
	expenseRepo := mocks.NewMockExpenseRepository()
	expenseRepo.FindAllFunc = func(ctx context.Context) ([]domain.Expense, error) {
		return []domain.Expense{
			{ID: 1, Date: "2025-05-01", Description: "Lunch", Amount: 12.50, Category: "Food"},
			{ID: 2, Date: "2025-05-02", Description: "Tube", Amount: 2.80, Category: "Transport"},
		}, nil
	}

	stub := &stubCompleter{response: completionWith("ok")}
	svc := NewChatService(stub, "gpt-4o-mini", expenseRepo)

	if _, err := svc.Chat(context.Background(), "What did I spend?", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	systemPrompt := stub.lastRequest.Messages[0].Content
	for _, want := range []string{
		"Total expenses: £15.30 across 2 transactions",
		"- Food: £12.50 (1 transactions)",
		"- Transport: £2.80 (1 transactions)",
		"Lunch",
	} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestChatServiceImpl_Chat_ContextOmittedWhenDisabled(t *testing.T) {
	expenseRepo := mocks.NewMockExpenseRepository()
	expenseRepo.FindAllFunc = func(ctx context.Context) ([]domain.Expense, error) {
		t.Error("expense data must not be loaded when context is disabled")
		return nil, nil
	}

	stub := &stubCompleter{response: completionWith("ok")}
	svc := NewChatService(stub, "gpt-4o-mini", expenseRepo)

	if _, err := svc.Chat(context.Background(), "hi", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stub.lastRequest.Messages[0].Content, "expense data") {
		t.Error("system prompt should not mention expense data")
	}
}

func TestChatServiceImpl_Chat_EmptyChoices(t *testing.T) {
	stub := &stubCompleter{}
	svc := NewChatService(stub, "gpt-4o-mini", mocks.NewMockExpenseRepository())

	reply, err := svc.Chat(context.Background(), "hello", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Sorry, I couldn't process your request." {
		t.Errorf("unexpected fallback reply %q", reply)
	}
}

func TestChatServiceImpl_Chat_UpstreamError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("rate limited")}
	svc := NewChatService(stub, "gpt-4o-mini", mocks.NewMockExpenseRepository())

	_, err := svc.Chat(context.Background(), "hello", false)
	if err == nil {
		t.Fatal("expected the upstream error to propagate")
	}
}

func TestFormatExpensesForContext_RecentCap(t *testing.T) {
	expenses := make([]domain.Expense, 0, 12)
	for day := 1; day <= 12; day++ {
		expenses = append(expenses, domain.Expense{
			ID:       uint(day),
			Date:     fmt.Sprintf("2025-05-%02d", day),
			Amount:   1,
			Category: "Food",
		})
	}

	out := formatExpensesForContext(expenses)

	if !strings.Contains(out, "2025-05-12") {
		t.Error("most recent expense missing")
	}
	if strings.Contains(out, "2025-05-02") || strings.Contains(out, "2025-05-01") {
		t.Error("older expenses beyond the ten most recent must be dropped")
	}
}
