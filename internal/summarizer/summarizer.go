package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
	openai "github.com/sashabaranov/go-openai"

	"trendsight/internal/clients"
	"trendsight/internal/models"
)

const summaryPrompt = `Analyze the following content and extract:
1. Top trends or topics
2. Summary of each trend (1-2 lines)
3. Any competitor mentions
4. Overall brand perception

Content:
%s

Return in bullet-point format.`

const questionPrompt = `You are a business trend analyst. Answer the question below using only the provided content as context.

Question:
%s

Content:
%s

Give a direct answer first, then supporting insights as bullet points.`

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// SummarizeTrends asks the LLM for a trend digest of the document. The
// response is returned both as markdown and flattened to plain text.
func SummarizeTrends(ctx context.Context, doc models.NormalizedDocument) (models.TrendSummary, error) {
	if doc.Text == "" {
		return models.TrendSummary{}, errors.New("[Summarizer] nothing to summarize")
	}

	client := clients.GetOpenAIClient()

	resp, err := client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       client.Model,
		MaxTokens:   1000,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(summaryPrompt, doc.Text),
			},
		},
	})
	if err != nil {
		slog.Error("[Summarizer] Chat completion failed",
			slog.String("error", err.Error()))
		return models.TrendSummary{}, fmt.Errorf("[Summarizer] chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return models.TrendSummary{}, errors.New("[Summarizer] empty completion response")
	}

	markdown := resp.Choices[0].Message.Content

	return models.TrendSummary{
		Markdown:  markdown,
		PlainText: markdownToText(markdown),
	}, nil
}

// AnswerQuestion asks the LLM a user question about the document. An empty
// question is rejected before any tokens are spent.
func AnswerQuestion(ctx context.Context, doc models.NormalizedDocument, question string) (models.QuestionAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.QuestionAnswer{}, errors.New("[Summarizer] question must not be empty")
	}
	if doc.Text == "" {
		return models.QuestionAnswer{}, errors.New("[Summarizer] nothing to answer against")
	}

	client := clients.GetOpenAIClient()

	resp, err := client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       client.Model,
		MaxTokens:   1000,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(questionPrompt, question, doc.Text),
			},
		},
	})
	if err != nil {
		slog.Error("[Summarizer] Chat completion failed",
			slog.String("error", err.Error()))
		return models.QuestionAnswer{}, fmt.Errorf("[Summarizer] chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return models.QuestionAnswer{}, errors.New("[Summarizer] empty completion response")
	}

	markdown := resp.Choices[0].Message.Content

	return models.QuestionAnswer{
		Question:  question,
		Markdown:  markdown,
		PlainText: markdownToText(markdown),
	}, nil
}

func markdownToText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := tagPattern.ReplaceAllString(string(rendered), " ")
	return strings.Join(strings.Fields(stripped), " ")
}
