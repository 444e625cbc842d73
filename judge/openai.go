package judge

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	openai "github.com/sashabaranov/go-openai"

	"github.com/skillsenselab/skillgraph/errors"
	"github.com/skillsenselab/skillgraph/logger"
	"github.com/skillsenselab/skillgraph/util"
)

const scoreSystemPrompt = `You are an expert judge for evaluating answers to questions.
You will evaluate the answers to interview questions in Java domain.

Score the candidate's answer from 0 to 4.
4 = Completely correct, precise, and clear.
3 = Mostly correct, minor omission.
2 = Partially correct, but missing important details.
1 = Mostly incorrect, small parts may be true.
0 = Completely incorrect or irrelevant.

Your answer should be only an integer score from 0 to 4.

Here is the question, and the answer to it from the user:`

const summarySystemPrompt = `You are an interview feedback engine. The interview overall covers the knowledge of Java. It goes through the sub-topics and specific skills.

Your task is to generate a concise, professional interview summary based strictly on the provided data.
Do not reference the interview questions verbatim unless needed for clarity.
You are addressing the user directly.

Focus on:
- overall assessment,
- knowledge gaps,
- actionable recommendations.

If there are no knowledge gaps detected, don't talk about it. And don't recommend to learn something new. Give only recommendations that will help cover the knowledge gaps.

The sub-topics can be too atomic. You should now focus on a high-level perspective, which makes sense.

You will be given a list of: sub-topics, specific topics, questions given to the user on that topic, and a score of the user's answer from 0 to 4, calculated by the following rules:
4 = Completely correct, precise, and clear.
3 = Mostly correct, minor omission.
2 = Partially correct, but missing important details.
1 = Mostly incorrect, small parts may be true.
0 = Completely incorrect or irrelevant.

Here are the user's results:`

// OpenAI is an LLM-backed judge using the chat completions API.
type OpenAI struct {
	client *openai.Client
	cfg    Config
	log    *logger.Logger
}

// New builds a judge from config: the OpenAI-backed one when an API key is
// set, the dummy otherwise.
func New(cfg Config, log *logger.Logger) Judge {
	cfg.ApplyDefaults()
	if cfg.APIKey == "" {
		log.Warn("No judge API key configured, falling back to dummy scoring")
		return Dummy{}
	}
	log.Info("Judge configured", logger.Fields(
		"model", cfg.Model,
		"api_key", util.MaskSecret(cfg.APIKey, 6),
	))
	return NewOpenAI(cfg, log)
}

// NewOpenAI creates an OpenAI-backed judge. When BaseURL is set the client
// speaks to an Azure OpenAI deployment.
func NewOpenAI(cfg Config, log *logger.Logger) *OpenAI {
	cfg.ApplyDefaults()

	var clientCfg openai.ClientConfig
	if cfg.BaseURL != "" {
		clientCfg = openai.DefaultAzureConfig(cfg.APIKey, cfg.BaseURL)
	} else {
		clientCfg = openai.DefaultConfig(cfg.APIKey)
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    log.WithComponent("judge"),
	}
}

// Available reports whether real scoring is configured.
func (j *OpenAI) Available() bool { return true }

// Score rates an answer on the 0..4 scale by asking the model for a single
// integer verdict.
func (j *OpenAI) Score(ctx context.Context, question, answer string) (int, error) {
	prompt := fmt.Sprintf("Question: %s\nAnswer: %s", question, answer)

	content, err := j.complete(ctx, scoreSystemPrompt, prompt)
	if err != nil {
		return 0, err
	}

	score, err := parseScore(content)
	if err != nil {
		j.log.Warn("Judge returned an unparseable verdict", map[string]interface{}{
			"content": content,
		})
		return 0, errors.ExternalServiceError("judge", err)
	}
	return score, nil
}

// Summarize turns a finished interview transcript into feedback text.
func (j *OpenAI) Summarize(ctx context.Context, transcript string) (string, error) {
	return j.complete(ctx, summarySystemPrompt, transcript)
}

func (j *OpenAI) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       j.cfg.Model,
		Temperature: effectiveTemperature(j.cfg.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", errors.ExternalServiceError("judge", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ExternalServiceError("judge", fmt.Errorf("no choices in response"))
	}
	return resp.Choices[0].Message.Content, nil
}

// effectiveTemperature keeps a configured temperature of 0 on the wire.
// The request struct marshals temperature with omitempty, so a plain 0 is
// dropped and the API falls back to its default of 1. The smallest positive
// float32 survives serialization and samples like 0.
func effectiveTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

// parseScore extracts the leading integer verdict from model output.
func parseScore(content string) (int, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0, fmt.Errorf("empty verdict")
	}
	end := 0
	for end < len(trimmed) && unicode.IsDigit(rune(trimmed[end])) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("verdict %q does not start with a digit", trimmed)
	}
	score, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0, err
	}
	if score < 0 || score > MaxScore {
		return 0, fmt.Errorf("verdict %d outside the 0..%d scale", score, MaxScore)
	}
	return score, nil
}
