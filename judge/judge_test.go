package judge

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/skillsenselab/skillgraph/logger"
)

// --- Dummy tests ---

func TestDummy_Score(t *testing.T) {
	score, err := Dummy{}.Score(context.Background(), "Q", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != DummyScore {
		t.Fatalf("expected dummy score %d, got %d", DummyScore, score)
	}
}

func TestDummy_Summarize(t *testing.T) {
	summary, err := Dummy{}.Summarize(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "API key is not set, can't provide summary" {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestNew_NoKeySelectsDummy(t *testing.T) {
	j := New(Config{}, logger.NewDefault("test"))
	if j.Available() {
		t.Fatal("expected unavailable judge without API key")
	}
	if _, ok := j.(Dummy); !ok {
		t.Fatalf("expected Dummy, got %T", j)
	}
}

func TestNew_KeySelectsOpenAI(t *testing.T) {
	j := New(Config{APIKey: "sk-test"}, logger.NewDefault("test"))
	if !j.Available() {
		t.Fatal("expected available judge with API key")
	}
	if _, ok := j.(*OpenAI); !ok {
		t.Fatalf("expected OpenAI, got %T", j)
	}
}

// --- Config tests ---

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %q", cfg.Model)
	}

	cfg = Config{Model: "gpt-4o"}
	cfg.ApplyDefaults()
	if cfg.Model != "gpt-4o" {
		t.Fatalf("default overwrote explicit model: %q", cfg.Model)
	}
}

func TestConfig_Validate(t *testing.T) {
	good := Config{Temperature: 0}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Config{Temperature: 3}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}

// --- temperature tests ---

func TestEffectiveTemperature_ZeroSurvivesSerialization(t *testing.T) {
	// The request struct marshals temperature with omitempty, so a plain 0
	// would be dropped and the API would fall back to its default.
	req := openai.ChatCompletionRequest{
		Model:       "gpt-4o-mini",
		Temperature: effectiveTemperature(0),
	}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"temperature"`) {
		t.Fatalf("temperature missing from marshalled request: %s", data)
	}
}

func TestEffectiveTemperature_NonZeroUnchanged(t *testing.T) {
	if got := effectiveTemperature(0.7); got != 0.7 {
		t.Fatalf("expected 0.7 passed through, got %g", got)
	}
}

// --- parseScore tests ---

func TestParseScore(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 4 ", 4, false},
		{"0", 0, false},
		{"2. The answer was partial.", 2, false},
		{"", 0, true},
		{"five", 0, true},
		{"9", 0, true},
		{"-1", 0, true},
	}
	for _, tt := range tests {
		got, err := parseScore(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseScore(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseScore(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseScore(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
