package gemini

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	generateResp *genai.GenerateContentResponse
	generateErr  error
	embedResp    *genai.EmbedContentResponse
	embedErr     error

	lastModel    string
	lastConfig   *genai.GenerateContentConfig
	lastContents []*genai.Content
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.lastModel = model
	f.lastConfig = config
	f.lastContents = contents
	return f.generateResp, f.generateErr
}

func (f *fakeModels) EmbedContent(_ context.Context, model string, contents []*genai.Content, _ *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error) {
	f.lastModel = model
	f.lastContents = contents
	return f.embedResp, f.embedErr
}

func TestCompleteUsesDeterministicDecoding(t *testing.T) {
	fake := &fakeModels{
		generateResp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: `{"ok": true}`}}},
			}},
		},
	}

	client := &Client{models: fake, model: "gemini-2.5-flash", logger: zap.NewNop()}

	output, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output != `{"ok": true}` {
		t.Fatalf("unexpected output: %q", output)
	}

	if fake.lastModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", fake.lastModel)
	}

	if fake.lastConfig == nil || fake.lastConfig.Temperature == nil || *fake.lastConfig.Temperature != 0 {
		t.Fatalf("expected temperature 0, got %+v", fake.lastConfig)
	}

	if fake.lastConfig.MaxOutputTokens != maxOutputTokens {
		t.Fatalf("unexpected max output tokens: %d", fake.lastConfig.MaxOutputTokens)
	}
}

func TestCompleteJoinsCandidateParts(t *testing.T) {
	fake := &fakeModels{
		generateResp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: " first "}, {Text: ""}, {Text: "second"}}},
			}},
		},
	}

	client := &Client{models: fake, model: "m", logger: zap.NewNop()}

	output, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output != "first\nsecond" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestCompleteEmptyResponse(t *testing.T) {
	fake := &fakeModels{generateResp: &genai.GenerateContentResponse{}}
	client := &Client{models: fake, model: "m", logger: zap.NewNop()}

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestCompleteRejectsEmptyPrompt(t *testing.T) {
	client := &Client{models: &fakeModels{}, model: "m", logger: zap.NewNop()}

	if _, err := client.Complete(context.Background(), "  \n"); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestEmbedConvertsVector(t *testing.T) {
	fake := &fakeModels{
		embedResp: &genai.EmbedContentResponse{
			Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.5, -0.25}}},
		},
	}

	client := &Client{models: fake, embeddingModel: "gemini-embedding-001", logger: zap.NewNop()}

	vector, err := client.Embed(context.Background(), "some text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vector) != 2 || vector[0] != 0.5 || vector[1] != -0.25 {
		t.Fatalf("unexpected vector: %v", vector)
	}

	if fake.lastModel != "gemini-embedding-001" {
		t.Fatalf("unexpected model: %q", fake.lastModel)
	}
}

func TestEmbedPropagatesTransportError(t *testing.T) {
	fake := &fakeModels{embedErr: errors.New("boom")}
	client := &Client{models: fake, embeddingModel: "m", logger: zap.NewNop()}

	if _, err := client.Embed(context.Background(), "text"); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}
