// Package voice turns spoken descriptions of transactions and accounts into
// structured drafts using the Gemini API.
package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// Model is the Gemini model used for audio transcription and extraction.
const Model = "gemini-2.5-flash"

// TransactionDraft is the model's reading of a spoken transaction. Every
// field except Transcript is best-effort; callers validate before storing.
type TransactionDraft struct {
	Transcript  string  `json:"transcript"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
}

// AccountDraft is the model's reading of a spoken account description.
type AccountDraft struct {
	Transcript     string  `json:"transcript"`
	Name           string  `json:"name"`
	InitialBalance float64 `json:"initialBalance"`
	Type           string  `json:"type"`
}

// Parser extracts drafts from audio recordings.
type Parser struct {
	client *genai.Client
	model  string
}

// NewParser wraps an initialized Gemini client.
func NewParser(client *genai.Client) *Parser {
	return &Parser{client: client, model: Model}
}

// NewClient creates a Gemini client configured from the environment
// (GEMINI_API_KEY, or the Vertex AI variables).
func NewClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{})
}

// ParseTransaction transcribes the audio and extracts a transaction draft.
// Extraction failures degrade rather than abort: the returned draft always
// carries a transcript, and the error reports what went wrong on the way.
func (p *Parser) ParseTransaction(ctx context.Context, audio []byte, mimeType string) (TransactionDraft, error) {
	prompt := fmt.Sprintf(`Listen to this audio. The user is describing a financial transaction.

Tasks:
1. Transcribe the audio exactly.
2. Extract the transaction details.
3. Perform any math described (e.g., "spent 90 dollars split 3 ways" -> amount is 30).
4. Infer the best category from this list: %s. If unsure, use 'Other'.
5. Determine if it is an 'income' (received money) or 'expense' (spent money). Default to 'expense'.

Return JSON only.`, strings.Join(finance.Categories, ", "))

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"transcript":  {Type: genai.TypeString},
			"amount":      {Type: genai.TypeNumber},
			"category":    {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"type":        {Type: genai.TypeString, Enum: []string{"income", "expense", "transfer"}},
		},
	}

	var draft TransactionDraft
	if err := p.generate(ctx, audio, mimeType, prompt, schema, &draft); err != nil {
		return TransactionDraft{Transcript: "Error processing audio."}, err
	}
	return draft, nil
}

// ParseAccount transcribes the audio and extracts an account draft.
func (p *Parser) ParseAccount(ctx context.Context, audio []byte, mimeType string) (AccountDraft, error) {
	types := make([]string, len(finance.AccountTypes))
	for i, t := range finance.AccountTypes {
		types[i] = string(t)
	}
	prompt := fmt.Sprintf(`Listen to this audio. The user is describing a financial account to add.

Tasks:
1. Transcribe the audio.
2. Extract the Account Name (e.g., "Chase Sapphire", "Emergency Fund").
3. Extract the Initial Balance/Amount.
4. Infer the Account Type from this list: %s.
   - "Bank", "Checking" -> Checking
   - "Savings" -> Savings
   - "Card", "Visa", "Amex" -> Credit Card
   - "Loan", "Mortgage" -> Loan
   - "Stocks", "401k" -> Investment
   - "Wallet", "Pocket" -> Cash

Return JSON only.`, strings.Join(types, ", "))

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"transcript":     {Type: genai.TypeString},
			"name":           {Type: genai.TypeString},
			"initialBalance": {Type: genai.TypeNumber},
			"type":           {Type: genai.TypeString, Enum: types},
		},
	}

	var draft AccountDraft
	if err := p.generate(ctx, audio, mimeType, prompt, schema, &draft); err != nil {
		return AccountDraft{Transcript: "Error processing audio."}, err
	}
	return draft, nil
}

func (p *Parser) generate(ctx context.Context, audio []byte, mimeType, prompt string, schema *genai.Schema, out any) error {
	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: audio}},
			{Text: prompt},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return fmt.Errorf("generating content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return fmt.Errorf("empty response from model")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decoding model response: %w", err)
	}
	return nil
}
