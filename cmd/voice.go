package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
	"github.com/sahib-pratap-singh/Ai-Finance/voice"
)

// audioMIMETypes maps common recording extensions to their MIME type.
var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mp3",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
	".flac": "audio/flac",
}

func readAudio(path string) ([]byte, string, error) {
	mime, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, "", fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

// voiceTxCmd holds the flags for the 'voice-add' subcommand.
type voiceTxCmd struct {
	file    string
	account string
	dryRun  bool
}

func (*voiceTxCmd) Name() string     { return "voice-add" }
func (*voiceTxCmd) Synopsis() string { return "record a transaction from an audio description" }
func (*voiceTxCmd) Usage() string {
	return `fin voice-add -f <audio-file> -a <account> [-n]

  Transcribes the recording, extracts the amount, category and type, and
  records the transaction. Requires GEMINI_API_KEY. With -n nothing is
  stored; the extracted draft is only printed.
`
}

func (c *voiceTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Audio file with the spoken transaction.")
	f.StringVar(&c.account, "a", "", "Account name or id the transaction belongs to.")
	f.BoolVar(&c.dryRun, "n", false, "Print the extracted draft without storing it.")
}

func (c *voiceTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	audio, mime, err := readAudio(c.file)
	if err != nil {
		return usageError(err)
	}
	client, err := voice.NewClient(ctx)
	if err != nil {
		return fail(err)
	}
	draft, err := voice.NewParser(client).ParseTransaction(ctx, audio, mime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Println(draft.Transcript)
		return subcommands.ExitFailure
	}
	fmt.Printf("Heard: %q\n", draft.Transcript)
	fmt.Printf("Parsed: %s %v in %s (%s)\n", draft.Type, draft.Amount, draft.Category, draft.Description)
	if c.dryRun {
		return subcommands.ExitSuccess
	}

	txType, err := finance.ParseTransactionType(draft.Type)
	if err != nil {
		txType = finance.Expense
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	account, err := findAccount(store.Accounts(), c.account)
	if err != nil {
		return usageError(err)
	}
	tx, err := store.AddTransaction(finance.Transaction{
		Type:        txType,
		Amount:      decimal.NewFromFloat(draft.Amount),
		Category:    draft.Category,
		Date:        finance.Today(),
		Description: draft.Description,
		AccountID:   account.ID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s (%s)\n", tx.Type, tx.Amount, tx.ID)
	return subcommands.ExitSuccess
}

// voiceAccountCmd holds the flags for the 'voice-add-account' subcommand.
type voiceAccountCmd struct {
	file   string
	dryRun bool
}

func (*voiceAccountCmd) Name() string { return "voice-add-account" }
func (*voiceAccountCmd) Synopsis() string {
	return "add an account from an audio description"
}
func (*voiceAccountCmd) Usage() string {
	return `fin voice-add-account -f <audio-file> [-n]

  Transcribes the recording, extracts the account name, type and opening
  balance, and adds the account. Requires GEMINI_API_KEY.
`
}

func (c *voiceAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Audio file with the spoken account description.")
	f.BoolVar(&c.dryRun, "n", false, "Print the extracted draft without storing it.")
}

func (c *voiceAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	audio, mime, err := readAudio(c.file)
	if err != nil {
		return usageError(err)
	}
	client, err := voice.NewClient(ctx)
	if err != nil {
		return fail(err)
	}
	draft, err := voice.NewParser(client).ParseAccount(ctx, audio, mime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Println(draft.Transcript)
		return subcommands.ExitFailure
	}
	fmt.Printf("Heard: %q\n", draft.Transcript)
	fmt.Printf("Parsed: %s account %q with balance %v\n", draft.Type, draft.Name, draft.InitialBalance)
	if c.dryRun {
		return subcommands.ExitSuccess
	}

	accountType, err := finance.ParseAccountType(draft.Type)
	if err != nil {
		accountType = finance.Checking
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	account, err := store.AddAccount(finance.Account{
		Name:           draft.Name,
		Type:           accountType,
		InitialBalance: decimal.NewFromFloat(draft.InitialBalance),
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added account %q (%s)\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}
