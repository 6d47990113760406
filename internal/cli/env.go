package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hidenorly/aws-bedrock-playground/internal/llm"
	"github.com/hidenorly/aws-bedrock-playground/internal/llm/bedrock"
	"github.com/hidenorly/aws-bedrock-playground/internal/prompt"
	"github.com/hidenorly/aws-bedrock-playground/internal/setup"
	"github.com/hidenorly/aws-bedrock-playground/internal/setup/logger"
)

// ClientFactory produces a ready-to-use streaming client. The real
// entrypoints inject the Bedrock constructor; tests substitute a fake
// without touching credential state.
type ClientFactory func(ctx context.Context, opts bedrock.Options) (llm.StreamingClient, error)

func bedrockFactory(ctx context.Context, opts bedrock.Options) (llm.StreamingClient, error) {
	return bedrock.NewClient(ctx, opts)
}

// bootstrap loads the optional .env file and defaults config, then builds
// an env wired to the real process streams and the Bedrock client factory.
func bootstrap() (*env, *setup.Config, error) {
	envErr := godotenv.Load()

	cfg, err := setup.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	app := &env{
		newClient: bedrockFactory,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		logger:    logger.New(os.Stderr, cfg.LogLevel),
	}
	if envErr != nil {
		app.logger.Debug().Msg("No .env file found")
	}

	return app, cfg, nil
}

// env holds the parsed flags and injected dependencies of one CLI run.
type env struct {
	files     []string
	accessKey string
	secretKey string
	region    string
	model     string
	maxTokens int

	// ask only
	systemPrompt string
	userPrompt   string
	promptFile   string

	newClient ClientFactory
	stdin     io.Reader
	stdout    io.Writer
	logger    zerolog.Logger
}

// readContent assembles the text to send: concatenated files, or all of
// stdin when no paths were given.
func (app *env) readContent() (string, error) {
	if len(app.files) > 0 {
		return prompt.ReadFiles(app.files)
	}

	return prompt.ReadAll(app.stdin)
}

// invoke performs the single streaming call shared by both tools and prints
// the accumulated answer. It returns the process exit code.
//
// A remote client error is reported on stdout and still exits 0, matching
// the tools' historical behavior.
func (app *env) invoke(ctx context.Context, req llm.Request) int {
	client, err := app.newClient(ctx, bedrock.Options{
		AccessKey: app.accessKey,
		SecretKey: app.secretKey,
		Region:    app.region,
		ModelID:   app.model,
	})
	if err != nil {
		app.logger.Error().Err(err).Msg("Failed to create Bedrock client")
		return 1
	}

	app.logger.Debug().
		Str("model", app.model).
		Str("region", app.region).
		Int("max_tokens", req.MaxTokens).
		Msg("Invoking model")

	var status *llm.Status

	rsp, err := client.InvokeModelStream(ctx, req)
	if rsp != nil {
		status = rsp.Status
	}
	if err != nil {
		if msg, ok := bedrock.ClientErrorMessage(err); ok {
			app.logger.Error().Str("message", msg).Msg("A client error occurred")
			fmt.Fprintln(app.stdout, "A client error occurred: "+msg)
			fmt.Fprintln(app.stdout, status)
			return 0
		}
		app.logger.Error().Err(err).Msg("Model invocation failed")
		return 1
	}

	// Terminal metadata stays off stdout on the normal path.
	if status != nil {
		app.logger.Debug().
			Str("stop_reason", status.StopReason).
			Int("output_tokens", status.OutputTokens).
			Msg("Stream finished")
	}

	fmt.Fprintln(app.stdout, rsp.Content)

	return 0
}
