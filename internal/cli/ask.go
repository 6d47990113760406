package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hidenorly/aws-bedrock-playground/internal/llm"
	"github.com/hidenorly/aws-bedrock-playground/internal/prompt"
	"github.com/hidenorly/aws-bedrock-playground/internal/setup"
)

// Ask is the generic prompt-and-respond entrypoint. It returns the process
// exit code.
func Ask(args []string) int {
	app, cfg, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return 1
	}

	if err := app.askFromArgs(args, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing args: %v\n", err)
		return 2
	}

	return app.runAsk(context.Background())
}

func (app *env) askFromArgs(args []string, cfg *setup.Config) error {
	fl := flag.NewFlagSet("ask", flag.ContinueOnError)

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	fl.StringVar(&app.accessKey, "k", accessKey, "access key id, or set AWS_ACCESS_KEY_ID / .aws/credentials")
	fl.StringVar(&app.accessKey, "accessKey", accessKey, "access key id, or set AWS_ACCESS_KEY_ID / .aws/credentials")

	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	fl.StringVar(&app.secretKey, "s", secretKey, "secret key, or set AWS_SECRET_ACCESS_KEY / .aws/credentials")
	fl.StringVar(&app.secretKey, "secretKey", secretKey, "secret key, or set AWS_SECRET_ACCESS_KEY / .aws/credentials")

	fl.StringVar(&app.region, "r", cfg.Region, "service region")
	fl.StringVar(&app.region, "region", cfg.Region, "service region")

	fl.StringVar(&app.model, "m", cfg.ModelID, "model id")
	fl.StringVar(&app.model, "model", cfg.ModelID, "model id")

	fl.IntVar(&app.maxTokens, "x", cfg.MaxTokens, "maximum output tokens")
	fl.IntVar(&app.maxTokens, "maxTokens", cfg.MaxTokens, "maximum output tokens")

	fl.StringVar(&app.systemPrompt, "a", "", "system prompt, overrides the prompt file")
	fl.StringVar(&app.systemPrompt, "systemprompt", "", "system prompt, overrides the prompt file")

	fl.StringVar(&app.userPrompt, "u", "", "user prompt, overrides the prompt file")
	fl.StringVar(&app.userPrompt, "prompt", "", "user prompt, overrides the prompt file")

	fl.StringVar(&app.promptFile, "p", "", "JSON file with system_prompt/user_prompt")
	fl.StringVar(&app.promptFile, "promptfile", "", "JSON file with system_prompt/user_prompt")

	if err := fl.Parse(args); err != nil {
		return err
	}

	app.files = fl.Args()

	return nil
}

func (app *env) runAsk(ctx context.Context) int {
	content, err := app.readContent()
	if err != nil {
		app.logger.Error().Err(err).Msg("Failed to read input")
		return 1
	}

	pair, err := prompt.LoadFile(app.promptFile)
	if err != nil {
		app.logger.Error().Err(err).Msg("Failed to load prompt file")
		return 1
	}
	pair = pair.Merge(app.systemPrompt, app.userPrompt)

	return app.invoke(ctx, llm.Request{
		System:    pair.System(),
		Prompt:    pair.User() + "\n" + content,
		MaxTokens: app.maxTokens,
	})
}
