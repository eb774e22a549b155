package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/saksham-is260/BrainForge/internal/coursegen"
	"github.com/saksham-is260/BrainForge/internal/llm"
	"github.com/saksham-is260/BrainForge/internal/store"
)

// App wires storage, the model provider, and the generation service for
// the CLI commands.
type App struct {
	Store    *store.Store
	Provider llm.Provider
	Courses  *coursegen.Service
}

// New loads configuration, connects storage, and builds the pipeline.
// Env vars win over .env file entries.
func New(ctx context.Context) (*App, error) {
	// A missing .env file is fine; env vars may carry everything.
	_ = godotenv.Load()

	st, err := store.Open(ctx, store.ConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			llmCfg = discovered
		} else {
			_ = st.Close(ctx)
			return nil, fmt.Errorf("configuring model provider: %w", err)
		}
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
	if err != nil {
		_ = st.Close(ctx)
		return nil, err
	}

	genCfg := coursegen.DefaultConfig()
	genCfg.RunTimeout = llmCfg.Timeout * 6 // generous: multi-batch runs make several calls
	genCfg.Logger = log.New(os.Stderr, "coursegen: ", log.LstdFlags)

	return &App{
		Store:    st,
		Provider: provider,
		Courses:  coursegen.NewService(provider, st.PartialRepo(), genCfg),
	}, nil
}

// Close releases the storage connection.
func (a *App) Close(ctx context.Context) error {
	return a.Store.Close(ctx)
}
