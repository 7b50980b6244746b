package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/catalog"
	"github.com/korjavin/pantrychef/pkg/config"
	"github.com/korjavin/pantrychef/pkg/inventory"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/openai"
	"github.com/korjavin/pantrychef/pkg/pantry"
	"github.com/korjavin/pantrychef/pkg/scale"
	"github.com/korjavin/pantrychef/pkg/scheduler"
	"github.com/korjavin/pantrychef/pkg/shopping"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

func main() {
	os.Exit(run())
}

// run starts the bot and blocks until shutdown. It returns the process exit
// code so deferred cleanup runs before the process exits.
func run() int {
	// Initialize logger
	log := logger.Global
	log.Info("Starting PantryChef bot...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		return 1
	}
	logger.SetLevel(cfg.LogLevel)

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		return 1
	}
	defer store.Close()

	// Start BadgerDB garbage collection
	store.StartGCRoutine(10 * time.Minute)

	recipes, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("Failed to load recipe catalog: %v", err)
		return 1
	}
	log.Info("Loaded %d recipes", recipes.Len())

	// Initialize the LLM client only when a key is configured
	var parser openai.IngredientParser
	var generator messages.ChatGenerator
	if cfg.HasOpenAI() {
		client := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
		parser = client
		generator = client
	} else {
		log.Warn("OPENAI_API_KEY not set, using the local ingredient parser")
	}

	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	states := state.New()
	jobs := scheduler.New(scheduler.Job{
		Name:     "sweep-chat-states",
		Interval: time.Minute,
		Run: func() error {
			if n := states.Sweep(); n > 0 {
				log.Debug("Expired %d chat states", n)
			}
			return nil
		},
	})
	jobs.Start()
	defer jobs.Stop()

	a := &app{
		ctx:       ctx,
		cfg:       cfg,
		bot:       bot,
		catalog:   recipes,
		pantry:    pantry.New(store),
		inventory: inventory.New(store),
		shopping:  shopping.New(store),
		messages:  messages.New(generator, scale.NewFormatter(cfg.FractionTolerance)),
		parser:    openai.WithFallback(parser),
		states:    states,
		log:       log,
	}

	commandHandlers := map[string]telegram.CommandHandler{
		"start":        a.handleStart,
		"help":         a.handleStart,
		"pantry":       a.handlePantry,
		"add":          a.handleAdd,
		"remove":       a.handleRemove,
		"clear_pantry": a.handleClearPantry,
		"recipes":      a.handleRecipes,
		"search":       a.handleSearch,
		"recipe":       a.handleRecipe,
		"inventory":    a.handleInventory,
		"stock":        a.handleStock,
		"shop":         a.handleShop,
		"buy":          a.handleBuy,
		"cancel":       a.handleCancel,
	}

	callbackHandlers := map[string]telegram.CallbackHandler{
		telegram.ActionOpenRecipe:   a.onOpenRecipe,
		telegram.ActionServingsUp:   a.onServingsUp,
		telegram.ActionServingsDown: a.onServingsDown,
		telegram.ActionShopMissing:  a.onShopMissing,
		telegram.ActionToggleItem:   a.onToggleItem,
		telegram.ActionClearChecked: a.onClearChecked,
		telegram.ActionUnstock:      a.onUnstock,
		telegram.ActionDoneAdding:   a.onDoneAdding,
		telegram.ActionAddMore:      a.onAddMore,
	}

	defaultHandler := func(update tgbotapi.Update) {
		if update.Message != nil && update.Message.Text != "" && !update.Message.IsCommand() {
			a.handleText(update.Message)
		}
	}

	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(ctx, commandHandlers, callbackHandlers, defaultHandler); err != nil {
		log.Error("Error running bot: %v", err)
		return 1
	}
	log.Info("Shutting down...")
	return 0
}
