package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/catalog"
	"github.com/korjavin/pantrychef/pkg/config"
	"github.com/korjavin/pantrychef/pkg/inventory"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/openai"
	"github.com/korjavin/pantrychef/pkg/pantry"
	"github.com/korjavin/pantrychef/pkg/scale"
	"github.com/korjavin/pantrychef/pkg/shopping"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

// app holds the services the bot handlers share
type app struct {
	ctx       context.Context
	cfg       *config.Config
	bot       *telegram.Bot
	catalog   *catalog.Catalog
	pantry    *pantry.Service
	inventory *inventory.Service
	shopping  *shopping.Service
	messages  *messages.Service
	parser    openai.IngredientParser
	states    *state.Manager
	log       *logger.Logger
}

func (a *app) send(chatID int64, text string) {
	if _, err := a.bot.SendMessage(chatID, text); err != nil {
		a.log.Error("Failed to send message to %d: %v", chatID, err)
	}
}

func (a *app) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if len(kb.InlineKeyboard) == 0 {
		a.send(chatID, text)
		return
	}
	if _, err := a.bot.SendMessageWithKeyboard(chatID, text, kb); err != nil {
		a.log.Error("Failed to send message to %d: %v", chatID, err)
	}
}

func (a *app) edit(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	var err error
	if len(kb.InlineKeyboard) == 0 {
		_, err = a.bot.EditMessage(chatID, messageID, text)
	} else {
		_, err = a.bot.EditMessageWithKeyboard(chatID, messageID, text, kb)
	}
	if err != nil {
		a.log.Warn("Failed to edit message %d in %d: %v", messageID, chatID, err)
	}
}

func (a *app) answer(callback *tgbotapi.CallbackQuery, text string) {
	if err := a.bot.AnswerCallbackQuery(callback.ID, text); err != nil {
		a.log.Error("Failed to answer callback: %v", err)
	}
}

func (a *app) fail(chatID int64, action string, err error) {
	a.log.Error("Failed to %s: %v", action, err)
	a.send(chatID, messages.ErrorMessage(action))
}

// kitchen returns everything the chat has on hand: pantry names followed by
// inventory names not already in the pantry
func (a *app) kitchen(chatID int64) ([]string, error) {
	names, err := a.pantry.List(chatID)
	if err != nil {
		return nil, err
	}
	stocked, err := a.inventory.Names(chatID)
	if err != nil {
		return nil, err
	}
	return mergeNames(names, stocked), nil
}

func (a *app) handleStart(message *tgbotapi.Message) {
	a.send(message.Chat.ID, a.messages.GenerateWelcomeMessage(a.ctx))
}

func (a *app) handleCancel(message *tgbotapi.Message) {
	a.states.ClearState(message.Chat.ID)
	a.send(message.Chat.ID, "OK, cancelled.")
}

func (a *app) handlePantry(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	names, err := a.pantry.List(chatID)
	if err != nil {
		a.fail(chatID, "retrieve pantry contents", err)
		return
	}
	a.send(chatID, messages.PantryContents(names))
}

func (a *app) handleAdd(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		a.states.SetState(chatID, state.StateAddingIngredients)
		a.send(chatID, "🧺 Send me what you have, as many messages as you like. For example: 2 eggs, milk and some basil")
		return
	}
	a.addToPantry(chatID, args)
}

func (a *app) addToPantry(chatID int64, text string) {
	names, err := a.parser.ParseIngredientsFromText(a.ctx, text)
	if err != nil {
		a.fail(chatID, "understand the ingredients", err)
		return
	}
	if len(names) == 0 {
		a.send(chatID, "I couldn't find any ingredients in your message. Please try again with a list of ingredients.")
		return
	}

	added, err := a.pantry.Add(chatID, names...)
	if err != nil {
		a.fail(chatID, "update the pantry", err)
		return
	}
	if len(added) == 0 {
		a.send(chatID, "👌 All of those are already in your pantry.")
		return
	}

	text = fmt.Sprintf("✅ Added %d to your pantry: %s", len(added), strings.Join(added, ", "))
	if a.states.GetState(chatID) == state.StateAddingIngredients {
		a.sendWithKeyboard(chatID, text, telegram.AddMoreKeyboard())
		return
	}
	a.send(chatID, text)
}

func (a *app) handleRemove(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	name := strings.TrimSpace(message.CommandArguments())
	if name == "" {
		a.send(chatID, "Usage: /remove <item>")
		return
	}

	removed, err := a.pantry.Remove(chatID, name)
	if err != nil {
		a.fail(chatID, "update the pantry", err)
		return
	}
	if !removed {
		a.send(chatID, fmt.Sprintf("%s is not in your pantry.", name))
		return
	}
	a.send(chatID, fmt.Sprintf("🗑 Removed %s.", name))
}

func (a *app) handleClearPantry(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if err := a.pantry.Clear(chatID); err != nil {
		a.fail(chatID, "clear the pantry", err)
		return
	}
	a.send(chatID, "🧹 Pantry cleared! Add ingredients with /add")
}

func (a *app) handleRecipes(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	have, err := a.kitchen(chatID)
	if err != nil {
		a.fail(chatID, "retrieve pantry contents", err)
		return
	}
	if len(have) == 0 {
		a.send(chatID, messages.PantryContents(nil))
		return
	}

	matches := a.catalog.Suggest(have, a.cfg.SuggestionCount)
	a.sendWithKeyboard(chatID, messages.RecipeList(matches), telegram.RecipeListKeyboard(matches))
}

func (a *app) handleSearch(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	query := strings.TrimSpace(message.CommandArguments())
	if query == "" {
		a.send(chatID, "Usage: /search <word>")
		return
	}
	a.send(chatID, messages.SearchResults(query, a.catalog.Search(query)))
}

func (a *app) handleRecipe(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	id := strings.TrimSpace(message.CommandArguments())
	if id == "" {
		a.send(chatID, "Usage: /recipe <id>. Find ids with /recipes or /search")
		return
	}
	a.showRecipe(chatID, 0, id, a.states.Servings)
}

// showRecipe renders recipe id at the servings pick returns. messageID 0
// sends a new message, anything else edits that message in place.
func (a *app) showRecipe(chatID int64, messageID int, id string, pick func(chatID int64, recipeID string, def int) int) {
	recipe, err := a.catalog.Get(id)
	if errors.Is(err, catalog.ErrRecipeNotFound) {
		a.send(chatID, fmt.Sprintf("😢 There is no recipe %q.", id))
		return
	}
	if err != nil {
		a.fail(chatID, "load the recipe", err)
		return
	}

	have, err := a.kitchen(chatID)
	if err != nil {
		a.fail(chatID, "retrieve pantry contents", err)
		return
	}

	servings := pick(chatID, id, scale.ServingsCount(recipe.Servings))
	text := a.messages.RecipeDetail(recipe, servings, have)
	kb := telegram.RecipeKeyboard(id, servings, len(matcher.Missing(recipe.Ingredients, have)))

	if messageID == 0 {
		a.sendWithKeyboard(chatID, text, kb)
		return
	}
	a.edit(chatID, messageID, text, kb)
}

func (a *app) handleInventory(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	a.showInventory(chatID, 0)
}

func (a *app) showInventory(chatID int64, messageID int) {
	groups, err := a.inventory.GroupByCategory(chatID)
	if err != nil {
		a.fail(chatID, "retrieve the inventory", err)
		return
	}
	items, err := a.inventory.List(chatID)
	if err != nil {
		a.fail(chatID, "retrieve the inventory", err)
		return
	}

	text := messages.InventoryContents(groups)
	kb := telegram.InventoryKeyboard(items)
	if messageID == 0 {
		a.sendWithKeyboard(chatID, text, kb)
		return
	}
	a.edit(chatID, messageID, text, kb)
}

func (a *app) handleStock(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	name, qty := parseStockArgs(message.CommandArguments())
	if name == "" {
		a.send(chatID, "Usage: /stock <name> [quantity]")
		return
	}

	item, err := a.inventory.Add(chatID, name, qty)
	if err != nil {
		a.fail(chatID, "update the inventory", err)
		return
	}
	a.send(chatID, fmt.Sprintf("📦 Stocked %s in %s.", item.Name, item.Category))
}

func (a *app) handleShop(message *tgbotapi.Message) {
	a.showShopping(message.Chat.ID, 0)
}

func (a *app) showShopping(chatID int64, messageID int) {
	items, err := a.shopping.List(chatID)
	if err != nil {
		a.fail(chatID, "retrieve the shopping list", err)
		return
	}

	have, err := a.kitchen(chatID)
	if err != nil {
		a.fail(chatID, "retrieve pantry contents", err)
		return
	}

	text := messages.ShoppingList(items, have)
	kb := telegram.ShoppingKeyboard(items)
	if messageID == 0 {
		a.sendWithKeyboard(chatID, text, kb)
		return
	}
	a.edit(chatID, messageID, text, kb)
}

func (a *app) handleBuy(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		a.states.SetState(chatID, state.StateAddingShopping)
		a.send(chatID, "🛒 What do you need to buy? Send a list, one item per line or separated by commas. /cancel to stop.")
		return
	}
	a.addToShopping(chatID, args)
}

func (a *app) addToShopping(chatID int64, text string) {
	added, err := a.shopping.Add(chatID, splitList(text)...)
	if err != nil {
		a.fail(chatID, "update the shopping list", err)
		return
	}
	if len(added) == 0 {
		a.send(chatID, "👌 Already on your list.")
		return
	}
	a.send(chatID, fmt.Sprintf("🛒 Added %d to your shopping list. /shop to see it.", len(added)))
}

func (a *app) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := message.Text

	switch a.states.GetState(chatID) {
	case state.StateAddingIngredients:
		a.addToPantry(chatID, text)
	case state.StateAddingShopping:
		a.addToShopping(chatID, text)
		a.states.ClearState(chatID)
	default:
		if !looksLikeIngredient(text) {
			return
		}
		added, err := a.pantry.Add(chatID, strings.ToLower(strings.TrimSpace(text)))
		if err != nil {
			a.fail(chatID, "update the pantry", err)
			return
		}
		if len(added) > 0 {
			a.send(chatID, fmt.Sprintf("✅ Added %s to your pantry!", added[0]))
		}
	}
}

func (a *app) onOpenRecipe(callback *tgbotapi.CallbackQuery, id string) {
	a.answer(callback, "")
	a.showRecipe(callback.Message.Chat.ID, 0, id, a.states.Servings)
}

func (a *app) onServingsUp(callback *tgbotapi.CallbackQuery, id string) {
	a.answer(callback, "")
	a.showRecipe(callback.Message.Chat.ID, callback.Message.MessageID, id, a.states.Increment)
}

func (a *app) onServingsDown(callback *tgbotapi.CallbackQuery, id string) {
	a.answer(callback, "")
	a.showRecipe(callback.Message.Chat.ID, callback.Message.MessageID, id, a.states.Decrement)
}

func (a *app) onShopMissing(callback *tgbotapi.CallbackQuery, id string) {
	chatID := callback.Message.Chat.ID
	recipe, err := a.catalog.Get(id)
	if err != nil {
		a.answer(callback, "Recipe not found")
		return
	}
	have, err := a.kitchen(chatID)
	if err != nil {
		a.answer(callback, "")
		a.fail(chatID, "retrieve pantry contents", err)
		return
	}

	added, err := a.shopping.AddMissing(chatID, recipe, have)
	if err != nil {
		a.answer(callback, "")
		a.fail(chatID, "update the shopping list", err)
		return
	}
	a.answer(callback, fmt.Sprintf("🛒 Added %d items to your shopping list", len(added)))
}

func (a *app) onToggleItem(callback *tgbotapi.CallbackQuery, id string) {
	chatID := callback.Message.Chat.ID
	if _, err := a.shopping.Toggle(chatID, id); err != nil {
		if errors.Is(err, shopping.ErrItemNotFound) {
			a.answer(callback, "That item is gone")
		} else {
			a.answer(callback, "")
			a.log.Error("Failed to toggle item: %v", err)
		}
		return
	}
	a.answer(callback, "")
	a.showShopping(chatID, callback.Message.MessageID)
}

func (a *app) onClearChecked(callback *tgbotapi.CallbackQuery, _ string) {
	chatID := callback.Message.Chat.ID
	n, err := a.shopping.ClearChecked(chatID)
	if err != nil {
		a.answer(callback, "")
		a.fail(chatID, "update the shopping list", err)
		return
	}
	a.answer(callback, fmt.Sprintf("🧹 Removed %d items", n))
	a.showShopping(chatID, callback.Message.MessageID)
}

func (a *app) onUnstock(callback *tgbotapi.CallbackQuery, id string) {
	chatID := callback.Message.Chat.ID
	if err := a.inventory.Remove(chatID, id); err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			a.answer(callback, "That item is gone")
		} else {
			a.answer(callback, "")
			a.log.Error("Failed to remove inventory item: %v", err)
		}
		return
	}
	a.answer(callback, "🗑 Removed")
	a.showInventory(chatID, callback.Message.MessageID)
}

func (a *app) onDoneAdding(callback *tgbotapi.CallbackQuery, _ string) {
	chatID := callback.Message.Chat.ID
	a.states.ClearState(chatID)
	a.answer(callback, "Thanks! Your pantry is now updated.")
	a.edit(chatID, callback.Message.MessageID, "✅ Pantry updated! Use /pantry to see it or /recipes to find something to cook.", tgbotapi.InlineKeyboardMarkup{})
}

func (a *app) onAddMore(callback *tgbotapi.CallbackQuery, _ string) {
	chatID := callback.Message.Chat.ID
	a.states.SetState(chatID, state.StateAddingIngredients)
	a.answer(callback, "Please send more ingredients!")
	a.edit(chatID, callback.Message.MessageID, "Please send more ingredients. I'll add them to your pantry.", tgbotapi.InlineKeyboardMarkup{})
}
