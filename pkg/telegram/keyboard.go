package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/state"
)

// Callback actions carried in inline button data as "action:arg"
const (
	ActionOpenRecipe   = "open"
	ActionServingsUp   = "srv_inc"
	ActionServingsDown = "srv_dec"
	ActionShopMissing  = "shop_missing"
	ActionToggleItem   = "toggle"
	ActionClearChecked = "clear_checked"
	ActionUnstock      = "unstock"
	ActionDoneAdding   = "done_adding"
	ActionAddMore      = "add_more"
)

// CallbackData joins an action and its argument
func CallbackData(action, arg string) string {
	if arg == "" {
		return action
	}
	return action + ":" + arg
}

// ParseCallbackData splits callback data into action and argument
func ParseCallbackData(data string) (action, arg string) {
	action, arg, _ = strings.Cut(data, ":")
	return action, arg
}

// RecipeListKeyboard has one button per match that opens the recipe
func RecipeListKeyboard(matches []matcher.Match) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(matches))
	for _, m := range matches {
		label := fmt.Sprintf("%s (%d%%)", m.Recipe.Title, m.Percentage)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, CallbackData(ActionOpenRecipe, m.Recipe.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// RecipeKeyboard has the servings controls and, when something is missing,
// a button to put the missing ingredients on the shopping list
func RecipeKeyboard(recipeID string, servings, missing int) tgbotapi.InlineKeyboardMarkup {
	var controls []tgbotapi.InlineKeyboardButton
	if state.CanDecrement(servings) {
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("➖", CallbackData(ActionServingsDown, recipeID)))
	}
	controls = append(controls,
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("👥 %d", servings), CallbackData(ActionOpenRecipe, recipeID)),
		tgbotapi.NewInlineKeyboardButtonData("➕", CallbackData(ActionServingsUp, recipeID)),
	)

	rows := [][]tgbotapi.InlineKeyboardButton{controls}
	if missing > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🛒 Add %d missing", missing), CallbackData(ActionShopMissing, recipeID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ShoppingKeyboard has a toggle per item and a clear button when anything is checked
func ShoppingKeyboard(items []models.ShoppingItem) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items)+1)
	anyChecked := false
	for _, item := range items {
		box := "⬜"
		if item.Checked {
			box = "✅"
			anyChecked = true
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(box+" "+item.Name, CallbackData(ActionToggleItem, item.ID)),
		))
	}
	if anyChecked {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧹 Clear checked", ActionClearChecked),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// InventoryKeyboard has a remove button per item
func InventoryKeyboard(items []models.InventoryItem) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+item.Name, CallbackData(ActionUnstock, item.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// AddMoreKeyboard asks whether the user keeps adding pantry items
func AddMoreKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Done adding ingredients", ActionDoneAdding),
			tgbotapi.NewInlineKeyboardButtonData("Add more", ActionAddMore),
		),
	)
}
