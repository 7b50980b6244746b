package telegram

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/catalog"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonData(b tgbotapi.InlineKeyboardButton) string {
	if b.CallbackData == nil {
		return ""
	}
	return *b.CallbackData
}

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		data   string
		action string
		arg    string
	}{
		{CallbackData(ActionServingsUp, "3"), ActionServingsUp, "3"},
		{CallbackData(ActionToggleItem, "a:b"), ActionToggleItem, "a:b"},
		{CallbackData(ActionClearChecked, ""), ActionClearChecked, ""},
		{"garbage", "garbage", ""},
	}

	for _, tt := range tests {
		action, arg := ParseCallbackData(tt.data)
		assert.Equal(t, tt.action, action, tt.data)
		assert.Equal(t, tt.arg, arg, tt.data)
	}
}

func TestRecipeKeyboardHidesDecrementAtOne(t *testing.T) {
	kb := RecipeKeyboard("7", 1, 0)
	require.Len(t, kb.InlineKeyboard, 1)
	row := kb.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "👥 1", row[0].Text)
	assert.Equal(t, "srv_inc:7", buttonData(row[1]))

	kb = RecipeKeyboard("7", 3, 2)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "srv_dec:7", buttonData(kb.InlineKeyboard[0][0]))
	assert.Equal(t, "🛒 Add 2 missing", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, "shop_missing:7", buttonData(kb.InlineKeyboard[1][0]))
}

func TestShoppingKeyboard(t *testing.T) {
	kb := ShoppingKeyboard([]models.ShoppingItem{{ID: "x", Name: "milk"}})
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, "⬜ milk", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "toggle:x", buttonData(kb.InlineKeyboard[0][0]))

	kb = ShoppingKeyboard([]models.ShoppingItem{{ID: "x", Name: "milk"}, {ID: "y", Name: "eggs", Checked: true}})
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Equal(t, "✅ eggs", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, ActionClearChecked, buttonData(kb.InlineKeyboard[2][0]))
}

func TestRecipeListKeyboard(t *testing.T) {
	kb := RecipeListKeyboard([]matcher.Match{
		{Recipe: models.Recipe{ID: "1", Title: "Soup"}, Percentage: 50},
		{Recipe: models.Recipe{ID: "2", Title: "Tacos"}, Percentage: 0},
	})
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "Soup (50%)", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "open:2", buttonData(kb.InlineKeyboard[1][0]))
}

func TestInventoryKeyboard(t *testing.T) {
	kb := InventoryKeyboard([]models.InventoryItem{{ID: "i1", Name: "rice"}})
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, "🗑 rice", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "unstock:i1", buttonData(kb.InlineKeyboard[0][0]))
}

func TestRecipeCallbackDataFitsTelegramLimit(t *testing.T) {
	id := strings.Repeat("x", catalog.MaxIDLength)
	for _, action := range []string{ActionOpenRecipe, ActionServingsUp, ActionServingsDown, ActionShopMissing} {
		assert.LessOrEqual(t, len(CallbackData(action, id)), 64, action)
	}

	kb := RecipeKeyboard(id, 2, 1)
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			assert.LessOrEqual(t, len(buttonData(b)), 64, b.Text)
		}
	}
}
