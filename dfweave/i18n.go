package dfweave

import (
	"fmt"

	"github.com/oriumgames/weave"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	keyPlayersOnly   = "command.spellcore.player_only"
	keyNotHolding    = "command.spellcore.not_holding_core"
	keyInvalidID     = "command.spellcore.invalid_module_id"
	keyNotFound      = "command.spellcore.module_not_found"
	keyAdded         = "command.spellcore.module_added"
	keyFull          = "command.spellcore.core_full"
	keyRemoved       = "command.spellcore.slot_cleared"
	keyBadSlot       = "command.spellcore.bad_slot"
	keyCleared       = "command.spellcore.modules_cleared"
	keyNoModules     = "command.spellcore.no_modules"
	keyModulesList   = "command.spellcore.modules_list"
	keyListEntry     = "command.spellcore.list_entry"
	keyEstimate      = "command.spellcore.estimate"
	keyGiven         = "command.spellcore.given"
	keyInventoryFull = "command.spellcore.inventory_full"
	keyEmptyCore     = "item.weave.spell_core.no_modules"
	keyCoreName      = "item.weave.spell_core"
	keyRemaining     = "item.weave.spell_core.remaining_slots"
)

var supported = []language.Tag{language.English, language.Chinese}

var messages = map[language.Tag]map[string]string{
	language.English: {
		keyPlayersOnly:   "This command can only be used by players.",
		keyNotHolding:    "You must hold a spell core in your main hand.",
		keyInvalidID:     "Invalid module id: %s",
		keyNotFound:      "Module not found: %s",
		keyAdded:         "Added %s to slot %d.",
		keyFull:          "The spell core has no empty slot.",
		keyRemoved:       "Cleared slot %d.",
		keyBadSlot:       "Slot must be between 1 and %d.",
		keyCleared:       "All modules removed from the spell core.",
		keyNoModules:     "The spell core has no modules.",
		keyModulesList:   "Spell core modules:",
		keyListEntry:     "%d. %s (%s)",
		keyEstimate:      "Mana %d, cooldown %d ticks, complexity %.1f",
		keyGiven:         "You received a spell core.",
		keyInventoryFull: "Your inventory is full.",
		keyEmptyCore:     "No modules",
		keyCoreName:      "Spell Core",
		keyRemaining:     "Remaining slots: %d",

		"module.weave.fireball":       "Fireball",
		"module.weave.split_on_hit":   "Split on Hit",
		"module.weave.explode_on_hit": "Explode on Hit",
	},
	language.Chinese: {
		keyPlayersOnly:   "只有玩家可以使用此命令。",
		keyNotHolding:    "你必须在主手持有法术核心。",
		keyInvalidID:     "无效的模块ID：%s",
		keyNotFound:      "找不到模块：%s",
		keyAdded:         "已将 %s 添加到槽位 %d。",
		keyFull:          "法术核心没有空槽位。",
		keyRemoved:       "已清空槽位 %d。",
		keyBadSlot:       "槽位必须在 1 到 %d 之间。",
		keyCleared:       "已移除法术核心上的所有模块。",
		keyNoModules:     "法术核心上没有模块。",
		keyModulesList:   "法术核心模块：",
		keyListEntry:     "%d. %s（%s）",
		keyEstimate:      "魔力 %d，冷却 %d 刻，复杂度 %.1f",
		keyGiven:         "你获得了一个法术核心。",
		keyInventoryFull: "你的背包已满。",
		keyEmptyCore:     "没有模块",
		keyCoreName:      "法术核心",
		keyRemaining:     "剩余槽位：%d",

		"module.weave.fireball":       "火球术",
		"module.weave.split_on_hit":   "击中时分裂",
		"module.weave.explode_on_hit": "击中时爆炸",
	},
}

var (
	cat     = mustCatalog()
	matcher = language.NewMatcher(supported)
)

func mustCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("weave: register message %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Printer returns a printer for the supported locale closest to t.
// Unsupported locales fall back to English.
func Printer(t language.Tag) *message.Printer {
	_, i, _ := matcher.Match(t)
	return message.NewPrinter(supported[i], message.Catalog(cat))
}

// T translates key for locale t.
func T(t language.Tag, key string, args ...any) string {
	return Printer(t).Sprintf(key, args...)
}

// DisplayName returns the localized display name of m, or its identifier if
// no translation exists.
func DisplayName(t language.Tag, m weave.Module) string {
	key := m.DisplayKey()
	if s := T(t, key); s != key {
		return s
	}
	return m.ID().String()
}
