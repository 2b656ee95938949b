package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key", "index" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"duplicate_key":  "duplicate key {key} at position {index} (first declared at {first})",
		"invalid_key":    "empty key at position {index}",
		"unknown_key":    "key {key} is not declared by {schema}",
		"invalid_type":   "invalid type for {key}: expected {expected}, got {got}",
		"size_mismatch":  "size mismatch: expected {expected}, got {got}",
		"unorderable":    "values of {key} ({expected}) have no ordering",
		"schema_exists":  "schema {schema} already declared",
		"unbound_schema": "no schema declared for {schema}",
	},
	"ja": {
		"duplicate_key":  "キー {key} が位置 {index} で重複しています (最初の宣言: {first})",
		"invalid_key":    "位置 {index} のキーが空です",
		"unknown_key":    "キー {key} は {schema} に宣言されていません",
		"invalid_type":   "{key} の型が不正です: 期待 {expected}, 実際 {got}",
		"size_mismatch":  "要素数が一致しません: 期待 {expected}, 実際 {got}",
		"unorderable":    "{key} の値 ({expected}) は順序付けできません",
		"schema_exists":  "スキーマ {schema} は既に宣言されています",
		"unbound_schema": "{schema} のスキーマが宣言されていません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
