package i18n

import "strings"

// Translator retrieves localized messages for issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "minimum").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates may
// reference metadata with {name} placeholders.
type dictTranslator struct{ lang string }

var enDict = map[string]string{
	"invalid_type":             "Expected {expected}, received {received}",
	"required":                 "Required",
	"unknown_key":              "Unrecognized key: {key}",
	"too_small":                "Too small: expected at least {minimum}",
	"too_big":                  "Too big: expected at most {maximum}",
	"invalid_string":           "Invalid {format}",
	"invalid_length":           "Invalid length",
	"not_int":                  "Expected integer, received fractional number",
	"not_finite":               "Number must be finite",
	"not_multiple_of":          "Number must be a multiple of {multipleOf}",
	"invalid_literal":          "Invalid literal value, expected {expected}",
	"invalid_enum":             "Invalid enum value, expected one of {options}",
	"invalid_union":            "Invalid input",
	"discriminator_missing":    "Missing discriminator {discriminator}",
	"discriminator_unknown":    "Invalid discriminator value {received}",
	"invalid_tuple_length":     "Expected tuple of length {expected}",
	"duplicate_item":           "Duplicate item",
	"recursion_limit_exceeded": "Recursion limit exceeded",
	"parse_error":              "Parse error",
	"custom":                   "Invalid input",
}

var jaDict = map[string]string{
	"invalid_type":             "{expected}が必要ですが、{received}を受け取りました",
	"required":                 "必須項目です",
	"unknown_key":              "未知のキーです: {key}",
	"too_small":                "小さすぎます: {minimum}以上が必要です",
	"too_big":                  "大きすぎます: {maximum}以下が必要です",
	"invalid_string":           "{format}の形式が不正です",
	"invalid_length":           "長さが不正です",
	"not_int":                  "整数が必要ですが、小数を受け取りました",
	"not_finite":               "有限の数値が必要です",
	"not_multiple_of":          "{multipleOf}の倍数が必要です",
	"invalid_literal":          "リテラル値が不正です。{expected}が必要です",
	"invalid_enum":             "列挙値が不正です。{options}のいずれかが必要です",
	"invalid_union":            "入力が不正です",
	"discriminator_missing":    "識別子{discriminator}がありません",
	"discriminator_unknown":    "識別子の値{received}が不正です",
	"invalid_tuple_length":     "長さ{expected}のタプルが必要です",
	"duplicate_item":           "項目が重複しています",
	"recursion_limit_exceeded": "再帰の上限を超えました",
	"parse_error":              "解析エラー",
	"custom":                   "入力が不正です",
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict := enDict
	if t.lang == "ja" {
		dict = jaDict
	}
	tmpl, ok := dict[code]
	if !ok {
		return code
	}
	return substitute(tmpl, data)
}

// substitute replaces {name} placeholders with metadata values. Unresolved
// placeholders are left in place.
func substitute(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.ContainsRune(tmpl, '{') {
		return tmpl
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		close := strings.IndexByte(tmpl[open:], '}')
		if close < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		close += open
		b.WriteString(tmpl[:open])
		name := tmpl[open+1 : close]
		if v, ok := data[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(tmpl[open : close+1])
		}
		tmpl = tmpl[close+1:]
	}
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

// T translates a code with the active Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}

// Current returns the active Translator.
func Current() Translator { return currentTranslator }
