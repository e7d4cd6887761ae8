package i18n

// Translator retrieves localized guidance messages for issue codes.
// data provides optional metadata to embed in the message.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unrecognized_schema":
			return "スキーマ定義が見つかりません。export const Name = z.object({...}) の形式で記述してください"
		case "malformed_input":
			return "ドキュメントを解析できません。括弧やカンマの対応を確認してください"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "unrecognized_schema":
			return "no schema declaration was recognized; write an exported declaration like: export const Name = z.object({...})"
		case "malformed_input":
			return "the document could not be parsed; check brackets, commas and quoting near the reported position"
		case "parse_error":
			return "parse error"
		}
	}
	return code
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
