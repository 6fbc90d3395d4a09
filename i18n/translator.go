package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_field":
			return "必須フィールドが不足しています"
		case "type_mismatch":
			return "値が宣言された型を満たしていません"
		case "key_type_mismatch":
			return "マッピングのキー型が不正です"
		case "union_mismatch":
			return "いずれの選択型にも一致しません"
		case "unknown_field":
			return "未知のフィールドです"
		case "parse_error":
			return "解析エラー"
		case "invalid_shape":
			return "シェイプ定義が不正です"
		}
	default: // "en"
		switch code {
		case "missing_field":
			return "required field missing"
		case "type_mismatch":
			return "value does not satisfy the declared type"
		case "key_type_mismatch":
			return "mapping key has the wrong type"
		case "union_mismatch":
			return "value matches none of the union alternatives"
		case "unknown_field":
			return "unknown field"
		case "parse_error":
			return "parse error"
		case "invalid_shape":
			return "invalid shape declaration"
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
