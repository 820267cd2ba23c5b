package i18n

// Translator retrieves localized messages for problem codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "key", or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	base := ""
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			base = "型が不正です"
		case "overflow":
			base = "値が範囲外です"
		case "no_extractor":
			base = "この型の抽出器が登録されていません"
		case "missing_key":
			base = "キーが存在しません"
		case "index_out_of_range":
			base = "インデックスが範囲外です"
		case "wrong_kind":
			base = "ノード種別が不正です"
		case "duplicate_key":
			base = "キーが重複しています"
		case "parse_error":
			base = "解析エラー"
		case "max_depth":
			base = "ネストが深すぎます"
		case "truncated":
			base = "打ち切られました"
		case "invalid_format":
			base = "書式が不正です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			base = "invalid type"
		case "overflow":
			base = "value out of range"
		case "no_extractor":
			base = "no extractor registered for type"
		case "missing_key":
			base = "key missing"
		case "index_out_of_range":
			base = "index out of range"
		case "wrong_kind":
			base = "wrong node kind"
		case "duplicate_key":
			base = "duplicate key"
		case "parse_error":
			base = "parse error"
		case "max_depth":
			base = "max depth exceeded"
		case "truncated":
			base = "truncated"
		case "invalid_format":
			base = "invalid format"
		}
	}
	if base == "" {
		base = code
	}
	return embed(base, data)
}

// embed appends well-known metadata so messages stay useful without format
// strings in the dictionary.
func embed(base string, data map[string]string) string {
	if data == nil {
		return base
	}
	if v, ok := data["type"]; ok {
		return base + " " + v
	}
	if v, ok := data["key"]; ok {
		return base + ": '" + v + "'"
	}
	if v, ok := data["expected"]; ok {
		return base + " (expected " + v + ")"
	}
	return base
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
