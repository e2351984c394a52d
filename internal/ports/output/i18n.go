package output

// T renders the user-facing messages of the console report.
type T interface {
	// T renders the message identified by key for the given locale.
	// data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
	// LanguageName returns the English name of a language code, or the code
	// itself when it is unknown.
	LanguageName(code string) string
}
