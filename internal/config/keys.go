package config

// Preference key constants to prevent typos and enable autocomplete
const (
	// KeyStartDir is the default directory offered by list and search prompts
	KeyStartDir = "START_DIR"

	// KeyColorOutput toggles colored console output ("true"/"false")
	KeyColorOutput = "COLOR_OUTPUT"

	// KeyConfirmDestructive toggles y/n prompts before deletes, console
	// clears and exit ("true"/"false")
	KeyConfirmDestructive = "CONFIRM_DESTRUCTIVE"
)

// Defaults holds the value used for each key when the config file does
// not set one.
var Defaults = map[string]string{
	KeyStartDir:           ".",
	KeyColorOutput:        "true",
	KeyConfirmDestructive: "true",
}

// IsKnownKey reports whether key is a preference this tool understands.
// `fileman config set` rejects anything else.
func IsKnownKey(key string) bool {
	_, ok := Defaults[key]
	return ok
}
