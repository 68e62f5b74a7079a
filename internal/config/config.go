package config

import (
	"kgraph/internal/util"
)

// Config holds the full runtime configuration. It is built once at startup
// from the process environment and passed by reference to the components
// that need it.
type Config struct {
	Port  string
	Debug bool

	AIAdapter      string // "openai" (default) or "ollama"
	AIChatURL      string
	AIChatKey      string
	AIExtractModel string

	UploadDir    string
	GeneratedDir string

	// LayoutSeed seeds the graph layout; 0 keeps positions varying
	// run-to-run.
	LayoutSeed uint64

	// MaxPromptTokens caps the document text sent to the model;
	// 0 disables truncation.
	MaxPromptTokens int
}

// Load reads the configuration from the environment, applying defaults.
// Validation of required values happens in server.Init so that the missing
// pieces can be reported through the logger.
func Load() *Config {
	return &Config{
		Port:  util.GetEnvString("PORT", "8080"),
		Debug: util.GetEnvBool("DEBUG", false),

		AIAdapter:      util.GetEnvString("AI_ADAPTER", "openai"),
		AIChatURL:      util.GetEnv("AI_CHAT_URL"),
		AIChatKey:      util.GetEnv("AI_CHAT_KEY"),
		AIExtractModel: util.GetEnvString("AI_EXTRACT_MODEL", "gpt-4o-mini"),

		UploadDir:    util.GetEnvString("UPLOAD_DIR", "uploads"),
		GeneratedDir: util.GetEnvString("GENERATED_DIR", "generated"),

		LayoutSeed:      util.GetEnvUint64("GRAPH_LAYOUT_SEED", 0),
		MaxPromptTokens: util.GetEnvInt("MAX_PROMPT_TOKENS", 0),
	}
}
