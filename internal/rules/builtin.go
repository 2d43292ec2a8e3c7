package rules

import (
	"github.com/aoai-workshop/secretscan/internal/redact"
	"github.com/aoai-workshop/secretscan/internal/types"
)

var builtin = []Definition{
	// Azure
	{
		Name:        "azure_subscription_id",
		Pattern:     `[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`,
		Confidence:  types.ConfHigh,
		Description: "Azure Subscription ID / GUID",
		Redaction:   redact.ModeStructured,
	},
	{
		Name:        "azure_openai_key",
		Pattern:     `sk-[a-zA-Z0-9]{20,}`,
		Confidence:  types.ConfHigh,
		Description: "OpenAI API Key",
	},
	{
		Name:        "azure_connection_string",
		Pattern:     `(?i)InstrumentationKey=[a-f0-9-]{36}`,
		Confidence:  types.ConfHigh,
		Description: "Azure Application Insights Connection String",
		Redaction:   redact.ModeStructured,
	},
	{
		Name:        "azure_endpoint",
		Pattern:     `https://[a-zA-Z0-9-]+\.(?:cognitiveservices|openai|services\.ai)\.azure\.com`,
		Confidence:  types.ConfMedium,
		Description: "Azure Cognitive Services / OpenAI Endpoint",
		Redaction:   redact.ModeEndpoint,
	},

	// Generic
	{
		Name:        "api_key_generic",
		Pattern:     `(?i)(?:api[_-]?key|apikey)\s*[:=]\s*["']?([a-zA-Z0-9_-]{20,})["']?`,
		Confidence:  types.ConfHigh,
		Description: "Generic API Key",
	},
	{
		Name:        "bearer_token",
		Pattern:     `(?i)bearer\s+[a-zA-Z0-9_-]{20,}`,
		Confidence:  types.ConfHigh,
		Description: "Bearer Token",
	},
	{
		Name:        "aws_access_key",
		Pattern:     `AKIA[0-9A-Z]{16}`,
		Confidence:  types.ConfHigh,
		Description: "AWS Access Key",
	},
	{
		Name:        "github_token",
		Pattern:     `ghp_[a-zA-Z0-9]{36}`,
		Confidence:  types.ConfHigh,
		Description: "GitHub Personal Access Token",
	},
	{
		Name:        "private_key",
		Pattern:     `-----BEGIN (?:RSA )?PRIVATE KEY-----`,
		Confidence:  types.ConfHigh,
		Description: "Private Key",
	},
	{
		Name:        "password_in_url",
		Pattern:     `://[^:]+:[^@]+@`,
		Confidence:  types.ConfMedium,
		Description: "Password in URL",
	},
	{
		Name:        "jwt_token",
		Pattern:     `eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`,
		Confidence:  types.ConfMedium,
		Description: "JWT Token",
	},

	// Environment variables
	{
		Name:        "env_secret",
		Pattern:     `(?i)(?:secret|password|key|token)\s*[:=]\s*["']?([a-zA-Z0-9_-]{8,})["']?`,
		Confidence:  types.ConfMedium,
		Description: "Potential Secret in Environment Variable",
		Generic:     true,
	},
}

// Builtin returns a copy of the built-in rule definitions in table order.
func Builtin() []Definition {
	out := make([]Definition, len(builtin))
	copy(out, builtin)
	return out
}

// Default compiles the built-in table.
func Default() (*RuleSet, error) {
	return New(builtin...)
}
