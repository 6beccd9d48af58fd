package models

// Model identifica un modelo de lenguaje soportado por el gateway.
type Model string

const (
	ModelGPT4o       Model = "gpt-4o"
	ModelLlama405B   Model = "llama-3.1-405b"
	ModelLlama70B    Model = "llama-3.1-70b"
	ModelGeminiFlash Model = "gemini-1.5-flash"
)

// DefaultModel is used when an endpoint allows the model to be omitted.
const DefaultModel = ModelGeminiFlash

// Family agrupa los modelos que comparten la misma credencial.
type Family string

const (
	FamilyOpenAI    Family = "openai"
	FamilyFireworks Family = "fireworks"
	FamilyGemini    Family = "gemini"
)

// AllModels returns the static model set in a stable order.
func AllModels() []Model {
	return []Model{
		ModelGPT4o,
		ModelLlama405B,
		ModelLlama70B,
		ModelGeminiFlash,
	}
}

// ParseModel resolves a client-supplied model name. Matching is
// case-sensitive: clients must send the canonical identifier.
func ParseModel(name string) (Model, bool) {
	switch Model(name) {
	case ModelGPT4o, ModelLlama405B, ModelLlama70B, ModelGeminiFlash:
		return Model(name), true
	default:
		return "", false
	}
}

// CredentialFamily returns the credential family that authorizes the model.
// Both llama variants share the Fireworks credential.
func (m Model) CredentialFamily() Family {
	switch m {
	case ModelGPT4o:
		return FamilyOpenAI
	case ModelLlama405B, ModelLlama70B:
		return FamilyFireworks
	case ModelGeminiFlash:
		return FamilyGemini
	default:
		return ""
	}
}

func (m Model) String() string {
	return string(m)
}
