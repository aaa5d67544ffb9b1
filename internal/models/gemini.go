package models

// GeminiRequest is the body accepted by POST /api/gemini.
type GeminiRequest struct {
	Prompt            *string `json:"prompt" validate:"required"`
	SystemInstruction *string `json:"systemInstruction,omitempty"`
}

// Instruction returns the system instruction, or "" when absent.
func (r GeminiRequest) Instruction() string {
	if r.SystemInstruction == nil {
		return ""
	}
	return *r.SystemInstruction
}
