package gemini

// Part is a single piece of content text.
type Part struct {
	Text string `json:"text"`
}

// Content groups parts into one conversational message.
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the body sent to models/{model}:generateContent.
type GenerateContentRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// ModelInfo is the subset of catalog metadata the model listing prints.
type ModelInfo struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}
