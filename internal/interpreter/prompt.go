package interpreter

import "fmt"

// systemPrompt fixes the interpreter persona for every completion request.
const systemPrompt = `You are a skilled dream interpreter with deep knowledge of psychology, symbolism, and cultural interpretations of dreams. 
Analyze the dream and provide an insightful interpretation that considers:
1. The symbolic meaning of key elements
2. Possible emotional significance
3. Cultural context if relevant
4. Potential connections to the dreamer's life
Keep the interpretation concise but meaningful, around 2-3 paragraphs.`

// userPromptTemplates maps supported language tags to the user-level
// instruction embedding the dream text.
var userPromptTemplates = map[string]string{
	"en": "Please interpret this dream in English: %s",
	"fr": "Veuillez interpréter ce rêve en français: %s",
	"tr": "Lütfen bu rüyayı Türkçe olarak yorumlayın: %s",
	"de": "Bitte interpretieren Sie diesen Traum auf Deutsch: %s",
	"ar": "يرجى تفسير هذا الحلم بالعربية: %s",
}

// userPrompt renders the per-language instruction, falling back to a generic
// template for languages outside the supported set.
func userPrompt(language, dreamText string) string {
	if tmpl, ok := userPromptTemplates[language]; ok {
		return fmt.Sprintf(tmpl, dreamText)
	}
	return fmt.Sprintf("Please interpret this dream in %s: %s", language, dreamText)
}
