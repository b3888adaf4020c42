package classifier

import (
	"encoding/json"
	"regexp"
	"strings"
)

var jsonBlob = regexp.MustCompile(`\{[\s\S]*\}`)

// DecodeSuggestion decodes a model response into a Suggestion, tolerating
// markdown code fences around the JSON payload. It fails closed: any shape
// mismatch or a category not present in the supplied list yields nil,
// meaning "no enrichment", never an error the pipeline has to handle.
func DecodeSuggestion(raw string, allowedCategories []string) *Suggestion {
	cleaned := stripFences(raw)
	blob := jsonBlob.FindString(cleaned)
	if blob == "" {
		return nil
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return nil
	}

	if s.Category != "" {
		found := false
		for _, name := range allowedCategories {
			if strings.EqualFold(name, s.Category) {
				s.Category = name
				found = true
				break
			}
		}
		if !found {
			// Reject invented labels but keep the card/account hints.
			s.Category = ""
		}
	}

	if s.Category == "" && s.SuggestedCard == "" && s.SuggestedAccount == "" {
		return nil
	}
	return &s
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
