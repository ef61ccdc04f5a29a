package llm

import (
	"fmt"
	"strings"

	"place-recommender/internal/services/geo"
)

const extractSystemPrompt = "You are a helpful assistant skilled in parsing user queries."

const summarizeSystemPrompt = "You are a helpful assistant."

// buildExtractPrompt asks the model for the {location, intent, place_type}
// JSON object. Queries with no location must come back with the
// "unspecified" sentinel; the pipeline stops on it rather than guessing a
// default.
func buildExtractPrompt(query string) string {
	return fmt.Sprintf(`Analyze the following user query and extract relevant information.
Identify the location and the intent of the query. The intent may involve searching for various types of places or services (e.g., schools, coffee shops, parks, restaurants, museums, etc.).
Your response should intelligently determine the type of place or service being requested, even if not explicitly stated.
Query: %q
Provide the result in this JSON format:
{
    "location": "<location>",
    "intent": "<intent>",
    "place_type": "<place_type>"
}

If the location is not mentioned, set "location" to "unspecified".
Output MUST be a single valid JSON object with exactly these fields and no explanatory text or markdown.`, query)
}

// buildSummarizePrompt formats the reduced place list as bullet data and asks
// for a conversational answer of at most three bullet points.
func buildSummarizePrompt(query string, places []geo.Place) string {
	var data strings.Builder
	for _, place := range places {
		fmt.Fprintf(&data, "- **%s**: Located at %s, rated %.1f/5.\n", place.Name, place.Vicinity, place.Rating)
	}

	return fmt.Sprintf(`Using the following data, please provide a concise and informative response to the user's query: '%s'.

Here is the data you can refer to:
%s
Please format your response as a list of key points or items, making it easy to read and understand.
Humanize the information by using a conversational tone and highlighting relevant details that would be useful for the user.
Your response should not exceed 3 bullet points.`, query, data.String())
}

// sanitizeReply strips the markdown code fences some models wrap JSON in.
func sanitizeReply(reply string) string {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```json\n") {
		reply = strings.TrimPrefix(reply, "```json\n")
	} else if strings.HasPrefix(reply, "```\n") {
		reply = strings.TrimPrefix(reply, "```\n")
	}
	reply = strings.TrimSuffix(reply, "\n```")
	return strings.TrimSpace(reply)
}
