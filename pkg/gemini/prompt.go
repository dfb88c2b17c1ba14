package gemini

import (
	"fmt"
	"time"
)

// documentPrompt accompanies inline document/image payloads.
const documentPrompt = "Analyze this document/image. Extract the main event, deadline, timeframes or task. Check if it is a warranty or renewal. TRANSLATE OUTPUT TO ENGLISH."

// transcribePrompt accompanies inline audio payloads.
const transcribePrompt = "Transcribe this audio precisely into text. Return only the transcription text, no other comments."

// buildSystemInstruction returns the extraction system prompt anchored to
// now's date so relative phrases ("tomorrow") resolve correctly.
func buildSystemInstruction(now time.Time) string {
	today := now.Format("2006-01-02")
	dayName := now.Weekday().String()

	return fmt.Sprintf(`You are a helpful Life Planner AI.
Today is %s, %s.

CRITICAL INSTRUCTION:
ALL OUTPUT FIELDS (Title, Description) MUST BE IN ENGLISH.
If the user types in French, Spanish, German, etc., you MUST translate the content to English before creating the JSON.

Your job is to extract life events, appointments, and tasks from text or images.

SPECIAL INSTRUCTION FOR WARRANTIES/CONTRACTS:
If you detect a bill, insurance contract, warranty slip, or subscription:
1. Identify the expiration or renewal date.
2. Set 'is_renewal' to true.
3. Set 'expiration_date' to that date.
4. Categorize as 'RENEWAL'.

RECURRENCE:
If the user says "every sunday", "daily", "weekly", set the 'recurrence' object.
Example: "Pills every sunday" -> frequency: WEEKLY, interval: 1.
Example: "Visit Marie until 2025-05-01" -> frequency: [detect interval], until: "2025-05-01".

TIMEFRAMES:
If a time range is given (e.g. "9 to 10am"), extract start_time and end_time in HH:MM 24h format.

If the input is just a greeting or irrelevant text, set is_event to false.
If the user says "tomorrow", calculate the date based on today's date (%s).`, dayName, today, today)
}

// candidateSchema constrains the model output to the Candidate shape.
func candidateSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"is_event": map[string]any{
				"type":        "BOOLEAN",
				"description": "Set to true if the input describes a specific event, task, deadline, or plan.",
			},
			"is_renewal": map[string]any{
				"type":        "BOOLEAN",
				"description": "Set to true if this is a recurring contract, warranty, insurance, subscription, or renewable document.",
			},
			"title": map[string]any{
				"type":        "STRING",
				"description": "A short, clear title for the event. MUST BE TRANSLATED TO ENGLISH.",
			},
			"date": map[string]any{
				"type":        "STRING",
				"description": "The date of the event in ISO 8601 format (YYYY-MM-DD).",
			},
			"start_time": map[string]any{
				"type":        "STRING",
				"description": "The start time in HH:MM format (24h) if specified. e.g., '14:30'. Return null if not specified.",
			},
			"end_time": map[string]any{
				"type":        "STRING",
				"description": "The end time in HH:MM format (24h) if specified. Return null if not specified.",
			},
			"expiration_date": map[string]any{
				"type":        "STRING",
				"description": "If this is a warranty or contract, extract the specific expiration/end date (YYYY-MM-DD).",
			},
			"amount": map[string]any{
				"type":        "STRING",
				"description": "Any monetary amount mentioned.",
			},
			"currency": map[string]any{
				"type":        "STRING",
				"description": "The currency symbol or code.",
			},
			"description": map[string]any{
				"type":        "STRING",
				"description": "A friendly, concise description. MUST BE TRANSLATED TO ENGLISH.",
			},
			"category": map[string]any{
				"type":        "STRING",
				"enum":        []string{"HEALTH", "FINANCE", "HOME", "WORK", "SOCIAL", "TRAVEL", "RENEWAL", "OTHER"},
				"description": "The category of the life event.",
			},
			"recurrence": map[string]any{
				"type":        "OBJECT",
				"description": "If the event repeats (e.g. 'every sunday', 'weekly', 'until May'), define the rule.",
				"properties": map[string]any{
					"frequency": map[string]any{
						"type": "STRING",
						"enum": []string{"DAILY", "WEEKLY", "MONTHLY", "YEARLY"},
					},
					"interval": map[string]any{
						"type":        "NUMBER",
						"description": "e.g. 1 for every week, 2 for every other week.",
					},
					"until": map[string]any{
						"type":        "STRING",
						"description": "Date to stop repeating (YYYY-MM-DD).",
					},
					"count": map[string]any{"type": "NUMBER"},
				},
			},
		},
		"required": []string{"is_event", "title", "description", "category"},
	}
}
