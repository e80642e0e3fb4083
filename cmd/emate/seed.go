package main

import "github.com/emateapp/emate/internal/model"

// Built-in prompt templates for the drafting workflow. Upserted by name, so
// editing a template here and re-running seed updates the row in place.
var seedTemplates = []model.AIPromptTemplate{
	{
		Name:    "training_report_draft",
		Purpose: "Draft a training and experience report from project data",
		Template: "You are assisting a candidate engineer preparing an ECSA training and experience report.\n" +
			"Project: {{project_name}} ({{date_range}})\n" +
			"Role: {{role_title}} at {{company}}\n" +
			"Responsibilities: {{responsibilities}}\n" +
			"Write a first-person report describing the engineering work performed, " +
			"structured around the outcomes demonstrated. Keep a professional register " +
			"and do not invent facts beyond the provided material.",
	},
	{
		Name:    "outcome_response_draft",
		Purpose: "Draft a single outcome response from a project description",
		Template: "Outcome {{outcome_number}}: {{outcome_description}}\n" +
			"Project context: {{project_context}}\n" +
			"Write a concise first-person account of how the work above demonstrates " +
			"this outcome, citing concrete engineering decisions.",
	},
	{
		Name:    "report_summary",
		Purpose: "Summarise a full report for referee review",
		Template: "Summarise the following training report in at most 200 words for a " +
			"reviewing referee. Preserve the project names and time periods.\n\n{{report_content}}",
	},
}

var seedTags = []string{
	"design",
	"investigation",
	"management",
	"implementation",
	"commissioning",
}
