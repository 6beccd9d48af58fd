package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	domerrors "github.com/Tomas-vilte/DoraPulse/internal/domain/errors"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
)

// SummaryKind selects which metric-summary prompt a request uses. The seven
// data+model endpoints are instances of one flow parameterized by kind.
type SummaryKind string

const (
	KindDoraScore                 SummaryKind = "dora_score"
	KindLeadTimeTrends            SummaryKind = "lead_time_trends"
	KindDeploymentFrequencyTrends SummaryKind = "deployment_frequency_trends"
	KindChangeFailureRateTrends   SummaryKind = "change_failure_rate_trends"
	KindMeanTimeToRecoveryTrends  SummaryKind = "mean_time_to_recovery_trends"
	KindDoraTrends                SummaryKind = "dora_trends"
	KindCompiledSummary           SummaryKind = "compiled_summary"
	KindContributorSummary        SummaryKind = "contributor_summary"
)

// Section is one titled block of a prompt document.
type Section struct {
	Title string
	Body  string
}

// Document is a structured prompt. Building is pure and deterministic:
// identical inputs always render identical text.
type Document struct {
	Sections []Section
}

// Render flattens the document into the provider-agnostic prompt text.
func (d Document) Render() string {
	var b strings.Builder
	for i, s := range d.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if s.Title != "" {
			b.WriteString(s.Title)
			b.WriteString(":\n")
		}
		b.WriteString(s.Body)
	}
	return b.String()
}

type summaryTemplate struct {
	role         string
	dataLabel    string
	instructions []string
	outputFormat string
}

var summaryTemplates = map[SummaryKind]summaryTemplate{
	KindDoraScore: {
		role:      "You are a DORA metrics expert evaluating a team's software delivery performance.",
		dataLabel: "DORA metrics data",
		instructions: []string{
			"Score each of the four DORA metrics on a 1-10 scale.",
			"Compute an overall DORA score as the average of the four.",
			"Classify the team as Elite, High, Medium or Low performing.",
			"Justify each score with the specific values in the data.",
		},
		outputFormat: "Respond in Markdown with the headings: ## DORA Score, ## Metric Breakdown, ## Classification.",
	},
	KindLeadTimeTrends: {
		role:      "You are a DORA metrics expert analyzing lead time for changes.",
		dataLabel: "Lead time trend data",
		instructions: []string{
			"Identify the overall lead time trend across the period.",
			"Call out the weeks with the largest improvements and regressions.",
			"Suggest concrete actions to reduce lead time.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Trend Summary, ## Notable Changes, ## Recommendations.",
	},
	KindDeploymentFrequencyTrends: {
		role:      "You are a DORA metrics expert analyzing deployment frequency.",
		dataLabel: "Deployment frequency trend data",
		instructions: []string{
			"Identify the overall deployment frequency trend across the period.",
			"Highlight gaps or bursts in deployment activity.",
			"Suggest concrete actions to deploy more frequently and reliably.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Trend Summary, ## Notable Changes, ## Recommendations.",
	},
	KindChangeFailureRateTrends: {
		role:      "You are a DORA metrics expert analyzing change failure rate.",
		dataLabel: "Change failure rate trend data",
		instructions: []string{
			"Identify the overall change failure rate trend across the period.",
			"Point out clusters of failed changes and likely common causes.",
			"Suggest concrete actions to lower the failure rate.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Trend Summary, ## Notable Changes, ## Recommendations.",
	},
	KindMeanTimeToRecoveryTrends: {
		role:      "You are a DORA metrics expert analyzing mean time to recovery.",
		dataLabel: "Mean time to recovery trend data",
		instructions: []string{
			"Identify the overall recovery time trend across the period.",
			"Call out incidents with unusually long recovery times.",
			"Suggest concrete actions to recover from failures faster.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Trend Summary, ## Notable Changes, ## Recommendations.",
	},
	KindDoraTrends: {
		role:      "You are a DORA metrics expert analyzing all four DORA metric trends together.",
		dataLabel: "DORA trend data",
		instructions: []string{
			"Summarize the trend of each of the four DORA metrics.",
			"Explain how the metrics influence each other in this data.",
			"Give an overall verdict on whether delivery performance is improving.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Lead Time, ## Deployment Frequency, ## Change Failure Rate, ## Mean Time to Recovery, ## Overall.",
	},
	KindCompiledSummary: {
		role:      "You are a DORA metrics expert writing a compiled report of a team's delivery performance.",
		dataLabel: "Compiled DORA data",
		instructions: []string{
			"Write an executive summary of the team's delivery performance.",
			"Cover each DORA metric with its current value and trend.",
			"Close with the three highest-impact improvement opportunities.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Executive Summary, ## Metrics, ## Opportunities.",
	},
	KindContributorSummary: {
		role:      "You are an engineering analytics expert summarizing contributor activity across a team's repositories.",
		dataLabel: "Contributor data",
		instructions: []string{
			"Summarize how contributions are distributed across the team.",
			"Highlight the most active contributors and any concentration risk.",
			"Note contributors active across multiple repositories.",
		},
		outputFormat: "Respond in Markdown with the headings: ## Overview, ## Key Contributors, ## Distribution.",
	},
}

// BuildSummaryPrompt builds the prompt for a metric-summary request.
func BuildSummaryPrompt(kind SummaryKind, data map[string]interface{}) (Document, error) {
	tmpl, ok := summaryTemplates[kind]
	if !ok {
		return Document{}, fmt.Errorf("plantilla de resumen '%s' no registrada", kind)
	}

	return Document{
		Sections: []Section{
			{Body: tmpl.role},
			{Title: tmpl.dataLabel, Body: renderData(data)},
			{Title: "Instructions", Body: renderInstructions(tmpl.instructions)},
			{Title: "Output format", Body: tmpl.outputFormat},
		},
	}, nil
}

// BuildAgentPrompt builds the prompt for a dora_agent request. The feature
// tag must already be parsed; metadata values that are absent render as
// empty strings, never as an error.
func BuildAgentPrompt(feature models.Feature, query string, data map[string]interface{}) (Document, error) {
	if _, ok := models.ParseFeature(feature.String()); !ok {
		return Document{}, domerrors.NewInvalidFeatureError(feature.String())
	}
	meta := feature.Meta()

	metaBlock := strings.Join([]string{
		"Focus metrics: " + strings.Join(meta.FocusMetrics, ", "),
		"Key indicators: " + strings.Join(meta.KeyIndicators, ", "),
		"Improvement areas: " + strings.Join(meta.ImprovementAreas, ", "),
		"Response style: " + meta.ResponseStyle,
	}, "\n")

	instructions := []string{
		"Answer the user's question using only the provided data.",
		"Ground every claim in a specific value from the data.",
		"Focus the analysis on the listed focus metrics and key indicators.",
		"If the data cannot answer the question, say so explicitly.",
	}

	return Document{
		Sections: []Section{
			{Body: "You are a DORA metrics assistant answering questions about a team's delivery data."},
			{Title: "User question", Body: query},
			{Title: "Data", Body: renderData(data)},
			{Title: "Analysis context", Body: metaBlock},
			{Title: "Instructions", Body: renderInstructions(instructions)},
			{Title: "Output format", Body: "Respond in Markdown, using bullet lists for enumerations."},
		},
	}, nil
}

// renderData renders the free-form payload as indented JSON. encoding/json
// sorts map keys, which keeps rendering deterministic.
func renderData(data map[string]interface{}) string {
	if len(data) == 0 {
		return "{}"
	}
	rendered, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(rendered)
}

func renderInstructions(instructions []string) string {
	lines := make([]string, len(instructions))
	for i, instruction := range instructions {
		lines[i] = fmt.Sprintf("%d. %s", i+1, instruction)
	}
	return strings.Join(lines, "\n")
}
