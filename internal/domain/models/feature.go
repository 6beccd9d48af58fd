package models

// Feature selecciona la plantilla de prompt y la metadata del agente DORA.
type Feature string

const (
	FeatureDoraMetrics         Feature = "dora_metrics"
	FeatureLeadTime            Feature = "lead_time"
	FeatureDeploymentFrequency Feature = "deployment_frequency"
	FeatureChangeFailureRate   Feature = "change_failure_rate"
	FeatureMeanTimeToRecovery  Feature = "mean_time_to_recovery"
)

// FeatureMeta is the metadata bundle attached to a feature's prompt
// template. Empty slices and strings render as empty text, never as a
// template error.
type FeatureMeta struct {
	FocusMetrics     []string
	KeyIndicators    []string
	ImprovementAreas []string
	ResponseStyle    string
}

// ParseFeature resolves a client-supplied feature tag.
func ParseFeature(tag string) (Feature, bool) {
	switch Feature(tag) {
	case FeatureDoraMetrics, FeatureLeadTime, FeatureDeploymentFrequency,
		FeatureChangeFailureRate, FeatureMeanTimeToRecovery:
		return Feature(tag), true
	default:
		return "", false
	}
}

// Meta returns the metadata bundle for the feature.
func (f Feature) Meta() FeatureMeta {
	switch f {
	case FeatureDoraMetrics:
		return FeatureMeta{
			FocusMetrics:     []string{"lead time", "deployment frequency", "change failure rate", "mean time to recovery"},
			KeyIndicators:    []string{"overall DORA score", "performance classification", "trend direction"},
			ImprovementAreas: []string{"delivery pipeline", "release cadence", "incident response"},
			ResponseStyle:    "executive summary",
		}
	case FeatureLeadTime:
		return FeatureMeta{
			FocusMetrics:     []string{"first commit to PR open", "review turnaround", "merge to deploy"},
			KeyIndicators:    []string{"median lead time", "p90 lead time", "week over week delta"},
			ImprovementAreas: []string{"review latency", "batch size", "deployment automation"},
			ResponseStyle:    "analytical breakdown",
		}
	case FeatureDeploymentFrequency:
		return FeatureMeta{
			FocusMetrics:     []string{"deployments per week", "active deployment days"},
			KeyIndicators:    []string{"average frequency", "longest gap between deployments"},
			ImprovementAreas: []string{"release automation", "feature flagging", "pipeline reliability"},
			ResponseStyle:    "analytical breakdown",
		}
	case FeatureChangeFailureRate:
		return FeatureMeta{
			FocusMetrics:     []string{"failed deployments", "total deployments", "failure ratio"},
			KeyIndicators:    []string{"change failure rate", "failure clustering"},
			ImprovementAreas: []string{"test coverage", "progressive rollout", "pre-deploy verification"},
			ResponseStyle:    "analytical breakdown",
		}
	case FeatureMeanTimeToRecovery:
		return FeatureMeta{
			FocusMetrics:     []string{"incident open to resolution", "detection time"},
			KeyIndicators:    []string{"mean time to recovery", "recovery trend"},
			ImprovementAreas: []string{"alerting", "rollback tooling", "runbook coverage"},
			ResponseStyle:    "analytical breakdown",
		}
	default:
		return FeatureMeta{}
	}
}

func (f Feature) String() string {
	return string(f)
}
