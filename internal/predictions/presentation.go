package predictions

import "github.com/clinvital/vitalis/internal/model"

// Probability tiers for presenting ranked diseases. Notable entries are
// worth surfacing to the clinician; high confidence entries warrant
// immediate attention.
const (
	NotableThreshold        = 0.3
	HighConfidenceThreshold = 0.5
)

// Assessment is the presentation layer over a raw prediction result. The
// tier slices preserve the descending ranked order.
type Assessment struct {
	Predicted      []string     `json:"predicted"`
	Ranked         []model.Rank `json:"ranked"`
	Notable        []model.Rank `json:"notable"`
	HighConfidence []model.Rank `json:"high_confidence"`
	Advice         []string     `json:"advice"`
}

// Assess builds the presentation view of a prediction outcome.
func Assess(predicted []string, ranked []model.Rank) Assessment {
	a := Assessment{
		Predicted:      predicted,
		Ranked:         ranked,
		Notable:        make([]model.Rank, 0),
		HighConfidence: make([]model.Rank, 0),
		Advice:         Advice(predicted),
	}

	if a.Predicted == nil {
		a.Predicted = []string{}
	}

	for _, rank := range ranked {
		if rank.Probability > NotableThreshold {
			a.Notable = append(a.Notable, rank)
		}
		if rank.Probability > HighConfidenceThreshold {
			a.HighConfidence = append(a.HighConfidence, rank)
		}
	}

	return a
}
