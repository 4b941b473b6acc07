package domain

import "fmt"

// Result is the binary outcome of classifying a part image.
type Result string

const (
	ResultOK  Result = "OK"
	ResultNOK Result = "NOK"
)

// Classification carries the chosen label and the probability mass the model
// assigned to that label. Confidence is ≥ 0.5 by construction: it measures the
// winning class, never the raw NOK score.
type Classification struct {
	Result     Result  `json:"result"`
	Confidence float64 `json:"confidence"`
}

// Decide applies the threshold rule to a raw model score, interpreted as
// P(NOK) in [0,1]. Scores outside that range violate the model contract.
func Decide(score float64) (Classification, error) {
	if score < 0 || score > 1 {
		return Classification{}, fmt.Errorf("model score %v outside [0,1]: %w", score, ErrModelOutput)
	}
	if score >= 0.5 {
		return Classification{Result: ResultNOK, Confidence: score}, nil
	}
	return Classification{Result: ResultOK, Confidence: 1 - score}, nil
}
