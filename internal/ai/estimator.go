package ai

import "hash/fnv"

// ScoreEstimator produces a risk score without the external model.
type ScoreEstimator interface {
	Score(document string) int
}

// DocumentEstimator is the secondary fallback scorer used by the async
// pipeline when the gateway itself already degraded. It hashes the document
// into [0,100] so repeated runs for the same applicant agree.
type DocumentEstimator struct{}

func NewDocumentEstimator() DocumentEstimator {
	return DocumentEstimator{}
}

func (DocumentEstimator) Score(document string) int {
	h := fnv.New32a()
	h.Write([]byte(document))
	return int(h.Sum32() % 101)
}
