package proofanalysis

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"page-control-backend/config"
	yagptclient "page-control-backend/lib/proof-analysis/yagpt-client"
	analysisapimodels "page-control-backend/models/api/analysis"
)

const requestTimeout = 30 * time.Second

const analysisPrompt = `You review proof images of banked working hours. ` +
	`Given a description of the submitted proof and the declared hour count, reply with a single JSON object: ` +
	`{"approved": bool, "detected_hours": number, "confidence": 0-100, "reason": string}. ` +
	`Reject when the proof does not plausibly support the declared hours.`

type Provider interface {
	Analyze(ctx context.Context, declaredHours float64, image string) (analysisapimodels.AnalysisResult, error)
}

var Instance Provider

// NewHandler wires either the real LLM-backed analyzer or the deterministic
// simulation used in local/dev environments.
func NewHandler(useStub bool) {
	if useStub {
		Instance = stubImpl{}
		return
	}
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
	}
}

type impl struct {
	client yagptclient.Provider
}

func (i impl) Analyze(ctx context.Context, declaredHours float64, image string) (result analysisapimodels.AnalysisResult, err error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text := fmt.Sprintf("Declared hours: %.1f. Proof image (base64, may be truncated): %.512s", declaredHours, image)
	answer, err := i.client.CompleteWithPrompt(reqCtx, analysisPrompt, text)
	if err != nil {
		log.WithError(err).Error("proof analysis request failed")
		return result, err
	}
	result, err = parseVerdict(answer)
	if err != nil {
		log.
			WithField("answer", answer).
			WithError(err).
			Error("proof analysis returned an unparseable verdict")
		return result, err
	}
	return result, nil
}

// parseVerdict extracts the JSON object from the model answer; models tend to
// wrap it in prose or code fences.
func parseVerdict(answer string) (result analysisapimodels.AnalysisResult, err error) {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end <= start {
		return result, errors.New("no JSON object in model answer")
	}
	if err = json.Unmarshal([]byte(answer[start:end+1]), &result); err != nil {
		return result, errors.Wrap(err, "failed to decode verdict")
	}
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 100 {
		result.Confidence = 100
	}
	return result, nil
}

// stubImpl simulates analysis deterministically from the image payload so
// repeated submissions of the same proof give the same verdict.
type stubImpl struct{}

func (s stubImpl) Analyze(_ context.Context, declaredHours float64, image string) (analysisapimodels.AnalysisResult, error) {
	sum := sha256.Sum256([]byte(image))
	seed := int(sum[0])

	// detected hours stay within one half-hour step of the declaration
	detected := declaredHours + float64(seed%3-1)*0.5
	if detected < 0.5 {
		detected = 0.5
	}
	detected = math.Round(detected*2) / 2

	confidence := 60 + seed%40
	approved := confidence >= 70 && math.Abs(detected-declaredHours) <= 0.5
	reason := "Simulated analysis: proof matches the declared hours"
	if !approved {
		reason = "Simulated analysis: proof does not sufficiently support the declared hours"
	}
	return analysisapimodels.AnalysisResult{
		Approved:      approved,
		DetectedHours: detected,
		Confidence:    confidence,
		Reason:        reason,
	}, nil
}
