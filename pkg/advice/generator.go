package advice

import (
	"math/rand"
	"strconv"
	"strings"

	"finance-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
)

const (
	inputToken      = "[input]"
	calculatedToken = "[calculated]"

	// Feature id with the compound-growth projection.
	FutureFeatureId = "future-patrimoine"

	// MaxProjectionYears caps the projection horizon. The exponent drives
	// the cost of the exact decimal power, so unbounded input would let a
	// single request burn CPU without limit.
	MaxProjectionYears = 200
)

// Projection constants for future-patrimoine. Illustrative values, not
// derived from the user's actual portfolio.
var (
	projectionPresentValue = decimal.NewFromInt(100000)
	projectionAnnualRate   = decimal.NewFromFloat(0.04)
)

// Rand is the randomness source used for template selection. Injecting it
// keeps the generator deterministic under test.
type Rand interface {
	Intn(n int) int
}

// SystemRand draws from math/rand's shared, lock-guarded source.
type SystemRand struct{}

func (SystemRand) Intn(n int) int { return rand.Intn(n) }

// Generator produces canned advisor responses. It has no side effects and is
// fully deterministic given a fixed Rand.
type Generator struct {
	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// ValidateInput checks feature-specific input rules without generating
// anything. The purchase workflow calls this before any balance mutation so
// a rejected projection never costs the user money.
func (g *Generator) ValidateInput(featureId, input string) error {
	if featureId == FutureFeatureId {
		if _, err := parseYears(input); err != nil {
			return err
		}
	}
	return nil
}

// parseYears parses a projection horizon: a whole number of years between 1
// and MaxProjectionYears.
func parseYears(input string) (int, error) {
	years, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || years < 1 || years > MaxProjectionYears {
		return 0, entity.ErrInvalidYearInput
	}
	return years, nil
}

// Generate selects a template for the feature uniformly at random and fills
// in the placeholder tokens. Feature ids without a template set fall back to
// a single generic response.
func (g *Generator) Generate(featureId, input string) (string, error) {
	templates, ok := responseTemplates[featureId]
	if !ok {
		templates = []string{fallbackResponse}
	}
	response := templates[g.rng.Intn(len(templates))]

	if input != "" {
		response = strings.ReplaceAll(response, inputToken, input)
	}

	if featureId == FutureFeatureId {
		years, err := parseYears(input)
		if err != nil {
			return "", err
		}
		future := FutureValue(years)
		response = strings.ReplaceAll(response, calculatedToken, future.StringFixed(2))
	}

	return response, nil
}

// FutureValue computes presentValue x (1 + annualRate)^years.
func FutureValue(years int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(projectionAnnualRate).Pow(decimal.NewFromInt(int64(years)))
	return projectionPresentValue.Mul(growth)
}
