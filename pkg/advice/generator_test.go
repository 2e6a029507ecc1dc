package advice

import (
	"testing"

	"finance-advisor-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

// fixedRand always picks the same template index.
type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }

func TestGenerateSubstitutesInput(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	response, err := g.Generate("keep-or-sell", "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, "After analyzing AAPL, it's advisable to keep it. Market indicators suggest a potential 5-10% growth in the next 3 months.", response)
}

func TestGeneratePicksTemplateByRand(t *testing.T) {
	g := NewGenerator(fixedRand{2})

	response, err := g.Generate("sell-asset", "Bitcoin")
	assert.NoError(t, err)
	assert.Equal(t, "For Bitcoin, the technical indicators point to a potential downturn. Selling now might be prudent to avoid possible losses.", response)
}

func TestGenerateNoInputFeature(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	response, err := g.Generate("finance-news", "")
	assert.NoError(t, err)
	assert.Contains(t, response, "Tech stocks rallied 3%")
}

func TestGenerateUnknownFeatureFallsBack(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	response, err := g.Generate("crystal-ball", "")
	assert.NoError(t, err)
	assert.Equal(t, "Analysis complete. Thank you for using our AI advisor.", response)
}

func TestGenerateFuturePatrimoine(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	response, err := g.Generate("future-patrimoine", "10")
	assert.NoError(t, err)
	assert.Contains(t, response, "€148024.43")
	assert.Contains(t, response, "in 10 years")
}

func TestGenerateFuturePatrimoineTrimsInput(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	response, err := g.Generate("future-patrimoine", " 10 ")
	assert.NoError(t, err)
	assert.Contains(t, response, "€148024.43")
}

func TestFutureValue(t *testing.T) {
	assert.Equal(t, "100000.00", FutureValue(0).StringFixed(2))
	assert.Equal(t, "104000.00", FutureValue(1).StringFixed(2))
	assert.Equal(t, "148024.43", FutureValue(10).StringFixed(2))
}

func TestValidateInput(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	assert.NoError(t, g.ValidateInput("future-patrimoine", "10"))
	assert.NoError(t, g.ValidateInput("future-patrimoine", " 25 "))
	assert.NoError(t, g.ValidateInput("future-patrimoine", "200"))
	assert.ErrorIs(t, g.ValidateInput("future-patrimoine", "ten"), entity.ErrInvalidYearInput)
	assert.ErrorIs(t, g.ValidateInput("future-patrimoine", "2.5"), entity.ErrInvalidYearInput)
	assert.ErrorIs(t, g.ValidateInput("future-patrimoine", ""), entity.ErrInvalidYearInput)

	// Only the projection feature constrains its input.
	assert.NoError(t, g.ValidateInput("keep-or-sell", "anything at all"))
}

func TestValidateInputBoundsProjectionYears(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	// The horizon is capped so a single request cannot make the exact
	// decimal power arbitrarily expensive.
	for _, input := range []string{"0", "-3", "201", "50000000"} {
		assert.ErrorIs(t, g.ValidateInput("future-patrimoine", input), entity.ErrInvalidYearInput, "input %q", input)
	}
}

func TestGenerateRejectsOutOfRangeYears(t *testing.T) {
	g := NewGenerator(fixedRand{0})

	_, err := g.Generate("future-patrimoine", "50000000")
	assert.ErrorIs(t, err, entity.ErrInvalidYearInput)
	_, err = g.Generate("future-patrimoine", "0")
	assert.ErrorIs(t, err, entity.ErrInvalidYearInput)
}
