package layout

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Mark labels one position of a range slider.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSliderProps configures a two-handle numeric slider.
type RangeSliderProps struct {
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Marks []Mark     `json:"marks"`
	Value [2]float64 `json:"value"`
}

// RangeSlider selects a [low, high] interval within [min, max].
func RangeSlider(id string, min, max, step float64, marks []Mark, value [2]float64) Node {
	return Node{
		Kind: KindRangeSlider,
		ID:   id,
		Slider: &RangeSliderProps{
			Min:   min,
			Max:   max,
			Step:  step,
			Marks: append([]Mark(nil), marks...),
			Value: value,
		},
	}
}

// Ticks returns every selectable position from Min to Max.
// Positions are accumulated in decimal so that 0.1 steps stay exact.
func (p *RangeSliderProps) Ticks() []float64 {
	if p == nil || p.Step <= 0 || p.Max < p.Min {
		return nil
	}
	step := decimal.NewFromFloat(p.Step)
	max := decimal.NewFromFloat(p.Max)
	ticks := []float64{}
	for at := decimal.NewFromFloat(p.Min); at.LessThanOrEqual(max); at = at.Add(step) {
		value, _ := at.Float64()
		ticks = append(ticks, value)
	}
	return ticks
}

// Snap rounds value to the closest tick within bounds.
func (p *RangeSliderProps) Snap(value float64) float64 {
	if value <= p.Min {
		return p.Min
	}
	if value >= p.Max {
		return p.Max
	}
	if p.Step <= 0 {
		return value
	}
	min := decimal.NewFromFloat(p.Min)
	step := decimal.NewFromFloat(p.Step)
	steps := decimal.NewFromFloat(value).Sub(min).Div(step).Round(0)
	snapped, _ := min.Add(steps.Mul(step)).Float64()
	return snapped
}

// Snapped returns [low, high] with both handles moved to their closest tick.
func (p *RangeSliderProps) Snapped(low, high float64) [2]float64 {
	return [2]float64{p.Snap(low), p.Snap(high)}
}

// Label returns the label of the mark placed at value, if any.
func (p *RangeSliderProps) Label(value float64) string {
	at := decimal.NewFromFloat(value)
	for _, mark := range p.Marks {
		if decimal.NewFromFloat(mark.Value).Equal(at) {
			return mark.Label
		}
	}
	return ""
}

func (p *RangeSliderProps) validate() error {
	if p == nil {
		return errors.New("missing slider properties")
	}
	if p.Step <= 0 {
		return errors.Errorf("step must be positive, got %v", p.Step)
	}
	if p.Min >= p.Max {
		return errors.Errorf("min %v must be lower than max %v", p.Min, p.Max)
	}
	if p.Value[0] > p.Value[1] || p.Value[0] < p.Min || p.Value[1] > p.Max {
		return errors.Errorf("value %v out of [%v, %v]", p.Value, p.Min, p.Max)
	}
	for _, mark := range p.Marks {
		if mark.Value < p.Min || mark.Value > p.Max {
			return errors.Errorf("mark %q at %v out of [%v, %v]", mark.Label, mark.Value, p.Min, p.Max)
		}
	}
	return nil
}
