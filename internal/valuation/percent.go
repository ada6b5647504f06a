package valuation

import "github.com/shopspring/decimal"

// Percent is a percentage that may be not applicable, which is the case
// whenever its denominator was zero. A not applicable Percent encodes to JSON
// null.
type Percent struct {
	Value      decimal.Decimal
	Applicable bool
}

func NotApplicable() Percent {
	return Percent{Value: decimal.Zero}
}

func percentOf(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		return NotApplicable()
	}
	return Percent{Value: num.Mul(hundred).Div(den), Applicable: true}
}

func (p Percent) Equal(q Percent) bool {
	if p.Applicable != q.Applicable {
		return false
	}
	return !p.Applicable || p.Value.Equal(q.Value)
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Applicable {
		return []byte("null"), nil
	}
	return p.Value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = NotApplicable()
		return nil
	}
	if err := p.Value.UnmarshalJSON(b); err != nil {
		return err
	}
	p.Applicable = true
	return nil
}
