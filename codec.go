package gopoly

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON Serialization
// ============================================================

type termJSON struct {
	Coefficient float64         `json:"coefficient"`
	Powers      map[string]uint `json:"powers,omitempty"`
}

type polynomialJSON struct {
	Terms []Term `json:"terms"`
}

type divisionJSON struct {
	Numerator   Polynomial `json:"numerator"`
	Denominator Polynomial `json:"denominator"`
}

func (t Term) MarshalJSON() ([]byte, error) {
	out := termJSON{Coefficient: t.coeff}
	if len(t.powers) > 0 {
		out.Powers = make(map[string]uint, len(t.powers))
		for v, p := range t.powers {
			out.Powers[v.String()] = p
		}
	}
	return json.Marshal(out)
}

func (t *Term) UnmarshalJSON(data []byte) error {
	var in termJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	result := Const(in.Coefficient)
	for name, p := range in.Powers {
		v, err := ParseIndeterminate(name)
		if err != nil {
			return fmt.Errorf("term powers: %w", err)
		}
		result = result.Mul(NewTerm(1, v, p))
	}
	*t = result
	return nil
}

func (p Polynomial) MarshalJSON() ([]byte, error) {
	terms := p.terms
	if terms == nil {
		terms = []Term{}
	}
	return json.Marshal(polynomialJSON{Terms: terms})
}

// UnmarshalJSON decodes a term list and canonicalizes it.
func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var in polynomialJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*p = NewPolynomial(in.Terms...)
	return nil
}

func (d Division) MarshalJSON() ([]byte, error) {
	return json.Marshal(divisionJSON{Numerator: d.numerator, Denominator: d.denominator})
}

func (d *Division) UnmarshalJSON(data []byte) error {
	var in divisionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Numerator.IsZero() && in.Denominator.IsZero() {
		*d = Division{}
		return nil
	}
	result, err := Divide(in.Numerator, in.Denominator)
	if err != nil {
		return err
	}
	*d = result
	return nil
}
