// Package model defines the core domain entities for the number classifier.
package model

// Property tags reported in Classification.Properties.
const (
	PropertyArmstrong = "armstrong"
	PropertyEven      = "even"
	PropertyOdd       = "odd"
)

// Classification is the complete result of classifying a single integer.
// Field order matches the JSON payload served by the API.
//
// @Description Mathematical properties of a number plus a fun fact
// @Example {"number": 371, "is_prime": false, "is_perfect": false, "properties": ["armstrong", "odd"], "digit_sum": 11, "fun_fact": "371 is an Armstrong number because 3^3 + 7^3 + 1^3 = 371"}
type Classification struct {
	// Number is the classified integer
	Number int `json:"number" example:"371"`
	// IsPrime reports whether Number is prime
	IsPrime bool `json:"is_prime" example:"false"`
	// IsPerfect reports whether Number equals the sum of its proper divisors
	IsPerfect bool `json:"is_perfect" example:"false"`
	// Properties holds "armstrong" when applicable followed by exactly one of "even" or "odd"
	Properties []string `json:"properties" example:"armstrong,odd"`
	// DigitSum is the sum of the decimal digits of Number
	DigitSum int `json:"digit_sum" example:"11"`
	// FunFact is the text returned by the fact provider, or its fallback
	FunFact string `json:"fun_fact" example:"371 is an Armstrong number because 3^3 + 7^3 + 1^3 = 371"`
}

// Has reports whether the classification carries the given property tag.
func (c Classification) Has(property string) bool {
	for _, p := range c.Properties {
		if p == property {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slice memory with c.
func (c Classification) Clone() Classification {
	out := c
	if c.Properties != nil {
		out.Properties = make([]string, len(c.Properties))
		copy(out.Properties, c.Properties)
	}
	return out
}
