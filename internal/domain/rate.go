package domain

// RatePair is an ordered conversion direction. (USD, EUR) and (EUR, USD)
// are distinct keys; no automatic inversion happens anywhere.
type RatePair struct {
	From Code
	To   Code
}

func (p RatePair) Reversed() RatePair {
	return RatePair{
		From: p.To,
		To:   p.From,
	}
}

func (p RatePair) String() string {
	return string(p.From) + "/" + string(p.To)
}
