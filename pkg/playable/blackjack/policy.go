package blackjack

// dealerHitThrough is the highest total the dealer will hit on
const dealerHitThrough = 16

// HittingPolicy decides whether a participant takes another card
type HittingPolicy interface {
	IsHitting(p *Participant) (bool, error)
}

// DecisionPolicy asks a Decider, used for players
type DecisionPolicy struct {
	Decider Decider
}

// IsHitting returns what the decider wants to do
func (d DecisionPolicy) IsHitting(p *Participant) (bool, error) {
	return d.Decider.WantsCard(p.View())
}

// ThresholdPolicy hits while the total is at or under HitThrough, used for the dealer
type ThresholdPolicy struct {
	HitThrough int
}

// IsHitting returns true if the total is <= HitThrough
func (t ThresholdPolicy) IsHitting(p *Participant) (bool, error) {
	return p.Hand.Total() <= t.HitThrough, nil
}
