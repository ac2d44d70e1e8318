package aggregator

// rescale implements the Gibson-Bruck time-rescaling rule (§4.E): a channel
// whose rate changed but which did not just fire reuses its previously drawn
// waiting time, rescaled to the new rate, preserving the correct conditional
// firing-time distribution; the channel that just fired draws fresh.
func (a *Aggregator[T]) rescale(rx int, oldRate, newRate, oldTime, t T) T {
	switch {
	case rx == a.prevJump:
		// Case A: rx just fired, draw fresh
		if newRate > 0 {
			return t + a.source.RandExp()/newRate
		}

		return positiveInfinity[T]()

	case oldRate > 0:
		// Case B: rx did not fire and had a positive rate, rescale the old wait
		if newRate > 0 {
			return t + (oldRate/newRate)*(oldTime-t)
		}

		return positiveInfinity[T]()

	default:
		// Case C: rx did not fire and was at rate 0, no prior wait to rescale
		if newRate > 0 {
			return t + a.source.RandExp()/newRate
		}

		return positiveInfinity[T]()
	}
}
