package reservation

type PriceCalculator interface {
	TotalCents(pricePerNightCents int64, stay StayPeriod) int64
}

// NightlyPriceCalculator prices a stay as nights x nightly rate.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) TotalCents(pricePerNightCents int64, stay StayPeriod) int64 {
	return int64(stay.Nights()) * pricePerNightCents
}
