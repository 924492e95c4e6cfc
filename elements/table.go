package elements

import "sync"

// Isotope is one stable isotope of an element: its mass in daltons, its
// natural abundance, and the precomputed correctly-rounded logarithm of
// that abundance.
type Isotope struct {
	Mass         float64
	Abundance    float64
	LogAbundance float64
}

// Element groups the stable isotopes of a chemical element.
type Element struct {
	Symbol   string
	Name     string
	Isotopes []Isotope
}

// Masses returns the isotope masses of e, in table order.
func (e Element) Masses() []float64 {
	out := make([]float64, len(e.Isotopes))
	for i, iso := range e.Isotopes {
		out[i] = iso.Mass
	}

	return out
}

// Abundances returns the isotope abundances of e, in table order.
func (e Element) Abundances() []float64 {
	out := make([]float64, len(e.Isotopes))
	for i, iso := range e.Isotopes {
		out[i] = iso.Abundance
	}

	return out
}

// Table lists the supported elements. The log-abundance constants were
// computed once at 50-digit precision and rounded to the nearest float64.
var Table = []Element{
	{Symbol: "H", Name: "hydrogen", Isotopes: []Isotope{
		{Mass: 1.00782503207, Abundance: 0.999885, LogAbundance: -0.00011500661300700207},
		{Mass: 2.0141017778, Abundance: 0.000115, LogAbundance: -9.070578429601024},
	}},
	{Symbol: "C", Name: "carbon", Isotopes: []Isotope{
		{Mass: 12.0, Abundance: 0.9893, LogAbundance: -0.010757656652960164},
		{Mass: 13.0033548378, Abundance: 0.0107, LogAbundance: -4.537511537514277},
	}},
	{Symbol: "N", Name: "nitrogen", Isotopes: []Isotope{
		{Mass: 14.0030740048, Abundance: 0.99636, LogAbundance: -0.003646640920197499},
		{Mass: 15.0001088982, Abundance: 0.00364, LogAbundance: -5.615771597333488},
	}},
	{Symbol: "O", Name: "oxygen", Isotopes: []Isotope{
		{Mass: 15.99491461956, Abundance: 0.99757, LogAbundance: -0.002432957241702941},
		{Mass: 16.99913170, Abundance: 0.00038, LogAbundance: -7.875339305243843},
		{Mass: 17.9991610, Abundance: 0.00205, LogAbundance: -6.18991548583182},
	}},
	{Symbol: "S", Name: "sulfur", Isotopes: []Isotope{
		{Mass: 31.97207100, Abundance: 0.9499, LogAbundance: -0.05139856308600029},
		{Mass: 32.97145876, Abundance: 0.0075, LogAbundance: -4.892852258439873},
		{Mass: 33.96786690, Abundance: 0.0425, LogAbundance: -3.158251203051766},
		{Mass: 35.96708076, Abundance: 0.0001, LogAbundance: -9.210340371976184},
	}},
	{Symbol: "P", Name: "phosphorus", Isotopes: []Isotope{
		{Mass: 30.97376163, Abundance: 1.0, LogAbundance: 0},
	}},
	{Symbol: "F", Name: "fluorine", Isotopes: []Isotope{
		{Mass: 18.99840322, Abundance: 1.0, LogAbundance: 0},
	}},
	{Symbol: "Na", Name: "sodium", Isotopes: []Isotope{
		{Mass: 22.9897692809, Abundance: 1.0, LogAbundance: 0},
	}},
	{Symbol: "I", Name: "iodine", Isotopes: []Isotope{
		{Mass: 126.904473, Abundance: 1.0, LogAbundance: 0},
	}},
	{Symbol: "Cl", Name: "chlorine", Isotopes: []Isotope{
		{Mass: 34.96885268, Abundance: 0.7576, LogAbundance: -0.2775997371102686},
		{Mass: 36.96590259, Abundance: 0.2424, LogAbundance: -1.4171660247869777},
	}},
	{Symbol: "K", Name: "potassium", Isotopes: []Isotope{
		{Mass: 38.96370668, Abundance: 0.932581, LogAbundance: -0.06979926796578442},
		{Mass: 39.96399848, Abundance: 0.000117, LogAbundance: -9.053336623166517},
		{Mass: 40.96182576, Abundance: 0.067302, LogAbundance: -2.698565325090996},
	}},
	{Symbol: "Br", Name: "bromine", Isotopes: []Isotope{
		{Mass: 78.9183371, Abundance: 0.5069, LogAbundance: -0.6794415335038334},
		{Mass: 80.9162906, Abundance: 0.4931, LogAbundance: -0.7070432857520567},
	}},
	{Symbol: "Si", Name: "silicon", Isotopes: []Isotope{
		{Mass: 27.9769265325, Abundance: 0.92223, LogAbundance: -0.08096062883429113},
		{Mass: 28.976494700, Abundance: 0.04685, LogAbundance: -3.060804270297706},
		{Mass: 29.97377017, Abundance: 0.03092, LogAbundance: -3.476352055262916},
	}},
	{Symbol: "Fe", Name: "iron", Isotopes: []Isotope{
		{Mass: 53.9396105, Abundance: 0.05845, LogAbundance: -2.8395835910640597},
		{Mass: 55.9349375, Abundance: 0.91754, LogAbundance: -0.08605910327347631},
		{Mass: 56.9353940, Abundance: 0.02119, LogAbundance: -3.8542259067019295},
		{Mass: 57.9332756, Abundance: 0.00282, LogAbundance: -5.871018394032115},
	}},
}

var (
	indexOnce sync.Once
	bySymbol  map[string]Element
	byAbund   map[float64]float64
)

func buildIndexes() {
	bySymbol = make(map[string]Element, len(Table))
	byAbund = make(map[float64]float64)
	for _, e := range Table {
		bySymbol[e.Symbol] = e
		for _, iso := range e.Isotopes {
			byAbund[iso.Abundance] = iso.LogAbundance
		}
	}
}

// Lookup returns the element with the given symbol, if tabulated.
func Lookup(symbol string) (Element, bool) {
	indexOnce.Do(buildIndexes)
	e, ok := bySymbol[symbol]

	return e, ok
}

// LogAbundance matches p bit-for-bit against the tabulated abundances
// and returns the precomputed logarithm on a hit. Marginal construction
// uses this so that identical published abundances always produce
// identical log-probabilities.
func LogAbundance(p float64) (float64, bool) {
	indexOnce.Do(buildIndexes)
	lp, ok := byAbund[p]

	return lp, ok
}
