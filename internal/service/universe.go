package service

import (
	"math/rand"
	"strings"
)

// universeTickers is the fixed pool random runs sample from.
var universeTickers = []string{
	"AAPL", "BAC", "DIS", "INTC", "MMM", "NKE", "PG", "T", "UBER", "XOM",
	"ABBV", "CMCSA", "GOOGL", "JNJ", "MO", "ORCL", "PYPL", "TM", "VZ", "ABT",
	"CSCO", "HSBC", "JPM", "MRK", "PEP", "RTX", "TMUS", "WFC", "AMZN", "CVX",
	"IBM", "KO", "NIO", "PFE", "SONY", "TSLA", "WMT", "MSFT", "NFLX", "AMD",
	"NVDA", "FB", "BA", "LMT", "GILD", "BIIB", "MDT", "BMY", "GE", "DAL",
	"LUV", "AAL", "CAT", "DE", "GS", "MS", "C", "BLK", "SQ", "ZM", "SPOT",
	"ADBE", "CRM", "TMO", "UNH", "MCD", "V", "MA", "HD", "LOW", "SBUX",
}

var tickerDetails = map[string]string{
	"AAPL":  "Apple Inc. - Consumer technology: smartphones, computers and software.",
	"BAC":   "Bank of America Corp - Multinational banking and financial services.",
	"DIS":   "The Walt Disney Company - Mass media and entertainment conglomerate.",
	"INTC":  "Intel Corporation - Semiconductor manufacturing.",
	"MMM":   "3M Company - Industrial, safety, health care and consumer goods.",
	"NKE":   "Nike, Inc. - Athletic footwear, apparel and equipment.",
	"PG":    "Procter & Gamble Co. - Consumer goods.",
	"T":     "AT&T Inc. - Telecommunications.",
	"UBER":  "Uber Technologies, Inc. - Ride-hailing and delivery.",
	"XOM":   "Exxon Mobil Corporation - Oil and gas.",
	"ABBV":  "AbbVie Inc. - Biopharmaceuticals.",
	"CMCSA": "Comcast Corporation - Cable and NBCUniversal media.",
	"GOOGL": "Alphabet Inc. - Parent company of Google.",
	"JNJ":   "Johnson & Johnson - Medical devices, pharma and consumer goods.",
	"MO":    "Altria Group, Inc. - Tobacco products.",
	"ORCL":  "Oracle Corporation - Database software and cloud systems.",
	"PYPL":  "PayPal Holdings, Inc. - Online payments.",
	"TM":    "Toyota Motor Corporation - Automotive manufacturing.",
	"VZ":    "Verizon Communications Inc. - Telecommunications.",
	"ABT":   "Abbott Laboratories - Medical devices and health care.",
	"CSCO":  "Cisco Systems, Inc. - Networking hardware and software.",
	"HSBC":  "HSBC Holdings plc - Banking and financial services.",
	"JPM":   "JPMorgan Chase & Co. - Investment banking and financial services.",
	"MRK":   "Merck & Co., Inc. - Biopharmaceuticals.",
	"PEP":   "PepsiCo, Inc. - Food, snack and beverage.",
	"RTX":   "Raytheon Technologies Corporation - Aerospace and defense.",
	"TMUS":  "T-Mobile US, Inc. - Wireless network operator.",
	"WFC":   "Wells Fargo & Company - Financial services.",
	"AMZN":  "Amazon.com, Inc. - E-commerce and cloud computing.",
	"CVX":   "Chevron Corporation - Energy.",
	"IBM":   "International Business Machines Corporation - Technology and consulting.",
	"KO":    "The Coca-Cola Company - Beverages.",
	"NIO":   "NIO Inc. - Electric vehicles.",
	"PFE":   "Pfizer Inc. - Pharmaceuticals and biotechnology.",
	"SONY":  "Sony Corporation - Consumer electronics and entertainment.",
	"TSLA":  "Tesla, Inc. - Electric vehicles and clean energy.",
	"WMT":   "Walmart Inc. - Retail.",
	"MSFT":  "Microsoft Corporation - Software, consumer electronics and cloud.",
	"NFLX":  "Netflix, Inc. - Subscription streaming.",
	"AMD":   "Advanced Micro Devices, Inc. - Processors and related technologies.",
	"NVDA":  "NVIDIA Corporation - Graphics processing units.",
	"FB":    "Meta Platforms, Inc. - Social media and networking services.",
	"BA":    "The Boeing Company - Airplanes, rockets and satellites.",
	"LMT":   "Lockheed Martin Corporation - Aerospace, defense and security.",
	"GILD":  "Gilead Sciences, Inc. - Biopharmaceuticals.",
	"BIIB":  "Biogen Inc. - Biotechnology for neurodegenerative diseases.",
	"MDT":   "Medtronic plc - Medical technology.",
	"BMY":   "Bristol Myers Squibb - Pharmaceuticals.",
	"GE":    "General Electric Company - Aviation, power and renewables.",
	"DAL":   "Delta Air Lines, Inc. - Airline.",
	"LUV":   "Southwest Airlines Co. - Low-cost airline.",
	"AAL":   "American Airlines Group Inc. - Airline holding company.",
	"CAT":   "Caterpillar Inc. - Machinery and engines.",
	"DE":    "Deere & Company - Agricultural and construction machinery.",
	"GS":    "The Goldman Sachs Group, Inc. - Investment banking.",
	"MS":    "Morgan Stanley - Investment management and financial services.",
	"C":     "Citigroup Inc. - Investment banking and financial services.",
	"BLK":   "BlackRock, Inc. - Investment management.",
	"SQ":    "Block, Inc. - Financial services and digital payments.",
	"ZM":    "Zoom Video Communications, Inc. - Videotelephony.",
	"SPOT":  "Spotify Technology S.A. - Audio streaming.",
	"ADBE":  "Adobe Inc. - Software.",
	"CRM":   "Salesforce, Inc. - Customer relationship management software.",
	"TMO":   "Thermo Fisher Scientific Inc. - Scientific instrumentation.",
	"UNH":   "UnitedHealth Group Incorporated - Managed healthcare and insurance.",
	"MCD":   "McDonald's Corporation - Fast food.",
	"V":     "Visa Inc. - Payments.",
	"MA":    "Mastercard Incorporated - Payments.",
	"HD":    "The Home Depot, Inc. - Home improvement retail.",
	"LOW":   "Lowe's Companies, Inc. - Home improvement retail.",
	"SBUX":  "Starbucks Corporation - Coffeehouses.",
}

// UniverseTickers returns a copy of the fixed ticker universe.
func UniverseTickers() []string {
	out := make([]string, len(universeTickers))
	copy(out, universeTickers)
	return out
}

// TickerDetail returns a short description for a ticker, or a placeholder for
// symbols outside the built-in universe.
func TickerDetail(ticker string) string {
	if detail, ok := tickerDetails[strings.ToUpper(ticker)]; ok {
		return detail
	}
	return "No details available for " + strings.ToUpper(ticker)
}

// Sampler selects n tickers from a universe. Injectable so tests can pin the
// selection.
type Sampler interface {
	Sample(universe []string, n int) []string
}

type randomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler samples without replacement, seeded by system randomness at
// construction time. The search itself has no further nondeterminism.
func NewRandomSampler(seed int64) Sampler {
	return &randomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSampler) Sample(universe []string, n int) []string {
	if n >= len(universe) {
		out := make([]string, len(universe))
		copy(out, universe)
		return out
	}

	perm := s.rng.Perm(len(universe))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, universe[idx])
	}
	return out
}

// FixedSampler always returns the same tickers, for reproducible runs.
type FixedSampler struct {
	Tickers []string
}

func (s FixedSampler) Sample(_ []string, _ int) []string {
	return s.Tickers
}
