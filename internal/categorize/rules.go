package categorize

import "regexp"

// CategoryRule defines one spending category's matching vocabulary.
// Merchants are curated brand names matched at high confidence; keywords are
// broader, lower-confidence terms. Rules are evaluated in slice order, so
// when a description could match two categories the earlier one wins. That
// ordering is a deliberate tie-break, not an accident.
type CategoryRule struct {
	Category  string   `yaml:"category"`
	Merchants []string `yaml:"merchants"`
	Keywords  []string `yaml:"keywords"`
}

// DefaultRules returns the built-in category table. The returned slice is
// freshly allocated; the categorizer treats its copy as immutable for the
// process lifetime.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{
			Category: "Food & Dining",
			Merchants: []string{
				"zomato", "swiggy", "uber eats", "dominos", "mcdonald", "kfc", "pizza hut",
				"starbucks", "haldiram", "barbeque nation", "bigbasket",
				"blinkit", "zepto", "instamart",
			},
			Keywords: []string{
				"restaurant", "cafe", "eatery", "bakery", "dhaba", "food court",
				"grocery", "kirana",
			},
		},
		{
			Category: "Transportation",
			Merchants: []string{
				"uber", "ola", "rapido", "irctc", "redbus", "makemytrip",
				"indigo", "spicejet",
			},
			Keywords: []string{
				"fuel", "petrol", "diesel", "toll", "parking", "cab fare",
				"railway",
			},
		},
		{
			Category: "Shopping",
			Merchants: []string{
				"amazon", "flipkart", "myntra", "ajio", "nykaa", "meesho",
				"dmart", "croma", "decathlon",
			},
			Keywords: []string{
				"shopping", "mall", "apparel", "footwear", "lifestyle",
			},
		},
		{
			Category: "Entertainment",
			Merchants: []string{
				"netflix", "hotstar", "spotify", "bookmyshow", "pvr", "inox",
				"sonyliv", "jiocinema",
			},
			Keywords: []string{
				"movie", "cinema", "streaming", "gaming", "concert",
			},
		},
		{
			Category: "Utilities",
			Merchants: []string{
				"airtel", "jio", "vodafone", "bsnl", "tata power", "bescom",
				"adani electricity",
			},
			Keywords: []string{
				"recharge", "electricity", "broadband", "postpaid", "dth",
				"water bill", "gas bill",
			},
		},
		{
			Category: "Healthcare",
			Merchants: []string{
				"apollo", "pharmeasy", "netmeds", "1mg", "practo", "medplus",
			},
			Keywords: []string{
				"hospital", "pharmacy", "clinic", "diagnostic", "doctor",
			},
		},
		{
			Category: "Education",
			Merchants: []string{
				"byjus", "unacademy", "udemy", "coursera", "vedantu",
			},
			Keywords: []string{
				"school fee", "tuition", "college", "exam fee", "course",
			},
		},
		{
			Category: "Rent & Housing",
			Merchants: []string{
				"nobroker", "nestaway", "housing com",
			},
			Keywords: []string{
				"rent", "maintenance", "society", "brokerage",
			},
		},
		{
			Category: "Investment",
			Merchants: []string{
				"zerodha", "groww", "upstox", "kuvera", "coin", "smallcase",
			},
			Keywords: []string{
				"mutual fund", "sip", "nse", "bse", "equity", "trading",
				"fixed deposit",
			},
		},
	}
}

// subcategoryRule maps a description pattern to a subcategory name within
// one category.
type subcategoryRule struct {
	name    string
	pattern *regexp.Regexp
}

// subcategoryTables is keyed by category. Only a subset of categories has
// subcategories; lookups for the rest return nothing.
var subcategoryTables = map[string][]subcategoryRule{
	"Food & Dining": {
		{"Food Delivery", regexp.MustCompile(`zomato|swiggy|uber eats`)},
		{"Groceries", regexp.MustCompile(`bigbasket|blinkit|zepto|instamart|grocery|kirana`)},
		{"Restaurants", regexp.MustCompile(`restaurant|cafe|dominos|mcdonald|kfc|pizza hut|starbucks`)},
	},
	"Transportation": {
		{"Ride Hailing", regexp.MustCompile(`uber|ola|rapido`)},
		{"Fuel", regexp.MustCompile(`fuel|petrol|diesel|hpcl|iocl|bpcl`)},
		{"Travel Booking", regexp.MustCompile(`irctc|redbus|makemytrip|indigo|spicejet`)},
	},
	"Shopping": {
		{"Online Shopping", regexp.MustCompile(`amazon|flipkart|myntra|ajio|nykaa|meesho`)},
	},
	"Entertainment": {
		{"Streaming", regexp.MustCompile(`netflix|hotstar|spotify|sonyliv|jiocinema`)},
		{"Movies", regexp.MustCompile(`bookmyshow|pvr|inox|cinema`)},
	},
	"Utilities": {
		{"Mobile & Internet", regexp.MustCompile(`airtel|jio|vodafone|bsnl|recharge|broadband|postpaid`)},
		{"Electricity", regexp.MustCompile(`electricity|bescom|tata power|adani`)},
	},
	"Investment": {
		{"Stock Broking", regexp.MustCompile(`zerodha|groww|upstox|trading|equity`)},
		{"Mutual Funds", regexp.MustCompile(`mutual fund|sip|kuvera`)},
	},
}
