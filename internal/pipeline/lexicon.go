package pipeline

import (
	"sort"
	"unicode/utf8"
)

// The lexicons below are the classifier's entire knowledge of Indian
// household finance speech: English, transliterated Hindi and Devanagari
// side by side. Matching everywhere is plain substring containment over
// the lowercased segment, so entries are stored lowercase. Slice order is
// part of the contract where noted.

// actionTriggers are the financial verbs that typically open a
// transaction phrase. The segmenter uses them to decide whether an
// "and"-separated part stands on its own and where an extraction window
// should begin.
var actionTriggers = []string{
	"paid", "spent", "bought", "purchased", "received", "got", "earned",
	"sent", "transferred", "deposited", "withdrew", "invested", "donated",
	"refunded", "reimbursed", "collected", "gave", "lent", "borrowed",
}

// highPriorityInflow terms weigh +5. Strong, unambiguous signals that
// money arrived.
var highPriorityInflow = []string{
	"received", "receive", "got", "earned", "income", "salary", "credited",
}

// inflowLexicon terms weigh +2 each, except entries literally present in
// highPriorityInflow, which are skipped to avoid double counting.
var inflowLexicon = []string{
	"received", "got", "earned", "income", "salary", "profit", "gain",
	"bonus", "commission", "refund", "reimbursement", "credit", "deposit",
	"payment received", "money received", "paid to me", "collected",
	"freelance payment", "client paid", "revenue", "sales", "winning",
	"receive", "get", "earn", "incoming", "credited", "transferred to me",
	// Hindi (transliterated)
	"mila", "milaa", "kamaya", "aamdani", "vetan", "tankhah", "labh",
	"प्राप्त", "मिला", "कमाया", "आमदनी", "वेतन", "तनख्वाह", "लाभ",
	// colloquial
	"mile", "aaya", "आया", "aa gaya", "आ गया", "paisa aaya", "पैसा आया",
	"paise mile", "पैसे मिले", "cash mila", "payment aa gayi", "पेमेंट आ गई",
	"cleared", "credit ho gaya", "क्रेडिट हो गया", "account mein aaya",
	"from", "se mila", "से मिला", "se aaya", "wapas mila", "वापस मिला",
	"liya", "लिया",
}

// highPriorityOutflow terms weigh +5.
var highPriorityOutflow = []string{
	"spent", "paid for", "bought", "purchase",
}

// outflowLexicon terms weigh +2 each, with the same high-priority
// exclusion as the inflow side.
var outflowLexicon = []string{
	"spent", "paid for", "expense", "bought", "purchase", "loss", "cost",
	"bill", "debit", "shopping", "invested", "donation",
	"sent money", "transferred", "withdrawal", "emi", "subscription",
	"gave", "lent", "repaid", "fee", "charges", "fine", "spend", "paid",
	// Hindi (transliterated)
	"kharch", "kharcha", "diya", "kharida", "bhara", "lagaya",
	"खर्च", "खर्चा", "दिया", "खरीदा", "भरा", "लगाया",
	// colloquial
	"de diya", "दे दिया", "de diye", "दे दिये", "kar diya", "कर दिया",
	"kharch kar diya", "खर्च कर दिया", "khareed liya", "खरीद लिया",
	"pay kiya", "पे किया", "payment kiya", "पेमेंट किया", "bhara", "भरा",
	"chukaya", "चुकाया", "lagaye", "लगाये", "paisa gaya", "पैसा गया",
	"udaya", "उड़ाया", "phoonk diya", "फूंक दिया",
	"lut gaya", "लुट गया", "barbaad", "बर्बाद",
	"for", "ke liye", "के लिए", "mein", "में", "pe", "पे", "par", "पर",
}

// numberPhrase maps a spoken number word or compound phrase to its value.
type numberPhrase struct {
	Phrase string
	Value  int64
}

// hindiNumbers is the transliterated-number lexicon. It is re-sorted at
// init so that longer phrases are probed first: "paanch sau" (500) must
// win over both "paanch" (5) and "sau" (100).
var hindiNumbers = []numberPhrase{
	{"paanch sau", 500}, {"पांच सौ", 500}, {"पाँच सौ", 500},
	{"das hajar", 10000}, {"दस हजार", 10000},
	{"pachas", 50}, {"पचास", 50}, {"sau", 100}, {"सौ", 100},
	{"hajar", 1000}, {"हजार", 1000},
	{"ek", 1}, {"एक", 1}, {"do", 2}, {"दो", 2}, {"teen", 3}, {"तीन", 3},
	{"char", 4}, {"चार", 4}, {"paanch", 5}, {"पांच", 5}, {"पाँच", 5},
	{"chhe", 6}, {"छह", 6}, {"saat", 7}, {"सात", 7}, {"aath", 8}, {"आठ", 8},
	{"nau", 9}, {"नौ", 9}, {"das", 10}, {"दस", 10}, {"bees", 20}, {"बीस", 20},
}

func init() {
	sort.SliceStable(hindiNumbers, func(i, j int) bool {
		return utf8.RuneCountInString(hindiNumbers[i].Phrase) >
			utf8.RuneCountInString(hindiNumbers[j].Phrase)
	})
}

// CategoryRule binds one category label to its keyword list. Rule order
// is first-match-wins, so the order of a rule slice is significant.
type CategoryRule struct {
	Category Category `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// defaultCategoryRules is the built-in taxonomy, in classification order.
// other_income comes last on purpose: its keywords ("mila", "aaya") are
// generic and must not pre-empt the specific categories.
var defaultCategoryRules = []CategoryRule{
	{CategorySalary, []string{
		"salary", "wages", "paycheck", "pay", "vetan", "tankhah", "वेतन", "तनख्वाह",
		"mazuri", "paisa", "pagar", "पगार", "माहवारी",
	}},
	{CategoryFreelance, []string{
		"freelance", "project", "client", "contract", "gig", "side hustle",
		"kaam", "काम", "project ka paisa", "client payment",
	}},
	{CategoryInvestment, []string{
		"dividend", "interest", "investment return", "stocks", "mutual fund", "nivesh", "निवेश",
		"sip", "share", "crypto", "bitcoin", "trading", "profit",
	}},
	{CategoryRefund, []string{
		"refund", "reimbursement", "cashback", "vapsi", "वापसी",
		"return", "wapas", "वापस", "paisa wapas", "money back",
	}},
	{CategoryFood, []string{
		"food", "restaurant", "lunch", "dinner", "breakfast", "meal", "swiggy", "zomato",
		"khana", "khane", "खाना", "bhojan", "भोजन",
		"chai", "tea", "coffee", "snacks", "nashta", "nasta", "नाश्ता", "biryani", "pizza", "burger",
		"dhabha", "ढाबा", "canteen", "tiffin", "टिफिन", "party", "treat", "मस्ती",
	}},
	{CategoryTransport, []string{
		"uber", "ola", "taxi", "metro", "bus", "travel", "petrol", "fuel", "cab", "yatra", "यात्रा",
		"rickshaw", "auto", "ricksha", "रिक्शा", "rapido", "bike", "scooty", "ride",
		"parking", "toll", "टोल", "diesel", "डीजल",
	}},
	{CategoryShopping, []string{
		"shopping", "clothes", "amazon", "flipkart", "purchase", "bought", "kharidari", "खरीदारी",
		"kapde", "कपड़े", "shoes", "jute", "जूते", "mall", "मॉल", "meesho", "myntra",
		"gift", "tohfa", "तोहफा", "saaman", "सामान", "stuff",
	}},
	{CategoryUtilities, []string{
		"electricity", "water", "gas", "internet", "mobile", "bill", "broadband", "bijli", "बिजली",
		"recharge", "रिचार्ज", "wifi", "jio", "airtel", "vi", "bsnl", "cylinder", "सिलेंडर",
		"paani", "पानी", "light bill", "phone bill",
	}},
	{CategoryEntertainment, []string{
		"movie", "netflix", "spotify", "prime", "hotstar", "game", "entertainment", "manoranjan", "मनोरंजन",
		"film", "फिल्म", "cinema", "सिनेमा", "pub", "bar", "club", "concert", "show",
		"picnic", "trip", "माझा", "मौज", "timepass", "टाइमपास",
	}},
	{CategoryHealth, []string{
		"doctor", "medicine", "hospital", "pharmacy", "health", "medical", "swasthya", "स्वास्थ्य",
		"dawaai", "दवाई", "dawai", "दवा", "checkup", "test", "lab", "clinic", "chemist",
		"tablets", "गोली", "injection", "surgery", "ilaj", "इलाज",
	}},
	{CategoryEducation, []string{
		"course", "book", "tuition", "education", "learning", "training", "shiksha", "शिक्षा",
		"fees", "फीस", "exam", "परीक्षा", "coaching", "कोचिंग", "class", "क्लास",
		"udemy", "coursera", "notes", "नोट्स", "books", "किताबें",
	}},
	{CategoryRent, []string{
		"rent", "lease", "housing", "kiraya", "किराया",
		"ghar ka kiraya", "room rent", "flat", "फ्लैट", "pg", "hostel", "हॉस्टल",
	}},
	{CategoryEMI, []string{
		"emi", "installment", "loan", "kist", "किस्त",
		"karj", "कर्ज", "udhaar", "उधार", "payment", "due", "credit card",
	}},
	{CategoryOtherIncome, []string{
		"mila", "mile", "मिला", "मिले", "प्राप्त",
		"aaya", "आया", "gift", "bonus", "tip", "baksheesh", "बख्शीश",
	}},
}

// DefaultCategoryRules returns a copy of the built-in taxonomy so callers
// can append or reorder without touching the shared tables.
func DefaultCategoryRules() []CategoryRule {
	rules := make([]CategoryRule, len(defaultCategoryRules))
	copy(rules, defaultCategoryRules)
	return rules
}
