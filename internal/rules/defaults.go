package rules

// DefaultRules returns the built-in pharmacy rule table, consolidated
// from the catalog reclassification rounds. Keywords cover the Albanian,
// Italian, French and English spellings seen in product names and
// descriptions, authored in normalized form (lowercase, no diacritics).
//
// Precedence notes encoded here rather than scattered across call sites:
//   - Anti-blemish/acne face care (priority 95) dominates generic sun
//     protection (priority 80); the SPF rule additionally excludes the
//     acne vocabulary so "anti-blemish SPF" products land in face care.
//   - Baby care combinations (priority 90) dominate generic body care
//     (priority 60) so "baby lotion" never lands in adult dermo.
//   - Shower gels are plain hygiene regardless of "moisturizing" claims.
func DefaultRules() []Rule {
	return []Rule{
		// ---- Unmistakable exact classes ----
		{
			Key:        "diapers",
			TargetNode: "baby.diapers",
			Priority:   100,
			Confidence: 1.0,
			Include: []string{
				"pelena", "pelene", "pelenat",
				"diaper", "nappy",
				"pannolin",
				"couches bebe",
			},
			Brands: []string{"pampers", "huggies", "libero", "babylino"},
		},
		{
			Key:        "pregnancy-test",
			TargetNode: "medical.devices",
			Priority:   100,
			Include: []string{
				"test shtatzanie", "test shtatzanise",
				"pregnancy test",
				"test di gravidanza",
				"test ovulacioni", "ovulation test",
			},
			Brands: []string{"clearblue", "predictor"},
		},
		{
			Key:        "thermometer",
			TargetNode: "medical.devices",
			Priority:   100,
			Include: []string{
				"termometer", "termometri",
				"thermometer", "termometro", "thermometre",
			},
		},
		{
			Key:        "blood-pressure",
			TargetNode: "medical.devices",
			Priority:   100,
			Include: []string{
				"aparat tensioni", "matja e tensionit",
				"blood pressure", "tensiometer",
				"misuratore di pressione", "tensiometre",
			},
			Brands: []string{"omron", "microlife"},
		},
		{
			Key:        "glucose-monitor",
			TargetNode: "medical.devices",
			Priority:   100,
			Include: []string{
				"glukometer", "glucometer", "glucometro",
				"sheqeri ne gjak", "glicemi",
				"strisce reattive", "test strips",
			},
			Brands: []string{"accu chek", "contour"},
		},

		// ---- High-priority overrides ----
		{
			Key:        "face-anti-blemish",
			TargetNode: "dermo.face.acne",
			Priority:   95,
			Include: []string{
				"anti blemish", "blemish",
				"acne", "akne", "aknet",
				"imperfection", "imperfezioni",
				"pucrra", "pucrrat",
				"lekure me probleme",
			},
			Brands: []string{"effaclar", "sebium", "normaderm", "cleanance", "hyseac"},
		},
		{
			Key:        "baby-food",
			TargetNode: "baby.food",
			Priority:   95,
			Include: []string{
				"qumesht per bebe", "qumesht formule",
				"milk formula", "infant formula",
				"latte in polvere", "latte di crescita",
				"pure per bebe", "pure frutash",
				"baby food", "lait infantile",
			},
			Brands: []string{"aptamil", "nan optipro", "hipp bio", "humana", "milupa", "nestle nidina"},
		},
		{
			Key:        "oral-care",
			TargetNode: "hygiene.oral",
			Priority:   95,
			Include: []string{
				"paste dhembesh", "pasta e dhembeve", "dhembeve",
				"toothpaste", "dentifricio", "dentifrice",
				"shperlares goje", "mouthwash", "collutorio",
				"furce dhembesh", "toothbrush",
				"fill dentar", "dental floss",
				"proteza dentare",
			},
			Brands: []string{"elmex", "meridol", "parodontax", "oral b", "curaprox", "gum"},
		},
		{
			Key:        "first-aid",
			TargetNode: "medical.firstaid",
			Priority:   95,
			Include: []string{
				"fasho", "garze", "garza",
				"bandage", "plaster", "leukoplast", "cerotto",
				"alkool mjekesor", "hidrogjen peroksid",
				"dezinfektim plagesh", "wound",
			},
			Brands: []string{"hansaplast", "urgo"},
		},
		{
			Key:        "orthopedic",
			TargetNode: "medical.ortho",
			Priority:   95,
			Include: []string{
				"ortoze", "orthosis",
				"fashe elastike", "elastic support",
				"ginocchiera", "cavigliera", "tutore",
				"mbajtese kyci", "genouillere",
			},
		},

		// ---- Baby care, vitamins, OTC, intimate ----
		{
			Key:        "baby-hygiene",
			TargetNode: "baby.hygiene",
			Priority:   90,
			Patterns: []string{
				`\b(baby|bebe|bebi|bebit|bebat|enfant|bimbi|bimbo)\b.*\b(lait|lotion|hydratant|shampoo|shampo|krem|cream|creme|gel|wash|banjo|bagno|vaj|oil|wipes|peceta|talk)\b`,
				`\b(lait|lotion|hydratant|shampoo|shampo|krem|cream|creme|gel|wash|banjo|bagno|vaj|oil|wipes|peceta|talk)\b.*\b(baby|bebe|bebi|bebit|bebat|enfant|bimbi|bimbo)\b`,
			},
			Include: []string{
				"peceta te lagura", "wet wipes", "salviettine",
				"krem kunder skuqjes", "diaper rash",
			},
			Brands: []string{"mustela", "chicco", "weleda baby", "johnsons baby", "sudocrem", "bepanthen"},
		},
		{
			Key:        "vitamins-omega",
			TargetNode: "vitamins.omega",
			Priority:   90,
			Include: []string{
				"omega 3", "omega3", "omega 6",
				"vaj peshku", "fish oil",
				"olio di pesce", "huile de poisson",
				"cod liver", "vaj merluci",
			},
		},
		{
			Key:        "vitamins-probiotics",
			TargetNode: "vitamins.probiotics",
			Priority:   90,
			Include: []string{
				"probiotik", "probiotic", "probiotico",
				"fermenti lattici", "lactobacillus", "bifidus",
				"flora bakteriale", "flora intestinale",
			},
			Brands: []string{"enterogermina", "linex", "biogaia"},
		},
		{
			Key:        "vitamins-multi",
			TargetNode: "vitamins.multi",
			Priority:   90,
			Include: []string{
				"multivitamin", "multivitamina", "multivitamine",
				"vitamina dhe minerale",
			},
			Brands: []string{"centrum", "supradyn", "pharmaton", "multicentrum"},
		},
		{
			Key:        "vitamins-minerals",
			TargetNode: "vitamins.minerals",
			Priority:   90,
			Include: []string{
				"magnez", "magnesium", "magnesio",
				"kalcium", "calcium", "calcio",
				"hekur", "zink", "zinc", "selenium", "kaliumi",
			},
		},
		{
			Key:        "vitamins-immunity",
			TargetNode: "vitamins.immunity",
			Priority:   90,
			Include: []string{
				"vitamin c", "vitamina c", "vitamine c",
				"vitamin d", "vitamina d",
				"imunitet", "immunity", "immune", "difese immunitarie",
				"echinacea", "propolis", "mjalte manuka",
			},
		},
		{
			Key:        "otc-pain",
			TargetNode: "otc.pain",
			Priority:   90,
			Include: []string{
				"paracetamol", "ibuprofen", "aspirin",
				"analgjezik", "antidolorifico",
				"dhimbje koke", "mal di testa",
				"dhimbje muskulare", "temperatura e larte",
			},
			Brands: []string{"nurofen", "panadol", "voltaren"},
		},
		{
			Key:        "otc-coldflu",
			TargetNode: "otc.coldflu",
			Priority:   90,
			Include: []string{
				"ftohje", "gripi", "influenza", "raffreddore",
				"hunde e zene", "hundes",
				"nasal spray", "spray nasale", "sprai hundor",
				"kolle", "cough", "tosse", "toux",
				"shurup kolle", "sciroppo",
				"dhimbje fyti", "mal di gola", "sore throat",
			},
			Brands: []string{"coldrex", "fervex", "vicks", "otrivin", "strepsils"},
		},
		{
			Key:        "otc-digestive",
			TargetNode: "otc.digestive",
			Priority:   90,
			Include: []string{
				"tretje", "digestion", "digestive", "digestione",
				"fryrje barku", "dhimbje barku",
				"diarre", "diarrhea", "diarrea",
				"kapsllek", "constipation", "stitichezza",
				"antacid", "urth", "reflux", "gastrit",
			},
			Brands: []string{"gaviscon", "espumisan", "smecta", "buscopan"},
		},
		{
			Key:        "otc-allergy",
			TargetNode: "otc.allergy",
			Priority:   90,
			Include: []string{
				"alergji", "allergy", "allergia", "allergie",
				"antihistaminik", "antihistamine", "antistaminico",
				"rinit alergjik", "rinite allergica",
			},
			Brands: []string{"zyrtec", "claritine", "fenistil", "telfast"},
		},
		{
			Key:        "intimate-hygiene",
			TargetNode: "hygiene.intimate",
			Priority:   90,
			Include: []string{
				"higjena intime", "intime", "intimate wash",
				"detergente intimo", "gel intime",
				"peceta higjenike", "sanitary pads", "assorbenti",
				"tampon",
			},
			Brands: []string{"saugella", "chilly", "lactacyd"},
		},

		// ---- Mother, lips, hands ----
		{
			Key:        "mother-care",
			TargetNode: "baby.mother",
			Priority:   85,
			Include: []string{
				"shtatzani", "shtatzanise",
				"gjidhenie", "breastfeeding", "allattamento",
				"krem thithash", "nipple cream",
				"acid folik", "folic acid", "acido folico",
			},
		},
		{
			Key:        "lip-care",
			TargetNode: "dermo.lips",
			Priority:   85,
			Include: []string{
				"balsam buzesh", "buzet", "buzeve",
				"lip balm", "burrocacao",
				"stick levres", "levres",
			},
			Brands: []string{"labello", "carmex"},
		},
		{
			Key:        "hand-care",
			TargetNode: "hygiene.hands",
			Priority:   85,
			Include: []string{
				"krem duarsh", "duart", "duarve",
				"hand cream", "crema mani", "creme mains",
				"dezinfektues duarsh", "hand sanitizer", "gel igienizzante",
			},
		},

		// ---- Sun protection and hair ----
		{
			Key:        "sun-protection",
			TargetNode: "dermo.spf",
			Priority:   80,
			Include: []string{
				"spf", "krem dielli", "diellit",
				"sun protection", "sunscreen",
				"protezione solare", "solare", "solaire",
				"after sun", "doposole", "pas diellit",
				"uva", "uvb",
			},
			Exclude: []string{
				// Anti-blemish face care dominates sun protection; the
				// face-anti-blemish rule picks these up at priority 95.
				"anti blemish", "blemish", "acne", "akne",
				"imperfection", "imperfezioni",
			},
			Brands: []string{"anthelios", "capital soleil", "photoderm", "sun secure", "heliocare"},
		},
		{
			Key:        "hair-care",
			TargetNode: "dermo.hair",
			Priority:   80,
			Include: []string{
				"shampo", "shampoo", "shampooing",
				"floket", "flokeve", "capelli", "cheveux",
				"renie flokesh", "hair loss", "anticaduta",
				"zbokth", "dandruff", "antiforfora",
				"balsam flokesh", "conditioner", "balsamo",
			},
			Brands: []string{"dercos", "klorane", "phyto", "bioscalin"},
		},

		// ---- Face care tiers ----
		{
			Key:        "face-antiage",
			TargetNode: "dermo.face.antiage",
			Priority:   75,
			Include: []string{
				"anti age", "antiage", "anti rrudhe", "rrudhat",
				"wrinkle", "antirughe", "anti rides",
				"retinol", "hialuronik", "hyaluronic", "ialuronico",
				"kolagjen", "collagen", "collagene",
				"lifting", "firming",
			},
		},
		{
			Key:        "face-hydration",
			TargetNode: "dermo.face.hydration",
			Priority:   75,
			Patterns: []string{
				`\b(fytyr\w*|face|viso|visage)\b.*\b(hidrat\w*|hydrat\w*|idratant\w*|moistur\w*)\b`,
				`\b(hidrat\w*|hydrat\w*|idratant\w*|moistur\w*)\b.*\b(fytyr\w*|face|viso|visage)\b`,
			},
		},
		{
			Key:        "face-care",
			TargetNode: "dermo.face",
			Priority:   70,
			Include: []string{
				"fytyre", "fytyres",
				"krem fytyre", "face cream", "crema viso", "creme visage",
				"serum fytyre", "face serum", "siero viso",
				"micellar", "micelare", "micellare",
				"tonik fytyre", "facial", "viso", "visage",
			},
		},
		{
			Key:        "body-hygiene",
			TargetNode: "hygiene.body",
			Priority:   70,
			Include: []string{
				// Shower gels stay in plain hygiene even when the copy
				// claims moisturizing benefits.
				"shower gel", "xhel dushi", "gel doccia", "gel douche",
				"bagnoschiuma", "shkume dushi",
				"sapun", "soap", "sapone", "savon",
				"deodorant", "deodorante", "antiperspirant",
			},
		},

		// ---- Broad catch-alls ----
		{
			Key:        "body-care",
			TargetNode: "dermo.body",
			Priority:   60,
			Include: []string{
				"krem trupi", "trupit", "body lotion", "body milk", "body cream",
				"lait corporel", "latte corpo", "crema corpo",
				"vaj trupi", "body oil",
				"strija", "smagliature", "vergetures",
				"celulit", "anticelulit", "cellulite",
				"lekure atopike", "atopic", "atopica", "emollient",
			},
			Brands: []string{"lipikar", "atoderm", "xeracalm"},
		},
		{
			Key:        "vitamins-general",
			TargetNode: "vitamins",
			Priority:   60,
			Include: []string{
				"vitamin", "vitamina", "vitamine",
				"suplement", "supplement", "integratore",
			},
		},
		{
			Key:        "hygiene-general",
			TargetNode: "hygiene",
			Priority:   50,
			Include: []string{
				"higjen", "hygiene", "igiene",
			},
		},
	}
}
