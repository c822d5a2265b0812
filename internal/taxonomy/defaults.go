package taxonomy

// DefaultNodes returns the built-in pharmacy category tree.
// Display names are the storefront's Albanian labels.
func DefaultNodes() []Node {
	return []Node{
		// Dermocosmetics
		{Key: "dermo", DisplayName: "Dermokozmetikë"},
		{Key: "dermo.face", DisplayName: "Fytyre", ParentKey: "dermo"},
		{Key: "dermo.face.acne", DisplayName: "Akne & Njolla", ParentKey: "dermo.face"},
		{Key: "dermo.face.hydration", DisplayName: "Hidratim", ParentKey: "dermo.face"},
		{Key: "dermo.face.antiage", DisplayName: "Anti-age", ParentKey: "dermo.face"},
		{Key: "dermo.body", DisplayName: "Trupi", ParentKey: "dermo"},
		{Key: "dermo.hair", DisplayName: "Flokët", ParentKey: "dermo"},
		{Key: "dermo.spf", DisplayName: "Mbrojtje nga dielli", ParentKey: "dermo"},
		{Key: "dermo.lips", DisplayName: "Buzët", ParentKey: "dermo"},

		// Mother & baby
		{Key: "baby", DisplayName: "Mami & Bebi"},
		{Key: "baby.diapers", DisplayName: "Pelena", ParentKey: "baby"},
		{Key: "baby.hygiene", DisplayName: "Higjena e bebit", ParentKey: "baby"},
		{Key: "baby.food", DisplayName: "Ushqim për bebe", ParentKey: "baby"},
		{Key: "baby.mother", DisplayName: "Për mamin", ParentKey: "baby"},

		// Vitamins & supplements
		{Key: "vitamins", DisplayName: "Vitamina & Suplemente"},
		{Key: "vitamins.multi", DisplayName: "Multivitamina", ParentKey: "vitamins"},
		{Key: "vitamins.minerals", DisplayName: "Minerale", ParentKey: "vitamins"},
		{Key: "vitamins.omega", DisplayName: "Omega & Vajra peshku", ParentKey: "vitamins"},
		{Key: "vitamins.probiotics", DisplayName: "Probiotikë", ParentKey: "vitamins"},
		{Key: "vitamins.immunity", DisplayName: "Imunitet", ParentKey: "vitamins"},

		// Personal hygiene
		{Key: "hygiene", DisplayName: "Higjenë personale"},
		{Key: "hygiene.oral", DisplayName: "Higjena orale", ParentKey: "hygiene"},
		{Key: "hygiene.body", DisplayName: "Trupi & Dushi", ParentKey: "hygiene"},
		{Key: "hygiene.intimate", DisplayName: "Higjena intime", ParentKey: "hygiene"},
		{Key: "hygiene.hands", DisplayName: "Duart", ParentKey: "hygiene"},

		// Over-the-counter remedies
		{Key: "otc", DisplayName: "Barna pa recetë"},
		{Key: "otc.pain", DisplayName: "Dhimbje & Temperaturë", ParentKey: "otc"},
		{Key: "otc.coldflu", DisplayName: "Ftohje & Grip", ParentKey: "otc"},
		{Key: "otc.digestive", DisplayName: "Aparati tretës", ParentKey: "otc"},
		{Key: "otc.allergy", DisplayName: "Alergji", ParentKey: "otc"},

		// Medical devices & first aid
		{Key: "medical", DisplayName: "Pajisje mjekësore"},
		{Key: "medical.devices", DisplayName: "Aparatura", ParentKey: "medical"},
		{Key: "medical.firstaid", DisplayName: "Ndihma e parë", ParentKey: "medical"},
		{Key: "medical.ortho", DisplayName: "Ortopedike", ParentKey: "medical"},
	}
}
