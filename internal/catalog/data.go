package catalog

// Seed tables for the symptom and recommendation catalogs. The data ships
// with the binary and is versioned together with the code; runtime code must
// never mutate these slices.

const catalogVersion = "2026.08"

var seedSymptoms = []SymptomEntry{
	{
		ID:             "common_cold",
		Name:           "Common cold",
		LocalizedNames: map[string]string{"es": "Resfriado común", "fr": "Rhume"},
		Weight:         WeightLow,
		BodySystem:     "respiratory",
		Description:    "Runny or blocked nose, sneezing and mild sore throat.",
		PossibleCauses: []string{"Viral upper respiratory infection", "Seasonal allergies"},
		FollowUps:      []string{"How long have the symptoms lasted?", "Is there a fever as well?"},
	},
	{
		ID:             "runny_nose",
		Name:           "Runny nose",
		Weight:         WeightLow,
		BodySystem:     "respiratory",
		Description:    "Clear or coloured nasal discharge.",
		PossibleCauses: []string{"Common cold", "Allergic rhinitis"},
	},
	{
		ID:             "cough",
		Name:           "Cough",
		Weight:         WeightLow,
		BodySystem:     "respiratory",
		Description:    "Dry or productive cough.",
		PossibleCauses: []string{"Viral infection", "Post-nasal drip", "Bronchitis"},
		FollowUps:      []string{"Is the cough dry or bringing up phlegm?"},
	},
	{
		ID:             "sore_throat",
		Name:           "Sore throat",
		Weight:         WeightLow,
		BodySystem:     "respiratory",
		Description:    "Pain or scratchiness in the throat, often worse when swallowing.",
		PossibleCauses: []string{"Viral pharyngitis", "Strep throat"},
	},
	{
		ID:             "fever",
		Name:           "Fever",
		Weight:         WeightMedium,
		BodySystem:     "general",
		Description:    "Body temperature above 38°C.",
		PossibleCauses: []string{"Viral infection", "Bacterial infection"},
		// Fever in the first months of life is treated as high urgency.
		HighUrgencyFor: []AgeBand{BandNewborn, BandInfant},
		FollowUps:      []string{"What is the measured temperature?"},
	},
	{
		ID:             "high_fever",
		Name:           "High fever (above 39.5°C)",
		Weight:         WeightHigh,
		BodySystem:     "general",
		Description:    "Sustained temperature above 39.5°C.",
		PossibleCauses: []string{"Influenza", "Serious bacterial infection"},
	},
	{
		ID:             "headache",
		Name:           "Headache",
		Weight:         WeightLow,
		BodySystem:     "neurological",
		Description:    "Pain anywhere in the head, including tension-type and migraine.",
		PossibleCauses: []string{"Tension headache", "Migraine", "Dehydration"},
	},
	{
		ID:             "stiff_neck",
		Name:           "Stiff neck with fever",
		Weight:         WeightHigh,
		BodySystem:     "neurological",
		Description:    "Neck stiffness that limits touching chin to chest, especially with fever.",
		PossibleCauses: []string{"Meningitis", "Muscle strain"},
	},
	{
		ID:             "dizziness",
		Name:           "Dizziness",
		Weight:         WeightMedium,
		BodySystem:     "neurological",
		Description:    "Light-headedness or a spinning sensation.",
		PossibleCauses: []string{"Inner ear disturbance", "Low blood pressure", "Dehydration"},
	},
	{
		ID:             "nausea",
		Name:           "Nausea",
		Weight:         WeightLow,
		BodySystem:     "digestive",
		Description:    "Feeling of needing to vomit.",
		PossibleCauses: []string{"Gastroenteritis", "Food intolerance"},
	},
	{
		ID:             "vomiting",
		Name:           "Vomiting",
		Weight:         WeightMedium,
		BodySystem:     "digestive",
		Description:    "Repeated emptying of stomach contents.",
		PossibleCauses: []string{"Gastroenteritis", "Food poisoning"},
		HighUrgencyFor: []AgeBand{BandNewborn, BandInfant},
	},
	{
		ID:             "diarrhea",
		Name:           "Diarrhea",
		Weight:         WeightMedium,
		BodySystem:     "digestive",
		Description:    "Loose or watery stools three or more times a day.",
		PossibleCauses: []string{"Viral gastroenteritis", "Food poisoning"},
		HighUrgencyFor: []AgeBand{BandNewborn, BandInfant},
	},
	{
		ID:             "abdominal_pain",
		Name:           "Abdominal pain",
		Weight:         WeightMedium,
		BodySystem:     "digestive",
		Description:    "Pain anywhere between the chest and groin.",
		PossibleCauses: []string{"Indigestion", "Gastritis", "Appendicitis"},
		FollowUps:      []string{"Where exactly is the pain?", "Does it move or stay in one place?"},
	},
	{
		ID:             "body_aches",
		Name:           "Body aches",
		Weight:         WeightLow,
		BodySystem:     "musculoskeletal",
		Description:    "Generalised muscle soreness.",
		PossibleCauses: []string{"Influenza", "Overexertion"},
	},
	{
		ID:             "fatigue",
		Name:           "Fatigue",
		Weight:         WeightLow,
		BodySystem:     "general",
		Description:    "Persistent tiredness not relieved by rest.",
		PossibleCauses: []string{"Viral illness", "Poor sleep", "Anemia"},
	},
	{
		ID:             "rash",
		Name:           "Skin rash",
		Weight:         WeightLow,
		BodySystem:     "skin",
		Description:    "Red, itchy or bumpy skin changes.",
		PossibleCauses: []string{"Contact dermatitis", "Allergic reaction", "Viral exanthem"},
	},
	{
		ID:             "ear_pain",
		Name:           "Ear pain",
		Weight:         WeightLow,
		BodySystem:     "respiratory",
		Description:    "Pain inside or around the ear.",
		PossibleCauses: []string{"Middle ear infection", "Earwax build-up"},
		AgeBands:       []AgeBand{BandInfant, BandToddler, BandChild, BandTeen, BandAdult1, BandAdult2, BandAdult3, BandSenior},
	},

	// Emergency-weight symptoms. Any one of these forces the emergency tier.
	{
		ID:             "chest_pain",
		Name:           "Chest pain",
		Weight:         WeightEmergency,
		BodySystem:     "cardiovascular",
		Description:    "Pressure, tightness or pain in the chest.",
		PossibleCauses: []string{"Cardiac event", "Angina", "Pulmonary embolism"},
	},
	{
		ID:             "difficulty_breathing",
		Name:           "Difficulty breathing",
		Weight:         WeightEmergency,
		BodySystem:     "respiratory",
		Description:    "Shortness of breath at rest or struggling to draw breath.",
		PossibleCauses: []string{"Asthma attack", "Anaphylaxis", "Pneumonia"},
	},
	{
		ID:             "severe_bleeding",
		Name:           "Severe bleeding",
		Weight:         WeightEmergency,
		BodySystem:     "general",
		Description:    "Bleeding that does not stop with direct pressure.",
		PossibleCauses: []string{"Traumatic injury", "Clotting disorder"},
	},
	{
		ID:             "unconsciousness",
		Name:           "Loss of consciousness",
		Weight:         WeightEmergency,
		BodySystem:     "neurological",
		Description:    "Fainting or unresponsiveness.",
		PossibleCauses: []string{"Cardiac arrhythmia", "Stroke", "Severe hypoglycemia"},
	},
	{
		ID:             "seizure",
		Name:           "Seizure",
		Weight:         WeightEmergency,
		BodySystem:     "neurological",
		Description:    "Uncontrolled shaking or convulsions.",
		PossibleCauses: []string{"Epilepsy", "Febrile seizure", "Head injury"},
	},
}

var seedItems = []RecommendationItem{
	{
		ID:        "paracetamol",
		Kind:      KindMedicine,
		Name:      "Paracetamol (acetaminophen)",
		Rationale: "Reduces fever and relieves mild to moderate pain.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"fever", "high_fever", "headache", "sore_throat", "body_aches", "ear_pain"},
		Contraindications: []string{
			"Liver disease or heavy alcohol use",
			"Already taking another paracetamol-containing product",
		},
		Precautions: []string{"Do not exceed 4g in 24 hours for adults"},
		Priority:    1,
		Dosage: map[AgeBand]string{
			BandInfant:  "Weight-based dosing only, as directed by a clinician",
			BandToddler: "120mg every 4-6 hours, max 4 doses per day",
			BandChild:   "250mg every 4-6 hours, max 4 doses per day",
			BandTeen:    "500mg every 4-6 hours",
			BandAdult1:  "500mg-1g every 4-6 hours",
			BandAdult2:  "500mg-1g every 4-6 hours",
			BandAdult3:  "500mg-1g every 4-6 hours",
			BandSenior:  "500mg every 6 hours; review with a pharmacist",
		},
		MaxDuration:        "3 days for fever, 10 days for pain without medical review",
		CommonSideEffects:  []string{"Rare at recommended doses"},
		SeriousSideEffects: []string{"Liver damage in overdose", "Severe allergic reaction (rare)"},
	},
	{
		ID:        "ibuprofen",
		Kind:      KindMedicine,
		Name:      "Ibuprofen",
		Rationale: "Anti-inflammatory relief for aches, headache and fever.",
		Safety:    SafetyUseCaution,
		Triggers:  []SymptomID{"fever", "headache", "body_aches", "sore_throat", "ear_pain"},
		Contraindications: []string{
			"History of stomach ulcers or gastrointestinal bleeding",
			"Kidney disease",
			"Third trimester of pregnancy",
		},
		Precautions: []string{"Take with food", "Avoid combining with other NSAIDs"},
		Priority:    2,
		Dosage: map[AgeBand]string{
			BandToddler: "Weight-based dosing only, as directed by a clinician",
			BandChild:   "200mg every 6-8 hours",
			BandTeen:    "200-400mg every 6-8 hours",
			BandAdult1:  "200-400mg every 6-8 hours, max 1.2g per day",
			BandAdult2:  "200-400mg every 6-8 hours, max 1.2g per day",
			BandAdult3:  "200-400mg every 6-8 hours, max 1.2g per day",
			BandSenior:  "200mg every 8 hours; prefer paracetamol first",
		},
		MaxDuration:        "3 days without medical review",
		CommonSideEffects:  []string{"Stomach upset", "Heartburn"},
		SeriousSideEffects: []string{"Gastrointestinal bleeding", "Kidney impairment"},
	},
	{
		ID:        "oral_rehydration",
		Kind:      KindMedicine,
		Name:      "Oral rehydration salts",
		Rationale: "Replaces fluids and electrolytes lost through vomiting or diarrhea.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"diarrhea", "vomiting", "dizziness"},
		Contraindications: []string{
			"Inability to keep any fluid down (seek medical care instead)",
		},
		Precautions: []string{"Prepare exactly per packet instructions"},
		Priority:    1,
		Dosage: map[AgeBand]string{
			BandInfant: "Small frequent sips as directed by a clinician",
			BandChild:  "One glass after each loose stool",
			BandAdult1: "One to two glasses after each loose stool",
			BandAdult2: "One to two glasses after each loose stool",
			BandAdult3: "One to two glasses after each loose stool",
			BandSenior: "One to two glasses after each loose stool",
		},
		MaxDuration:       "2 days; seek care if symptoms persist",
		CommonSideEffects: []string{"Mild nausea if drunk too quickly"},
	},
	{
		ID:        "decongestant_spray",
		Kind:      KindMedicine,
		Name:      "Saline or decongestant nasal spray",
		Rationale: "Clears nasal congestion and eases breathing through the nose.",
		Safety:    SafetyUseCaution,
		Triggers:  []SymptomID{"common_cold", "runny_nose"},
		Contraindications: []string{
			"Decongestant sprays: uncontrolled high blood pressure",
		},
		Precautions: []string{"Do not use medicated sprays for more than 5 consecutive days"},
		Priority:    3,
		Dosage: map[AgeBand]string{
			BandChild:  "Saline spray only",
			BandTeen:   "1-2 sprays per nostril up to three times daily",
			BandAdult1: "1-2 sprays per nostril up to three times daily",
			BandAdult2: "1-2 sprays per nostril up to three times daily",
			BandAdult3: "1-2 sprays per nostril up to three times daily",
			BandSenior: "1-2 sprays per nostril up to three times daily",
		},
		MaxDuration:       "5 days",
		CommonSideEffects: []string{"Nasal dryness", "Rebound congestion with overuse"},
	},
	{
		ID:        "antihistamine",
		Kind:      KindMedicine,
		Name:      "Non-drowsy antihistamine",
		Rationale: "Relieves itching and allergic rash.",
		Safety:    SafetyUseCaution,
		Triggers:  []SymptomID{"rash", "runny_nose"},
		Contraindications: []string{
			"Severe liver impairment",
		},
		Precautions: []string{"Avoid alcohol", "Check driving guidance on the label"},
		Priority:    2,
		Dosage: map[AgeBand]string{
			BandChild:  "Pediatric formulation per label",
			BandTeen:   "10mg once daily",
			BandAdult1: "10mg once daily",
			BandAdult2: "10mg once daily",
			BandAdult3: "10mg once daily",
			BandSenior: "10mg once daily",
		},
		MaxDuration:       "As needed; review after 2 weeks of daily use",
		CommonSideEffects: []string{"Mild drowsiness", "Dry mouth"},
	},

	{
		ID:        "rest_and_fluids",
		Kind:      KindHomeRemedy,
		Name:      "Rest and plenty of fluids",
		Rationale: "Supports the immune response and prevents dehydration.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"common_cold", "fever", "cough", "fatigue", "body_aches", "headache"},
		Precautions: []string{
			"Seek care if unable to drink or keep fluids down",
		},
		Priority: 1,
	},
	{
		ID:        "steam_inhalation",
		Kind:      KindHomeRemedy,
		Name:      "Steam inhalation",
		Rationale: "Moist air loosens mucus and soothes irritated airways.",
		Safety:    SafetyUseCaution,
		Triggers:  []SymptomID{"common_cold", "cough", "runny_nose"},
		Precautions: []string{
			"Risk of scalding; keep hot water away from children",
		},
		Priority: 2,
	},
	{
		ID:        "saltwater_gargle",
		Kind:      KindHomeRemedy,
		Name:      "Warm saltwater gargle",
		Rationale: "Reduces throat swelling and discomfort.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"sore_throat", "common_cold"},
		Precautions: []string{
			"Not suitable for children too young to gargle safely",
		},
		Priority: 2,
	},
	{
		ID:        "cool_compress",
		Kind:      KindHomeRemedy,
		Name:      "Cool compress",
		Rationale: "Eases headache and helps bring down a raised temperature.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"fever", "headache"},
		Precautions: []string{
			"Use lukewarm, not ice-cold, water for children",
		},
		Priority: 3,
	},
	{
		ID:        "bland_diet",
		Kind:      KindHomeRemedy,
		Name:      "Bland diet (BRAT)",
		Rationale: "Easily digested foods rest the gut during stomach upsets.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"nausea", "vomiting", "diarrhea", "abdominal_pain"},
		Precautions: []string{
			"Reintroduce normal foods within 48 hours",
		},
		Priority: 2,
	},

	{
		ID:        "honey_lemon",
		Kind:      KindNaturalRemedy,
		Name:      "Honey and lemon drink",
		Rationale: "Honey coats the throat and calms coughing.",
		Safety:    SafetyUseCaution,
		Triggers:  []SymptomID{"cough", "sore_throat", "common_cold"},
		Contraindications: []string{
			"Never give honey to children under 12 months (infant botulism risk)",
		},
		Priority: 1,
	},
	{
		ID:        "ginger_tea",
		Kind:      KindNaturalRemedy,
		Name:      "Ginger tea",
		Rationale: "Ginger settles nausea and mild stomach upset.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"nausea", "dizziness", "abdominal_pain"},
		Precautions: []string{
			"Large amounts may interact with blood thinners",
		},
		Priority: 1,
	},
	{
		ID:        "chamomile_tea",
		Kind:      KindNaturalRemedy,
		Name:      "Chamomile tea",
		Rationale: "Mild calming effect, may help rest and digestion.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"fatigue", "nausea", "headache"},
		Contraindications: []string{
			"Allergy to plants of the daisy family",
		},
		Priority: 2,
	},
	{
		ID:        "aloe_vera",
		Kind:      KindNaturalRemedy,
		Name:      "Aloe vera gel",
		Rationale: "Cools and soothes irritated skin.",
		Safety:    SafetyGenerallySafe,
		Triggers:  []SymptomID{"rash"},
		Precautions: []string{
			"Patch-test first; stop if irritation worsens",
		},
		Priority: 1,
	},
}
