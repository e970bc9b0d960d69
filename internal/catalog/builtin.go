package catalog

// Builtin returns a fresh copy of the default catalog.
func Builtin() *Catalog {
	return &Catalog{
		Decorations: []Decoration{
			{Name: "Sofa", Room: "Living Room"},
			{Name: "Armchair", Room: "Living Room"},
			{Name: "Coffee Table", Room: "Living Room"},
			{Name: "Rug", Room: "Living Room"},
			{Name: "Pillow", Room: "Bedroom"},
			{Name: "Nightstand", Room: "Bedroom"},
			{Name: "Reading Lamp", Room: "Bedroom"},
			{Name: "Desk", Room: "Home Office"},
			{Name: "Bookshelf", Room: "Home Office"},
			{Name: "Potted Plant", Room: "Home Office"},
		},
		Quotes: []string{
			"Small steps every day add up to big change.",
			"You don't have to be great to start, but you have to start to be great.",
			"Motivation gets you going; habit keeps you growing.",
			"A streak is built one honest check-in at a time.",
			"Fall seven times, check in eight.",
		},
		Tips: []string{
			"Anchor a new habit to one you already have.",
			"Keep daily habits small enough to finish on a bad day.",
			"If you miss a period, aim to never miss two in a row.",
			"Review your weekly habits on the same day each week.",
			"Pick the decoration you want to see improve the most.",
		},
		Butler: ButlerOptions{
			Names:       []string{"Alfred", "Jeeves", "Sebastian", "Winston", "Bernard"},
			Appearances: []string{"tall and impeccably dressed", "short with a silver moustache", "slender with round spectacles", "broad-shouldered in a tailcoat"},
			Personalities: map[string]Personality{
				"cheerful": {
					Description: "Always upbeat, celebrates every little win.",
					Replicas: []string{
						"Splendid progress today, if I may say so!",
						"Every check-in brightens the whole house.",
					},
				},
				"stern": {
					Description: "Direct and exacting, but fair.",
					Replicas: []string{
						"Discipline, not luck, builds a streak.",
						"I expect today's check-in before supper.",
					},
				},
				"wry": {
					Description: "Dry wit, secretly proud of you.",
					Replicas: []string{
						"Another check-in? How frightfully consistent of you.",
						"The sofa looks better already. Coincidence? I think not.",
					},
				},
			},
			AgeMin: 21,
			AgeMax: 112,
		},
	}
}
