package config

// Built-in analyzer word lists. These are the startup defaults; every list
// can be overridden through configuration so updates do not require a
// redeploy. Matching is lowercase substring matching, so entries must be
// lowercase.
var (
	// DefaultProfanityWords is the profanity denylist.
	DefaultProfanityWords = []string{
		"damn", "hell", "crap", "shit", "fuck", "bitch", "bastard", "asshole",
	}

	// DefaultPromotionalKeywords signal promotional/spam content.
	DefaultPromotionalKeywords = []string{
		"buy now", "click here", "free", "discount", "deal", "offer",
	}

	// DefaultToxicWords carry weight 0.3 each in the toxicity score.
	DefaultToxicWords = []string{
		"stupid", "idiot", "moron", "dumb", "pathetic", "loser", "trash", "garbage",
	}

	// DefaultHarassmentWords carry weight 0.5 each in the toxicity score.
	DefaultHarassmentWords = []string{
		"kill yourself", "die", "threat", "hunt you down", "watch your back",
	}

	// DefaultGenericPhrases indicate template-like review text.
	DefaultGenericPhrases = []string{
		"great place", "good food", "nice service", "would recommend",
		"amazing experience", "highly recommend", "five stars", "will be back",
	}

	// DefaultStrongPositiveWords indicate suspiciously gushing short reviews.
	DefaultStrongPositiveWords = []string{
		"amazing", "awesome", "best", "excellent", "fantastic", "good",
		"great", "incredible", "nice", "perfect", "recommend", "wonderful",
	}
)

// DefaultWordlists returns a WordlistConfig populated with the built-in lists.
func DefaultWordlists() WordlistConfig {
	return WordlistConfig{
		Profanity:           DefaultProfanityWords,
		PromotionalKeywords: DefaultPromotionalKeywords,
		ToxicWords:          DefaultToxicWords,
		HarassmentWords:     DefaultHarassmentWords,
		GenericPhrases:      DefaultGenericPhrases,
		StrongPositiveWords: DefaultStrongPositiveWords,
	}
}
