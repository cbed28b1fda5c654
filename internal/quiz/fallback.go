package quiz

// fallbackQuestions are served whenever generation fails or no credential is
// configured. They are the same regardless of topic.
var fallbackQuestions = []Question{
	{
		Question:      "Which bond is formed between two amino acids during translation?",
		Options:       []string{"Ionic bond", "Peptide bond", "Hydrogen bond", "Disulfide bridge"},
		CorrectAnswer: 1,
		Explanation:   "A peptide bond is a covalent chemical bond linking two consecutive amino acid monomers along a peptide or protein chain.",
	},
	{
		Question:      "What determines the primary structure of a protein?",
		Options:       []string{"Hydrogen bonding", "The sequence of amino acids", "Interaction between R groups", "The pH of the environment"},
		CorrectAnswer: 1,
		Explanation:   "The primary structure is simply the sequence of amino acids in the polypeptide chain, determined by the gene.",
	},
	{
		Question:      "Denaturation implies the loss of which structures?",
		Options:       []string{"Primary only", "Secondary and Tertiary", "Primary and Secondary", "All structures"},
		CorrectAnswer: 1,
		Explanation:   "Denaturation disrupts the secondary and tertiary structures (shape) but typically leaves the primary structure (peptide bonds) intact.",
	},
}

// Fallback returns a fresh copy of the local question set.
func Fallback() []Question {
	out := make([]Question, len(fallbackQuestions))
	for i, q := range fallbackQuestions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
