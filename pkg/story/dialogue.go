package story

// Dialogue node IDs.
const (
	NodeRicardoBankHack     = "ricardo_bank_hack"
	NodeRicardoBankRational = "ricardo_bank_rational"
	NodeRicardoBankClinic   = "ricardo_bank_clinic"
	NodeChefeStart          = "chefe_start"
	NodeGhostIntro          = "sofia_ghost_intro"
)

// DialogueTrees returns the full dialogue graph keyed by node ID. The graph
// is acyclic; branches terminate by options with a nil NextNodeID or by nodes
// with no options at all.
func DialogueTrees() map[string]DialogueNode {
	return map[string]DialogueNode{
		NodeRicardoBankHack: {
			ID:          NodeRicardoBankHack,
			NPCMessages: nil,
			Options: []ReplyOption{
				{Text: "Estava só a confirmar o saldo. Preciso de organizar a vida.", NextNodeID: node(NodeRicardoBankRational)},
				{Text: "O que é que a Clínica faz exatamente? Eu esqueci-me.", NextNodeID: node(NodeRicardoBankClinic)},
			},
		},
		NodeRicardoBankRational: {
			ID: NodeRicardoBankRational,
			NPCMessages: []string{
				"Espero que sim.",
				"Aquele dinheiro da Kronos... tu disseste que era 'dinheiro de sangue', mas continuas a usá-lo.",
				"Decide-te, Sofia.",
			},
		},
		NodeRicardoBankClinic: {
			ID: NodeRicardoBankClinic,
			NPCMessages: []string{
				"Não te faças de parva.",
				"Hipnoterapia Regressiva? 'Limpeza de Memória'?",
				"Tu disseste que precisavas de esquecer o que viste na Cave.",
				"Mas só ficaste pior.",
			},
		},
		NodeChefeStart: {
			ID: NodeChefeStart,
			Options: []ReplyOption{
				{Text: "Vou entregar o relatório."},
			},
		},
		NodeGhostIntro: {
			ID: NodeGhostIntro,
			NPCMessages: []string{
				"Tu não estás a ver a obra, pois não?",
				"Tu estás a ver a minha memória.",
				"Eu sou o Pilar 4. E agora tu estás cá dentro comigo.",
			},
		},
	}
}
