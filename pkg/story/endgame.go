package story

// Texts sent by scripted triggers. Kept next to the rest of the narrative
// content so a localization pass touches one package only.
const (
	BankReactionText   = "Vi a notificação do banco. Estás a gastar dinheiro outra vez? Diz-me que não foi para aquela 'Clínica'."
	BankReactionNotice = "Ricardo: Vi a notificação..."

	UnknownHintFirst  = "O dinheiro compra silencio mas nao compra a paz."
	UnknownHintSecond = "A verdade está na Galeria, a chave reside no ultimo adeus."
	UnknownHintNotice = "Desconhecido: A verdade está na Galeria..."

	PhotoThreatText   = "Viste o que não devias. Agora nós vemos-te."
	PhotoThreatNotice = "Desconhecido: Viste o que não devias."

	GhostEmailNotice = "Gmail: Novo e-mail de Eu (Sofia)"

	// The player's automatic report to the site manager once both anomalies
	// are on record.
	ProofCaption = "[FOTO ANEXADA: PROVA_CRIME.jpg]"
	ProofMessage = "Eu sei o que está no betão."

	EndgameFirstNotice = "Chefe: Sofia?"
	EndgamePhotoNotice = "Chefe enviou uma foto."
)

// Spyware install stage labels. The filename flash is the one moment the
// installer drops its disguise.
const (
	InstallStageConnect  = "A Conectar a CONST_LUZ_SECURE..."
	InstallStageDownload = "A descarregar Ferramentas de Admin..."
	InstallStageFlash    = "NAO_ME_DEIXES_AQUI.apk"
	InstallStageInstall  = "A instalar SiteCam Viewer..."
)

// EndgameReplies are the site manager's responses during the final sequence,
// paired index for index with Timeline.EndgameBeats. The empty last entry is
// the photo of the cave with no fourth pillar.
func EndgameReplies() []string {
	return []string{
		"Sofia?",
		"De que estás a falar?",
		"Eu estou na obra agora",
		"Na cave",
		"Não há nenhum pilar 4",
		"O projeto foi alterado há meses",
		"",
	}
}
